package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/just-code/internal/app"
	"github.com/tacogips/just-code/internal/config"
	"github.com/tacogips/just-code/internal/debug"
	"github.com/tacogips/just-code/internal/runner"
	"github.com/tacogips/just-code/internal/template/store"
)

// rootCmd represents the just-code command. Flag parsing is disabled so the
// argument parser sees every token, including those after "--".
var rootCmd = &cobra.Command{
	Use:                "just-code [-g] [-n] ([re:]file_name)+ [-- editor args]",
	Short:              "Create files from per-extension templates and open them in your editor",
	Long:               usageText,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		return run(cmd.Context(), argv, env{
			Dir:       dir,
			LoadStore: loadStore,
			Executor:  runner.New(),
		})
	},
}

func init() {
	rootCmd.SetHelpFunc(func(*cobra.Command, []string) { printUsage() })
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// env holds what run needs from the outside world.
type env struct {
	Dir       string
	LoadStore app.StoreLoader
	Executor  app.Executor
}

func run(ctx context.Context, argv []string, e env) error {
	if ctx == nil {
		ctx = context.Background()
	}
	debug.SetNoColor(!useColor(stderr))

	result, err := app.Run(ctx, app.RunOptions{
		Args:      argv,
		Dir:       e.Dir,
		LoadStore: e.LoadStore,
	})
	if result != nil {
		for _, path := range result.Created {
			printCreated(displayName(e.Dir, path))
		}
	}
	if err != nil {
		return err
	}

	switch {
	case result.ShowUsage:
		printUsage()
		return nil
	case result.ShowVersion:
		printVersion()
		return nil
	}

	if err := app.Execute(ctx, result.Requests, e.Executor); err != nil {
		return err
	}
	for _, req := range result.Requests {
		if r, ok := req.(app.RepoInitRequest); ok {
			printInfo("Git repository ready in " + r.Dir)
		}
	}
	return nil
}

// loadStore reads the user configuration, installing the default on first run.
func loadStore() (store.Store, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, installed, err := config.NewLoader().LoadOrInstall(path)
	if installed {
		printWarning(fmt.Sprintf("Installed default configuration at %s", path))
	}
	if err != nil {
		return nil, err
	}
	return cfg.Store(), nil
}

func displayName(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func printUsage() {
	fmt.Fprint(stdout, usageText)
}
