// Package runner performs the side effects just-code delegates: creating a git
// repository and running the user's editor.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/go-git/go-git/v5"
	"github.com/kballard/go-shellquote"

	"github.com/tacogips/just-code/internal/debug"
)

// EnvEditor names the editor environment variable.
const EnvEditor = "EDITOR"

// ErrEditorNotSet is returned when the editor is needed but $EDITOR is empty.
var ErrEditorNotSet = errors.New(EnvEditor + " environment variable is not set")

// Runner executes delegated requests against the real system.
type Runner struct {
	// Getenv reads environment variables. Defaults to os.Getenv.
	Getenv func(string) string
	// Stdin, Stdout and Stderr are attached to the editor process.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Runner wired to the process environment and terminal.
func New() *Runner {
	return &Runner{
		Getenv: os.Getenv,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// InitRepo creates a git repository in dir. An existing repository is left
// untouched, like running git init again.
func (r *Runner) InitRepo(_ context.Context, dir string) error {
	log := debug.Logger("runner")
	log.Debug().Str("dir", dir).Msg("initializing git repository")

	_, err := git.PlainInit(dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		log.Debug().Str("dir", dir).Msg("repository already exists")
		return nil
	}
	if err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

// LaunchEditor runs $EDITOR with args and waits for it to exit.
// $EDITOR is split with shell quoting rules, so values such as "code -w" work.
func (r *Runner) LaunchEditor(ctx context.Context, args []string) error {
	name, argv, err := r.EditorCommand(args)
	if err != nil {
		return err
	}

	log := debug.Logger("runner")
	log.Debug().Str("editor", name).Strs("args", argv).Msg("launching editor")

	cmd := exec.CommandContext(ctx, name, argv...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// EditorCommand resolves the editor executable and its full argument list.
func (r *Runner) EditorCommand(args []string) (string, []string, error) {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	value := getenv(EnvEditor)
	if value == "" {
		return "", nil, ErrEditorNotSet
	}

	words, err := shellquote.Split(value)
	if err != nil {
		return "", nil, fmt.Errorf("invalid %s value %q: %w", EnvEditor, value, err)
	}
	if len(words) == 0 {
		return "", nil, ErrEditorNotSet
	}

	argv := make([]string, 0, len(words)-1+len(args))
	argv = append(argv, words[1:]...)
	argv = append(argv, args...)
	return words[0], argv, nil
}
