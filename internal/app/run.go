// Package app drives one just-code invocation: it parses arguments, creates
// the requested files and describes the side effects left for the caller.
package app

import (
	"context"
	"time"

	"github.com/tacogips/just-code/internal/args"
	"github.com/tacogips/just-code/internal/debug"
	"github.com/tacogips/just-code/internal/template/generator"
	"github.com/tacogips/just-code/internal/template/model"
	"github.com/tacogips/just-code/internal/template/store"
)

// StoreLoader resolves the template store. It is only called when files are
// going to be created.
type StoreLoader func() (store.Store, error)

// RunOptions contains options for one invocation.
type RunOptions struct {
	// Args are the command-line tokens without the program name.
	Args []string
	// Dir is the working directory files are created in.
	Dir string
	// LoadStore provides the templates.
	LoadStore StoreLoader
	// Writer overrides the filesystem writer (optional).
	Writer generator.Writer
}

// Result describes what an invocation did and what it still wants done.
type Result struct {
	// ShowUsage is set when the usage text should be printed instead of doing anything.
	ShowUsage bool
	// ShowVersion is set when version information should be printed.
	ShowVersion bool
	// Created lists the paths of files created, in order.
	Created []string
	// Requests are the delegated actions to perform, in order.
	Requests []Request
}

// Run executes one invocation.
//
// With no arguments, or a help flag anywhere in Args, Run returns a usage
// result without touching the filesystem. Otherwise files are created in
// order and the first failure stops processing; files created before it are
// kept and listed in the returned Result alongside the error.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if len(opts.Args) == 0 || args.HasHelpFlag(opts.Args) {
		return &Result{ShowUsage: true}, nil
	}

	if args.HasDebugFlag(opts.Args) {
		debug.SetDebug(true)
	}

	parsed, err := args.Parse(opts.Args)
	if err != nil {
		return nil, NewParseError(err)
	}

	result := &Result{}
	if parsed.ShowVersion {
		result.ShowVersion = true
		return result, nil
	}

	debug.DebugSection("[app] Run workflow start")
	debug.DebugValue("[app] Dir", opts.Dir)
	defer debug.LogDuration(time.Now(), "run")

	templates, err := opts.LoadStore()
	if err != nil {
		return nil, NewConfigLoadError(err)
	}

	m := generator.NewMaterializer(templates, opts.Writer)
	for _, spec := range parsed.FileSpecs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		path, err := m.Create(opts.Dir, spec)
		if err != nil {
			return result, NewMaterializeError(spec.FileName(), err)
		}
		result.Created = append(result.Created, path)
	}

	result.Requests = PlanRequests(opts.Dir, parsed)
	debug.Debug("[app] Created %d file(s), %d request(s) pending", len(result.Created), len(result.Requests))
	return result, nil
}

// PlanRequests returns the delegated actions implied by parsed: a repository
// init when requested, then an editor launch unless disabled.
func PlanRequests(dir string, parsed *model.ParsedArgs) []Request {
	var requests []Request
	if parsed.CreateRepo {
		requests = append(requests, RepoInitRequest{Dir: dir})
	}
	if !parsed.SkipEditor {
		requests = append(requests, EditorLaunchRequest{Args: EditorArgs(parsed)})
	}
	return requests
}

// EditorArgs returns the pass-through arguments followed by each file's
// display name.
func EditorArgs(parsed *model.ParsedArgs) []string {
	out := make([]string, 0, len(parsed.PassthroughArgs)+len(parsed.FileSpecs))
	out = append(out, parsed.PassthroughArgs...)
	for _, spec := range parsed.FileSpecs {
		out = append(out, spec.FileName())
	}
	return out
}
