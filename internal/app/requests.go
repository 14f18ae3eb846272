package app

import (
	"context"

	"github.com/tacogips/just-code/internal/debug"
)

// Request is a side effect Run leaves to the caller.
type Request interface {
	request()
}

// RepoInitRequest asks for a git repository in Dir.
type RepoInitRequest struct {
	Dir string
}

// EditorLaunchRequest asks for $EDITOR to be started with Args and waited on.
type EditorLaunchRequest struct {
	Args []string
}

func (RepoInitRequest) request()     {}
func (EditorLaunchRequest) request() {}

// Executor performs delegated requests.
type Executor interface {
	// InitRepo initializes a git repository in dir.
	InitRepo(ctx context.Context, dir string) error
	// LaunchEditor runs the editor with args and waits for it to exit.
	LaunchEditor(ctx context.Context, args []string) error
}

// Execute performs requests in order and stops at the first failure.
func Execute(ctx context.Context, requests []Request, exec Executor) error {
	for _, req := range requests {
		switch r := req.(type) {
		case RepoInitRequest:
			debug.Debug("[app] Initializing repository in %s", r.Dir)
			if err := exec.InitRepo(ctx, r.Dir); err != nil {
				return NewRepoInitError(r.Dir, err)
			}
		case EditorLaunchRequest:
			debug.Debug("[app] Launching editor with %v", r.Args)
			if err := exec.LaunchEditor(ctx, r.Args); err != nil {
				return NewEditorError(err)
			}
		}
	}
	return nil
}
