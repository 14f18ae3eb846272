package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/just-code/internal/args"
	"github.com/tacogips/just-code/internal/debug"
	"github.com/tacogips/just-code/internal/template/generator"
	"github.com/tacogips/just-code/internal/template/store"
)

func testStore() *store.MapStore {
	return store.NewMapStore(map[string]string{
		"txt":  "hello $file name$",
		"py":   "$FILE_NAME$ module",
		"java": "class $FileName$",
		"sh":   "#!/bin/sh\n",
	}, "sh")
}

func loaderFor(s store.Store) StoreLoader {
	return func() (store.Store, error) { return s, nil }
}

func failingLoader(t *testing.T) StoreLoader {
	return func() (store.Store, error) {
		t.Fatal("store should not be loaded")
		return nil, nil
	}
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "short help", args: []string{"main.py", "-h"}},
		{name: "long help", args: []string{"--help", "main.py"}},
		{name: "help after separator", args: []string{"main.py", "--", "--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			result, err := Run(context.Background(), RunOptions{
				Args:      tt.args,
				Dir:       dir,
				LoadStore: failingLoader(t),
			})
			require.NoError(t, err)
			assert.True(t, result.ShowUsage)
			assert.Empty(t, result.Requests)
			assert.Empty(t, dirEntries(t, dir))
		})
	}
}

func TestRunVersion(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{
		Args:      []string{"-V"},
		Dir:       t.TempDir(),
		LoadStore: failingLoader(t),
	})
	require.NoError(t, err)
	assert.True(t, result.ShowVersion)
}

func TestRunCreatesFiles(t *testing.T) {
	dir := t.TempDir()

	result, err := Run(context.Background(), RunOptions{
		Args:      []string{"my_module.txt", "re:deploy.sh", "-g", "--", "-O"},
		Dir:       dir,
		LoadStore: loaderFor(testStore()),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "my_module.txt"),
		filepath.Join(dir, "deploy"),
	}, result.Created)

	data, err := os.ReadFile(filepath.Join(dir, "my_module.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello my module", string(data))

	require.Len(t, result.Requests, 2)
	assert.Equal(t, RepoInitRequest{Dir: dir}, result.Requests[0])
	assert.Equal(t, EditorLaunchRequest{Args: []string{"-O", "my_module.txt", "deploy"}}, result.Requests[1])
}

func TestRunAbsoluteSpec(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	target := filepath.Join(other, "tool.py")

	result, err := Run(context.Background(), RunOptions{
		Args:      []string{target},
		Dir:       dir,
		LoadStore: loaderFor(testStore()),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{target}, result.Created)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "TOOL module", string(data))
	assert.Empty(t, dirEntries(t, dir))
	assert.Equal(t, []Request{EditorLaunchRequest{Args: []string{target}}}, result.Requests)
}

func TestRunDebugCoversParsing(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	debug.SetNoColor(true)
	t.Cleanup(func() {
		debug.SetDebug(false)
		debug.SetOutput(os.Stderr)
	})

	_, err := Run(context.Background(), RunOptions{
		Args:      []string{"-n", "a.txt", "--debug"},
		Dir:       t.TempDir(),
		LoadStore: loaderFor(testStore()),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[args] parsed 1 file spec(s)")
}

func TestRunNoEditor(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{
		Args:      []string{"-n", "a.txt"},
		Dir:       t.TempDir(),
		LoadStore: loaderFor(testStore()),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Requests)
}

func TestRunFailFast(t *testing.T) {
	dir := t.TempDir()

	result, err := Run(context.Background(), RunOptions{
		Args:      []string{"first.txt", "second.rs", "third.txt"},
		Dir:       dir,
		LoadStore: loaderFor(testStore()),
	})
	require.Error(t, err)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, MaterializeFailed, appErr.Type)
	assert.True(t, generator.IsType(err, generator.TemplateMissing))
	assert.Contains(t, err.Error(), "second.rs")

	assert.Equal(t, []string{filepath.Join(dir, "first.txt")}, result.Created)
	assert.Empty(t, result.Requests)
	assert.ElementsMatch(t, []string{"first.txt"}, dirEntries(t, dir))
}

func TestRunDuplicateSpecFailsOnSecond(t *testing.T) {
	dir := t.TempDir()

	_, err := Run(context.Background(), RunOptions{
		Args:      []string{"a.txt", "a.txt"},
		Dir:       dir,
		LoadStore: loaderFor(testStore()),
	})
	assert.True(t, generator.IsType(err, generator.AlreadyExists))
	assert.ElementsMatch(t, []string{"a.txt"}, dirEntries(t, dir))
}

func TestRunTwice(t *testing.T) {
	dir := t.TempDir()
	opts := RunOptions{
		Args:      []string{"-n", "main.py", "util.py"},
		Dir:       dir,
		LoadStore: loaderFor(testStore()),
	}

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)
	before, err := os.ReadFile(filepath.Join(dir, "main.py"))
	require.NoError(t, err)

	_, err = Run(context.Background(), opts)
	assert.True(t, generator.IsType(err, generator.AlreadyExists))

	after, err := os.ReadFile(filepath.Join(dir, "main.py"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.ElementsMatch(t, []string{"main.py", "util.py"}, dirEntries(t, dir))
}

func TestRunParseError(t *testing.T) {
	dir := t.TempDir()

	_, err := Run(context.Background(), RunOptions{
		Args:      []string{"ok.txt", "re:"},
		Dir:       dir,
		LoadStore: failingLoader(t),
	})
	var argErr *args.ArgumentError
	assert.True(t, errors.As(err, &argErr))
	assert.Empty(t, dirEntries(t, dir))
}

func TestRunConfigLoadError(t *testing.T) {
	cause := errors.New("no config")

	_, err := Run(context.Background(), RunOptions{
		Args:      []string{"a.txt"},
		Dir:       t.TempDir(),
		LoadStore: func() (store.Store, error) { return nil, cause },
	})
	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ConfigLoadFailed, appErr.Type)
	assert.ErrorIs(t, err, cause)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dir := t.TempDir()

	_, err := Run(ctx, RunOptions{
		Args:      []string{"a.txt"},
		Dir:       dir,
		LoadStore: loaderFor(testStore()),
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dirEntries(t, dir))
}
