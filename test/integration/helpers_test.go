package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tacogips/just-code/internal/config"
	"github.com/tacogips/just-code/internal/template/store"
)

// copyFixtureConfig copies a fixture configuration file into tempDir and
// returns its path.
func copyFixtureConfig(t *testing.T, fixtureName, tempDir string) string {
	t.Helper()

	src, err := filepath.Abs(filepath.Join("../fixtures/config", fixtureName))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	dest := filepath.Join(tempDir, fixtureName)
	if err := os.WriteFile(dest, data, 0644); err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}
	return dest
}

// storeLoader loads templates the way the command does, honoring the
// config path environment override.
func storeLoader(t *testing.T) func() (store.Store, error) {
	t.Helper()
	return func() (store.Store, error) {
		path, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg, _, err := config.NewLoader().LoadOrInstall(path)
		if err != nil {
			return nil, err
		}
		return cfg.Store(), nil
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
