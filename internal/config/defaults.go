package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/tacogips/just-code/internal/debug"
)

// defaultConfig is installed on first run.
//
//go:embed default.toml
var defaultConfig []byte

// DefaultConfigContent returns the embedded default configuration file.
func DefaultConfigContent() []byte {
	out := make([]byte, len(defaultConfig))
	copy(out, defaultConfig)
	return out
}

// InstallDefault writes the default configuration to path unless something
// already exists there. It reports whether the file was written.
func InstallDefault(path string) (bool, error) {
	if _, err := os.Lstat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, NewConfigErrorWithCause(ConfigInvalid, path, "failed to stat configuration file", err)
	}

	debug.Debug("[config] Installing default configuration: %s", path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, NewConfigErrorWithCause(ConfigInvalid, path, "failed to create configuration directory", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, NewConfigErrorWithCause(ConfigInvalid, path, "failed to create configuration file", err)
	}

	_, err = f.Write(defaultConfig)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return false, NewConfigErrorWithCause(ConfigInvalid, path, "failed to write configuration file", err)
	}

	return true, nil
}

func xdgConfigHome() string {
	return xdg.ConfigHome
}
