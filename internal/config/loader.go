package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tacogips/just-code/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrInstall loads configuration, first installing the default file if
	// none exists at path. installed reports whether the default was written.
	LoadOrInstall(path string) (cfg *Config, installed bool, err error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	debug.Debug("[config] Loading configuration: %s", path)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid TOML syntax", err)
	}

	raw := k.Raw()
	cfg := &Config{Path: path, Templates: make(map[string]any, len(raw))}

	for key, value := range raw {
		switch key {
		case ExecutableKey, ExecutableKeyAlt:
			exts, err := decodeExtensions(path, key, value)
			if err != nil {
				return nil, err
			}
			cfg.ExecutableExtensions = append(cfg.ExecutableExtensions, usableExtensions(exts)...)
		default:
			cfg.Templates[key] = value
		}
	}

	if err := l.Validate(cfg); err != nil {
		return nil, err
	}

	debug.Debug("[config] Loaded %d template(s), executable extensions: %v",
		len(cfg.Templates), cfg.ExecutableExtensions)
	return cfg, nil
}

// LoadOrInstall loads configuration, installing the embedded default first
// when the file does not exist.
func (l *FileLoader) LoadOrInstall(path string) (*Config, bool, error) {
	installed, err := InstallDefault(path)
	if err != nil {
		return nil, false, err
	}
	cfg, err := l.Load(path)
	if err != nil {
		return nil, installed, err
	}
	return cfg, installed, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	for _, ext := range config.ExecutableExtensions {
		if ext == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, config.Path, ExecutableKey,
				"executable extension cannot be empty")
		}
	}
	return nil
}

// usableExtensions drops entries containing '.'; file extensions never do,
// so such an entry could never match.
func usableExtensions(exts []string) []string {
	kept := exts[:0]
	for _, ext := range exts {
		if strings.Contains(ext, ".") {
			log := debug.Logger("config")
			log.Warn().Str("extension", ext).
				Msg("ignoring executable extension containing '.'")
			continue
		}
		kept = append(kept, ext)
	}
	return kept
}

func decodeExtensions(path, key string, value any) ([]string, error) {
	items, ok := value.([]interface{})
	if !ok {
		return nil, NewConfigErrorWithField(ConfigValidationFailed, path, key,
			fmt.Sprintf("expected an array of strings, got %T", value))
	}

	exts := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, NewConfigErrorWithField(ConfigValidationFailed, path, key,
				fmt.Sprintf("invalid value %v: expected a string", item))
		}
		exts = append(exts, s)
	}
	return exts, nil
}

// DefaultPath returns the configuration file path: $JUST_CODE_CONFIG when
// set, otherwise just_code.toml in the XDG config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return ExpandPath(p)
	}
	return filepath.Join(xdgConfigHome(), ConfigFileName), nil
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Expand ~ to home directory
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	// Make absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
