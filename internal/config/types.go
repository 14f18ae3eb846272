package config

import "github.com/tacogips/just-code/internal/template/store"

// Configuration file constants.
const (
	// ConfigFileName is the configuration file name inside the XDG config directory.
	ConfigFileName = "just_code.toml"
	// EnvConfigPath overrides the configuration file path.
	EnvConfigPath = "JUST_CODE_CONFIG"
	// ExecutableKey is the reserved key listing executable extensions.
	// The spelling matches existing configuration files.
	ExecutableKey = "executable_file_extentions"
	// ExecutableKeyAlt is the correctly spelled alias of ExecutableKey.
	ExecutableKeyAlt = "executable_file_extensions"
)

// Config is the parsed user configuration.
type Config struct {
	// Path is the file the configuration was read from.
	Path string
	// Templates maps file extension to its template value as decoded from TOML.
	// Values are normally strings; anything else is reported when used.
	Templates map[string]any
	// ExecutableExtensions lists extensions created with owner execute permission.
	ExecutableExtensions []string
}

// Store returns the configuration as a template store.
func (c *Config) Store() *store.MapStore {
	return &store.MapStore{
		Templates:  c.Templates,
		Executable: c.ExecutableExtensions,
	}
}
