// Package config loads the optional fsaccess.yaml project configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig carries the per-project overrides for access checking.
// All fields are optional; zero values mean "use the built-in default".
type ProjectConfig struct {
	// Verbose enables diagnostic logging by default, as if --verbose were
	// passed on every invocation.
	Verbose bool `yaml:"verbose"`

	// TestUtility names the external utility used to verify the execute bit
	// on POSIX-like platforms. Defaults to "test".
	TestUtility string `yaml:"test_utility,omitempty"`

	// ExecuteExtensions replaces the extension allow-list used to
	// approximate execute permission on platforms without an executable
	// bit. Entries are matched case-insensitively and must include the dot.
	ExecuteExtensions []string `yaml:"execute_extensions,omitempty"`
}

const ConfigFileName = "fsaccess.yaml"

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
