// Package config loads the dice CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configDir  = ".dice"
	configName = "config.yaml"
)

// Verbosity controls how much of a roll's execution is printed.
type Verbosity string

const (
	// VerbosityQuiet prints bare totals only, one per line.
	VerbosityQuiet Verbosity = "quiet"

	// VerbosityNormal prints a numbered total per expression.
	VerbosityNormal Verbosity = "normal"

	// VerbosityVerbose prints every individual draw.
	VerbosityVerbose Verbosity = "verbose"
)

// Config is the on-disk configuration shape at ~/.dice/config.yaml.
type Config struct {
	Verbosity Verbosity     `yaml:"verbosity,omitempty"`
	History   HistoryConfig `yaml:"history,omitempty"`
}

// HistoryConfig configures the roll history store.
type HistoryConfig struct {
	// Enabled defaults to true when unset.
	Enabled *bool `yaml:"enabled,omitempty"`
	// Path overrides the default store location.
	Path string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Verbosity: VerbosityNormal}
}

// DefaultPath returns the default config file path, ~/.dice/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve user home: %w", err)
	}
	return filepath.Join(home, configDir, configName), nil
}

// Load reads the config from the default location. A missing file yields
// Default with no error.
func Load() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom is a testable variant of Load reading a specific path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path from local config discovery.
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch Verbosity(strings.ToLower(string(c.Verbosity))) {
	case VerbosityQuiet, VerbosityNormal, VerbosityVerbose, "":
	default:
		return fmt.Errorf("unrecognized verbosity %q", c.Verbosity)
	}
	if c.Verbosity == "" {
		c.Verbosity = VerbosityNormal
	} else {
		c.Verbosity = Verbosity(strings.ToLower(string(c.Verbosity)))
	}
	return nil
}

// HistoryEnabled reports whether rolls should be recorded.
func (c Config) HistoryEnabled() bool {
	if c.History.Enabled == nil {
		return true
	}
	return *c.History.Enabled
}
