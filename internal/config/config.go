// Package config loads optional user defaults from
// ~/.config/hyprnavi/config.yaml. A missing file yields the built-in
// defaults; command-line flags override whatever is loaded.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir  = ".config/hyprnavi"
	DefaultConfigFile = "config.yaml"
)

// Config is the on-disk configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings holds the tunable defaults.
type Settings struct {
	// BorderSize is the default pixel tolerance for edge detection.
	BorderSize int `yaml:"bordersize"`
	// NoWrap disables workspace wrap-around by default.
	NoWrap bool `yaml:"no_wrap"`
	// TimeoutMS bounds each socket exchange, in milliseconds.
	TimeoutMS int `yaml:"timeout_ms"`
	// Socket overrides the Hyprland request socket path.
	Socket string `yaml:"socket"`
	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Settings: Settings{
			BorderSize: 2,
			TimeoutMS:  5000,
		},
	}
}

// Timeout returns the socket timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Settings.TimeoutMS) * time.Millisecond
}

// Load reads configuration from the given path, or from the default
// location when path is empty. A missing file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates configuration from raw YAML.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks setting ranges.
func (c *Config) Validate() error {
	if c.Settings.BorderSize < 0 {
		return fmt.Errorf("bordersize must be >= 0, got %d", c.Settings.BorderSize)
	}
	if c.Settings.TimeoutMS <= 0 {
		return fmt.Errorf("timeout_ms must be > 0, got %d", c.Settings.TimeoutMS)
	}
	return nil
}
