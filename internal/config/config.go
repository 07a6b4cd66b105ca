// Package config provides configuration management for the confkit CLI
// using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// AppName is the application name used for config file naming.
const AppName = "confkit"

// Config represents the CLI's own settings. These control tool behavior
// only; the files confkit operates on are untouched by them.
type Config struct {
	// Color controls colored output: "auto", "always", or "never".
	Color string `mapstructure:"color" yaml:"color"`

	// Verbose is the default verbosity when no -v flag is given.
	Verbose int `mapstructure:"verbose" yaml:"verbose"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	// Environment variable support
	viper.SetEnvPrefix("CONFKIT")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("color", "auto")
	viper.SetDefault("verbose", 0)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
