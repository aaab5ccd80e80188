// Package config provides configuration management for rp using Viper
// for flexible loading from files, environment variables, and
// command-line flags.
//
// The configuration system supports a .rp.yml file, environment
// variable overrides with the RP_ prefix, and validation. Flags bound
// by the cmd package take precedence over file and environment values.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	rperrors "github.com/magnhaug/rp/internal/errors"
)

// Config holds one invocation's settings. Input lists set here act as
// defaults; flag values are merged on top by the cmd layer.
type Config struct {
	// Templates are template file paths included on every invocation.
	Templates []string `yaml:"templates" mapstructure:"templates"`
	// Files are file paths included on every invocation.
	Files []string `yaml:"files" mapstructure:"files"`
	// ListFile is a default list-file path.
	ListFile string `yaml:"list_file" mapstructure:"list_file"`
	// Output is the output file path; empty means stdout.
	Output string `yaml:"output" mapstructure:"output"`
	// Silent suppresses all diagnostic output on stderr.
	Silent bool `yaml:"silent" mapstructure:"silent"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// Workers bounds the parallel file read pool; 0 means NumCPU.
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// Load builds a Config from the current viper state and validates it.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, rperrors.NewConfigError("could not parse configuration", err)
	}

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks settings that would otherwise fail deep inside the
// pipeline.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return rperrors.NewConfigError(fmt.Sprintf("workers must be non-negative, got %d", c.Workers), nil)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return rperrors.NewConfigError(fmt.Sprintf("unknown log level %q", c.LogLevel), nil)
	}

	return nil
}
