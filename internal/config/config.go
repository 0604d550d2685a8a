// Package config loads settings for the calc command from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all command configuration.
type Config struct {
	// MaxDepth bounds the nesting of function calls and brackets.
	MaxDepth int `envconfig:"CALC_MAX_DEPTH" default:"64"`
	// Format is a printf verb for results. Empty means integers print as
	// integers and everything else with six decimals.
	Format string `envconfig:"CALC_FORMAT"`
	// Strict disables closing unbalanced brackets before evaluation.
	Strict bool `envconfig:"CALC_STRICT" default:"false"`
	Log    LogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"CALC_LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"CALC_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.MaxDepth <= 0 {
		return nil, fmt.Errorf("failed to load config: CALC_MAX_DEPTH must be positive, not %d", cfg.MaxDepth)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		MaxDepth: 64,
		Log: LogConfig{
			Level: "warn",
		},
	}
}
