package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "SVHEADER_"

const (
	DefaultInputPath  = "csv_file/ALL.csv"
	DefaultOutputPath = "sv_database.h"
)

// Config holds the generator settings. Every field has a usable default,
// so an empty environment reproduces the stock input and output paths.
type Config struct {
	// Files
	InputPath   string `env:"INPUT_PATH" validate:"required"`
	OutputPath  string `env:"OUTPUT_PATH" validate:"required"`
	SummaryPath string `env:"SUMMARY_PATH"` // optional YAML run summary; empty disables it

	// Input format
	Delimiter string `env:"DELIMITER" envDefault:"," validate:"len=1"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	if cfg.InputPath == "" {
		cfg.InputPath = DefaultInputPath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	return cfg
}

// Validate checks field constraints declared in the struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Comma returns the input field delimiter as a rune.
func (c Config) Comma() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}
