package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Save original env and restore after test
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range originalEnv {
			for i, c := range env {
				if c == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}()

	// Clear env to test defaults
	os.Clearenv()

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"InputPath", cfg.InputPath, DefaultInputPath},
		{"OutputPath", cfg.OutputPath, DefaultOutputPath},
		{"SummaryPath", cfg.SummaryPath, ""},
		{"Delimiter", cfg.Delimiter, ","},
		{"LogLevel", cfg.LogLevel, "info"},
		{"LogFormat", cfg.LogFormat, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"INPUT_PATH", "speakers.tsv")
	t.Setenv(EnvPrefix+"OUTPUT_PATH", "out/speakers.h")
	t.Setenv(EnvPrefix+"DELIMITER", "\t")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.InputPath != "speakers.tsv" {
		t.Errorf("expected input path 'speakers.tsv', got %s", cfg.InputPath)
	}
	if cfg.OutputPath != "out/speakers.h" {
		t.Errorf("expected output path 'out/speakers.h', got %s", cfg.OutputPath)
	}
	if cfg.Comma() != '\t' {
		t.Errorf("expected tab delimiter, got %q", cfg.Comma())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.LogLevel)
	}
}

func TestLoadIgnoresUnprefixedEnv(t *testing.T) {
	t.Setenv("OUTPUT_PATH", "elsewhere.h")

	cfg := Load()

	if cfg.OutputPath != DefaultOutputPath {
		t.Errorf("expected default output path, got %s", cfg.OutputPath)
	}
}

func TestLoadEmptyPathsFallBackToDefaults(t *testing.T) {
	t.Setenv(EnvPrefix+"INPUT_PATH", "")
	t.Setenv(EnvPrefix+"OUTPUT_PATH", "")

	cfg := Load()

	if cfg.InputPath != DefaultInputPath {
		t.Errorf("expected input path %q, got %q", DefaultInputPath, cfg.InputPath)
	}
	if cfg.OutputPath != DefaultOutputPath {
		t.Errorf("expected output path %q, got %q", DefaultOutputPath, cfg.OutputPath)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		InputPath:  "in.csv",
		OutputPath: "out.h",
		Delimiter:  ",",
		LogLevel:   "info",
		LogFormat:  "text",
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing input", func(c *Config) { c.InputPath = "" }, true},
		{"missing output", func(c *Config) { c.OutputPath = "" }, true},
		{"multi-char delimiter", func(c *Config) { c.Delimiter = ";;" }, true},
		{"empty delimiter", func(c *Config) { c.Delimiter = "" }, true},
		{"unknown level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"unknown format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"json format", func(c *Config) { c.LogFormat = "json" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
