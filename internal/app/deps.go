package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"svheader/internal/config"
	"svheader/internal/logger"
)

// Deps bundles the runtime dependencies of one generator run.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
}

// Build loads an optional .env file, then config, and creates the logger.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return Deps{}, err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	return Deps{
		Config: cfg,
		Log:    log,
	}, nil
}
