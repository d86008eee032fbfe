// Command svheader converts a table of pre-registered speaker embeddings
// into a C header for on-device speaker verification.
//
// The input is a delimited file with a header row containing at least
// the columns speaker_name and embedding, where embedding looks like
// "[ 0.012 -0.045 ... ]". The output declares SV_EMBEDDING_DIM, one
// const float array per speaker, and the PRE_REGISTERED_SPEAKERS table.
//
// With no configuration the tool reads csv_file/ALL.csv and writes
// sv_database.h. Unlike a pure edit-the-constants setup, paths and logging
// may also be overridden through SVHEADER_* environment variables (or a
// .env file); see internal/config. There are no command-line flags.
package main

import (
	"log/slog"
	"os"

	"svheader/internal/app"
	"svheader/internal/header"
	"svheader/internal/speaker"
	"svheader/internal/summary"
)

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	if err := run(deps); err != nil {
		deps.Log.Error("generation stopped", "err", err)
		os.Exit(1)
	}
}

func run(deps app.Deps) error {
	cfg := deps.Config

	deps.Log.Info("reading speaker table", "input", cfg.InputPath)
	table, err := speaker.LoadFile(cfg.InputPath, cfg.Comma(), deps.Log)
	if err != nil {
		return err
	}
	deps.Log.Info("loaded speakers", "count", table.Len(), "dimension", table.Dimension)

	deps.Log.Info("writing header", "output", cfg.OutputPath)
	if err := header.WriteFile(cfg.OutputPath, table); err != nil {
		return err
	}

	if cfg.SummaryPath != "" {
		if err := summary.WriteFile(cfg.SummaryPath, summary.New(cfg.OutputPath, table)); err != nil {
			return err
		}
		deps.Log.Info("wrote summary", "path", cfg.SummaryPath)
	}

	deps.Log.Info("header generated", "output", cfg.OutputPath, "speakers", table.Len())
	return nil
}
