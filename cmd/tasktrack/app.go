package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/tasktrack/internal/config"
	"github.com/phrazzld/tasktrack/internal/platform/clock"
	"github.com/phrazzld/tasktrack/internal/platform/logger"
	"github.com/phrazzld/tasktrack/internal/report"
	"github.com/phrazzld/tasktrack/internal/store"
)

// application bundles the wired components behind the CLI.
type application struct {
	cfg      *config.Config
	logger   *slog.Logger
	clock    clock.Clock
	store    *store.Store
	exporter *report.Exporter
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to stderr so stdout stays clean for command output.
	lg := logger.Setup(cfg.Log, os.Stderr)

	slog.Info("configuration loaded",
		"log_level", cfg.Log.Level,
		"export_dir", cfg.Export.Dir)

	clk := clock.System{}
	st := store.New(clk, lg)

	return &application{
		cfg:      cfg,
		logger:   lg,
		clock:    clk,
		store:    st,
		exporter: report.NewExporter(st),
	}, nil
}
