package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/histgen/internal/ctxlog"
	"github.com/specialistvlad/histgen/internal/dataset"
	"github.com/specialistvlad/histgen/internal/histogram"
	"github.com/specialistvlad/histgen/internal/render"
	"github.com/specialistvlad/histgen/internal/style"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	config *Config
}

// NewApp returns an App that logs to logW with its own isolated logger.
func NewApp(logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{logger: logger, config: cfg}
}

// Result summarises a successful run.
type Result struct {
	Stats     dataset.Stats
	Histogram *histogram.Histogram
}

// Run loads and filters the data file, bins it and renders the histogram to
// the output path. Nothing is written unless every stage succeeds.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config
	a.logger.Debug("App.Run method started.", "data", cfg.DataPath, "output", cfg.OutputPath)

	theme, err := style.Load(ctx, cfg.StylePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load style: %w", err)
	}

	values, stats, err := dataset.Load(ctx, cfg.DataPath, cfg.Render.Bounds())
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	a.logger.Info("Dataset loaded.", "kept", stats.Kept, "dropped", stats.Dropped, "bounds", cfg.Render.Bounds().String())
	if stats.Kept == 0 {
		a.logger.Warn("Working dataset is empty, rendering an empty histogram.")
	}

	h, err := histogram.Compute(values, cfg.Render.BinCount)
	if err != nil {
		return nil, fmt.Errorf("failed to bin dataset: %w", err)
	}
	a.logger.Debug("Histogram computed.", "bins", len(h.Bins), "width", h.Width, "max_count", h.MaxCount())

	if err := render.Render(ctx, h, cfg.Render.renderOptions(), theme, cfg.OutputPath); err != nil {
		return nil, fmt.Errorf("failed to render histogram: %w", err)
	}
	a.logger.Info("Histogram written.", "path", cfg.OutputPath, "bins", len(h.Bins), "values", h.Total)

	return &Result{Stats: stats, Histogram: h}, nil
}
