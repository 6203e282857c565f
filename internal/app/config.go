package app

import (
	"errors"

	"github.com/specialistvlad/histgen/internal/apperr"
	"github.com/specialistvlad/histgen/internal/dataset"
	"github.com/specialistvlad/histgen/internal/render"
)

// RenderOptions controls binning, filtering and the optional chart features.
type RenderOptions struct {
	BinCount int
	LogScale bool
	XMin     *float64 // nil leaves the lower side unconstrained
	XMax     *float64 // nil leaves the upper side unconstrained
	ShowGrid bool
}

// Bounds returns the x window values must fall inside.
func (o RenderOptions) Bounds() dataset.Bounds {
	return dataset.Bounds{Min: o.XMin, Max: o.XMax}
}

func (o RenderOptions) renderOptions() render.Options {
	return render.Options{LogScale: o.LogScale, ShowGrid: o.ShowGrid}
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DataPath   string
	OutputPath string
	StylePath  string // optional .hcl/.yaml theme file

	Render RenderOptions

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it. Every failure is a
// configuration error.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DataPath == "" {
		return nil, apperr.Configuration("data path", errors.New("is required and cannot be empty"))
	}
	if cfg.OutputPath == "" {
		return nil, apperr.Configuration("output path", errors.New("is required and cannot be empty"))
	}
	if cfg.Render.BinCount <= 0 {
		return nil, apperr.Configuration("bin count", errors.New("must be a positive integer"))
	}
	if err := cfg.Render.Bounds().Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
