package render

import (
	"context"
	"fmt"

	"github.com/specialistvlad/histgen/internal/ctxlog"
	"github.com/specialistvlad/histgen/internal/histogram"
	"github.com/specialistvlad/histgen/internal/style"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Options selects the optional parts of the chart.
type Options struct {
	LogScale bool
	ShowGrid bool
}

// Render draws h and writes it to path as a PNG.
func Render(ctx context.Context, h *histogram.Histogram, opts Options, theme style.Theme, path string) (err error) {
	logger := ctxlog.FromContext(ctx)

	canvas := NewCanvas(theme)
	defer func() {
		if cerr := canvas.Close(); err == nil {
			err = cerr
		}
		logger.Debug("Canvas released.")
	}()

	p := NewPlot(ctx, h, opts, theme)
	if err := canvas.Draw(p); err != nil {
		return err
	}
	logger.Debug("Plot drawn.", "bins", len(h.Bins), "log_scale", opts.LogScale, "grid", opts.ShowGrid)

	img, err := canvas.Image()
	if err != nil {
		return err
	}
	if err := WritePNG(path, img, theme.DPI); err != nil {
		return fmt.Errorf("saving histogram: %w", err)
	}
	logger.Debug("Image written.", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// NewPlot builds the chart for h without drawing it.
func NewPlot(ctx context.Context, h *histogram.Histogram, opts Options, theme style.Theme) *plot.Plot {
	logger := ctxlog.FromContext(ctx)

	p := plot.New()
	p.BackgroundColor = theme.Background

	p.Title.Text = theme.Title
	p.Title.TextStyle.Color = theme.Text
	p.Title.TextStyle.Font.Size = theme.TitleSize

	styleAxis(&p.X, theme, theme.XLabel)
	styleAxis(&p.Y, theme, theme.YLabel)

	logScale := opts.LogScale
	if logScale && h.MaxCount() == 0 {
		logger.Warn("Log scale requested for an empty histogram, using a linear axis instead.")
		logScale = false
	}

	hist := &plotter.Histogram{
		Bins:      toPlotterBins(h),
		Width:     h.Width,
		FillColor: theme.BarFill,
		LineStyle: draw.LineStyle{
			Color: theme.BarEdge,
			Width: theme.BarEdgeWidth,
		},
		LogY: logScale,
	}
	p.Add(hist)

	if logScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Min = float64(h.MinPositiveCount()) / 2
		p.Y.Max = float64(h.MaxCount()) * 2
	} else {
		p.Y.Min = 0
		p.Y.Max = 1
		if m := h.MaxCount(); m > 0 {
			p.Y.Max = float64(m) * 1.05
		}
	}

	if opts.ShowGrid {
		p.Add(newGrid(theme))
	}
	return p
}

func styleAxis(a *plot.Axis, theme style.Theme, label string) {
	a.Label.Text = label
	a.Label.TextStyle.Color = theme.Text
	a.Label.TextStyle.Font.Size = theme.LabelSize
	a.LineStyle.Color = theme.Text
	a.Tick.LineStyle.Color = theme.Text
	a.Tick.Label.Color = theme.Text
	a.Tick.Label.Font.Size = theme.TickSize
}

func toPlotterBins(h *histogram.Histogram) []plotter.HistogramBin {
	bins := make([]plotter.HistogramBin, len(h.Bins))
	for i, b := range h.Bins {
		bins[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: float64(b.Count)}
	}
	return bins
}
