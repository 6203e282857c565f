package render

import (
	"image/color"

	"github.com/specialistvlad/histgen/internal/style"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// grid draws dashed lines across the data area at every tick of both axes.
// plotter.Grid only draws major ticks, so minor ticks are handled here with a
// thinner, fainter style.
type grid struct {
	major draw.LineStyle
	minor draw.LineStyle
}

func newGrid(theme style.Theme) *grid {
	major := draw.LineStyle{
		Color:  theme.Grid,
		Width:  theme.GridWidth,
		Dashes: theme.GridDashes,
	}
	minor := major
	minor.Width = major.Width / 2
	faint := color.NRGBAModel.Convert(theme.Grid).(color.NRGBA)
	faint.A /= 2
	minor.Color = faint
	return &grid{major: major, minor: minor}
}

// Plot implements plot.Plotter.
func (g *grid) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)

	for _, tk := range p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max) {
		if tk.Value < p.X.Min || tk.Value > p.X.Max {
			continue
		}
		x := trX(tk.Value)
		c.StrokeLine2(g.styleFor(tk), x, c.Min.Y, x, c.Max.Y)
	}
	for _, tk := range p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max) {
		if tk.Value < p.Y.Min || tk.Value > p.Y.Max {
			continue
		}
		y := trY(tk.Value)
		c.StrokeLine2(g.styleFor(tk), c.Min.X, y, c.Max.X, y)
	}
}

func (g *grid) styleFor(tk plot.Tick) draw.LineStyle {
	if tk.IsMinor() {
		return g.minor
	}
	return g.major
}
