// Package style describes how a histogram looks: colours, fonts, labels and
// the physical size of the image. Default reproduces the stock dark theme;
// Load overlays a user-supplied HCL or YAML file on top of it.
package style

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Theme is the complete set of visual parameters used by the renderer.
type Theme struct {
	Background color.Color
	BarFill    color.Color
	BarEdge    color.Color
	Text       color.Color
	Grid       color.Color

	BarEdgeWidth vg.Length
	GridWidth    vg.Length
	GridDashes   []vg.Length

	Title  string
	XLabel string
	YLabel string

	TitleSize vg.Length
	LabelSize vg.Length
	TickSize  vg.Length

	Width  vg.Length
	Height vg.Length
	DPI    int

	// CropPad is the margin kept around the drawn content when the image
	// is cropped to its bounding box.
	CropPad vg.Length
}

// palette holds the named colours available to style files.
var palette = map[string]string{
	"black":      "#000000",
	"white":      "#ffffff",
	"tab_blue":   "#1f77b4",
	"tab_orange": "#ff7f0e",
	"tab_green":  "#2ca02c",
	"tab_red":    "#d62728",
	"tab_purple": "#9467bd",
	"tab_gray":   "#7f7f7f",
}

// Default returns the stock dark theme.
func Default() Theme {
	return Theme{
		Background: color.Black,
		BarFill:    color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		BarEdge:    color.White,
		Text:       color.White,
		Grid:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80},

		BarEdgeWidth: vg.Points(0.5),
		GridWidth:    vg.Points(0.3),
		GridDashes:   []vg.Length{vg.Points(1.1), vg.Points(0.5)},

		Title:  "Histogram",
		XLabel: "Value",
		YLabel: "Frequency",

		TitleSize: vg.Points(10),
		LabelSize: vg.Points(8),
		TickSize:  vg.Points(6),

		Width:  4.27 * vg.Inch,
		Height: 2.4 * vg.Inch,
		DPI:    300,

		CropPad: 0.1 * vg.Inch,
	}
}

// PixelSize returns the canvas size in pixels at the theme's DPI.
func (t Theme) PixelSize() (w, h int) {
	return int(t.Width.Dots(float64(t.DPI)) + 0.5), int(t.Height.Dots(float64(t.DPI)) + 0.5)
}
