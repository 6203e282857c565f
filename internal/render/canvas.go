package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/specialistvlad/histgen/internal/style"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrClosed is returned when a Canvas is used after Close.
var ErrClosed = errors.New("render: canvas is closed")

// Canvas is a raster drawing surface sized and coloured by a style.Theme.
type Canvas struct {
	img   *vgimg.Canvas
	theme style.Theme
}

// NewCanvas allocates a canvas of theme.Width × theme.Height at theme.DPI,
// filled with the theme background. Callers must Close it.
func NewCanvas(theme style.Theme) *Canvas {
	return &Canvas{
		img: vgimg.NewWith(
			vgimg.UseWH(theme.Width, theme.Height),
			vgimg.UseDPI(theme.DPI),
			vgimg.UseBackgroundColor(theme.Background),
		),
		theme: theme,
	}
}

// Draw renders p onto the canvas. A panic inside the plotting library is
// returned as an error.
func (c *Canvas) Draw(p *plot.Plot) (err error) {
	if c.img == nil {
		return ErrClosed
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("drawing plot panicked: %v", r)
		}
	}()
	p.Draw(draw.New(c.img))
	return nil
}

// Image returns the drawn image cropped to its content plus the theme's
// CropPad margin.
func (c *Canvas) Image() (image.Image, error) {
	if c.img == nil {
		return nil, ErrClosed
	}
	img := c.img.Image()
	pad := int(c.theme.CropPad.Dots(float64(c.theme.DPI)) + 0.5)
	return crop(img, tightBounds(img, c.theme.Background, pad)), nil
}

// Close releases the pixel buffer. It is safe to call more than once.
func (c *Canvas) Close() error {
	c.img = nil
	return nil
}
