package style

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/specialistvlad/histgen/internal/apperr"
	"github.com/specialistvlad/histgen/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// overrides is the on-disk shape of a style file. Every field is optional;
// sizes are in points, dimensions in inches.
type overrides struct {
	Title  *string `hcl:"title,optional" yaml:"title"`
	XLabel *string `hcl:"x_label,optional" yaml:"x_label"`
	YLabel *string `hcl:"y_label,optional" yaml:"y_label"`

	Background *string  `hcl:"background,optional" yaml:"background"`
	BarColor   *string  `hcl:"bar_color,optional" yaml:"bar_color"`
	EdgeColor  *string  `hcl:"edge_color,optional" yaml:"edge_color"`
	TextColor  *string  `hcl:"text_color,optional" yaml:"text_color"`
	GridColor  *string  `hcl:"grid_color,optional" yaml:"grid_color"`
	GridAlpha  *float64 `hcl:"grid_alpha,optional" yaml:"grid_alpha"`

	TitleSize *float64 `hcl:"title_size,optional" yaml:"title_size"`
	LabelSize *float64 `hcl:"label_size,optional" yaml:"label_size"`
	TickSize  *float64 `hcl:"tick_size,optional" yaml:"tick_size"`

	WidthIn  *float64 `hcl:"width_in,optional" yaml:"width_in"`
	HeightIn *float64 `hcl:"height_in,optional" yaml:"height_in"`
	DPI      *int     `hcl:"dpi,optional" yaml:"dpi"`
}

// Load returns Default overlaid with the style file at path. An empty path
// yields Default unchanged. The format is chosen by extension: .hcl, .yaml
// or .yml.
func Load(ctx context.Context, path string) (Theme, error) {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		logger.Debug("No style file given, using the default theme.")
		return Default(), nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, apperr.IO("read style file", err)
	}

	var ov overrides
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		err = decodeHCL(src, path, &ov)
	case ".yaml", ".yml":
		err = decodeYAML(src, &ov)
	default:
		err = fmt.Errorf("unsupported style file extension %q: want .hcl, .yaml or .yml", ext)
	}
	if err != nil {
		return Theme{}, apperr.Configuration("style file "+path, err)
	}

	theme, err := ov.apply(Default())
	if err != nil {
		return Theme{}, apperr.Configuration("style file "+path, err)
	}
	logger.Debug("Style file applied.", "path", path)
	return theme, nil
}

func decodeHCL(src []byte, filename string, ov *overrides) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL: %w", diags)
	}
	diags = gohcl.DecodeBody(file.Body, evalContext(), ov)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %w", diags)
	}
	return nil
}

// evalContext exposes the named colours as palette.<name>.
func evalContext() *hcl.EvalContext {
	colors := make(map[string]cty.Value, len(palette))
	for name, hex := range palette {
		colors[name] = cty.StringVal(hex)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": cty.ObjectVal(colors),
		},
	}
}

func decodeYAML(src []byte, ov *overrides) error {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(ov); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode YAML: %w", err)
	}
	return nil
}

func (ov overrides) apply(t Theme) (Theme, error) {
	setString(&t.Title, ov.Title)
	setString(&t.XLabel, ov.XLabel)
	setString(&t.YLabel, ov.YLabel)

	colorFields := []struct {
		name string
		src  *string
		dst  *color.Color
	}{
		{"background", ov.Background, &t.Background},
		{"bar_color", ov.BarColor, &t.BarFill},
		{"edge_color", ov.EdgeColor, &t.BarEdge},
		{"text_color", ov.TextColor, &t.Text},
	}
	for _, f := range colorFields {
		if f.src == nil {
			continue
		}
		c, err := ParseColor(*f.src, 1)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}

	if ov.GridColor != nil || ov.GridAlpha != nil {
		hex, alpha := "#ffffff", 0.5
		if ov.GridColor != nil {
			hex = *ov.GridColor
		}
		if ov.GridAlpha != nil {
			alpha = *ov.GridAlpha
		}
		c, err := ParseColor(hex, alpha)
		if err != nil {
			return Theme{}, fmt.Errorf("grid_color: %w", err)
		}
		t.Grid = c
	}

	sizes := []struct {
		name  string
		src   *float64
		dst   *vg.Length
		scale vg.Length
	}{
		{"title_size", ov.TitleSize, &t.TitleSize, vg.Points(1)},
		{"label_size", ov.LabelSize, &t.LabelSize, vg.Points(1)},
		{"tick_size", ov.TickSize, &t.TickSize, vg.Points(1)},
		{"width_in", ov.WidthIn, &t.Width, vg.Inch},
		{"height_in", ov.HeightIn, &t.Height, vg.Inch},
	}
	for _, s := range sizes {
		if s.src == nil {
			continue
		}
		if !(*s.src > 0) || math.IsInf(*s.src, 0) {
			return Theme{}, fmt.Errorf("%s must be a positive number, got %g", s.name, *s.src)
		}
		*s.dst = vg.Length(*s.src) * s.scale
	}

	if ov.DPI != nil {
		if *ov.DPI <= 0 {
			return Theme{}, fmt.Errorf("dpi must be a positive integer, got %d", *ov.DPI)
		}
		t.DPI = *ov.DPI
	}
	return t, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ParseColor accepts a hex colour ("#1f77b4", "#fff") or a palette name and
// returns it with the given opacity in [0, 1].
func ParseColor(s string, alpha float64) (color.Color, error) {
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return nil, fmt.Errorf("alpha must be within [0, 1], got %g", alpha)
	}
	s = strings.TrimSpace(s)
	if hex, ok := palette[strings.ToLower(s)]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}, nil
}
