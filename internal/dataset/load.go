package dataset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/histgen/internal/apperr"
	"github.com/specialistvlad/histgen/internal/ctxlog"
)

// maxLineBytes caps a single input line.
const maxLineBytes = 1 << 20

// Stats describes what a load kept and what it dropped.
type Stats struct {
	Lines   int // all lines, blank ones included
	Parsed  int // non-blank lines that parsed
	Kept    int // parsed values inside the bounds
	Dropped int // parsed values outside the bounds
}

// Load opens path and reads it with Read.
func Load(ctx context.Context, path string, bounds Bounds) ([]float64, Stats, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Opening data file.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, apperr.IO("open data file", err)
	}
	defer f.Close()

	values, stats, err := Read(ctx, f, bounds)
	if err != nil {
		return nil, stats, fmt.Errorf("reading %s: %w", path, err)
	}
	return values, stats, nil
}

// Read streams r line by line. Each line is trimmed; blank lines are skipped
// and every other line must parse as a finite float. Values outside bounds are
// dropped before they are retained.
func Read(ctx context.Context, r io.Reader, bounds Bounds) ([]float64, Stats, error) {
	logger := ctxlog.FromContext(ctx)

	var (
		values []float64
		stats  Stats
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		stats.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := parseValue(line)
		if err != nil {
			return nil, stats, apperr.Parse(fmt.Sprintf("line %d", stats.Lines), err)
		}
		stats.Parsed++
		if !bounds.Contains(v) {
			stats.Dropped++
			continue
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, stats, apperr.IO("read data file", err)
	}
	stats.Kept = len(values)

	logger.Debug("Data file read.", "lines", stats.Lines, "parsed", stats.Parsed, "kept", stats.Kept, "dropped", stats.Dropped, "bounds", bounds.String())
	return values, stats, nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
