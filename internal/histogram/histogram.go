// Package histogram bins a dataset into equal-width intervals spanning its
// observed range.
//
// Bins are half-open, [Min, Max), except the last which is closed on both
// sides so the largest value is counted. A dataset whose values are all equal
// to v spans [v-0.5, v+0.5]; an empty dataset spans [0, 1].
package histogram

import (
	"fmt"
	"math"

	"github.com/specialistvlad/histgen/internal/apperr"
)

// Bin is one interval and the number of values that fell into it.
type Bin struct {
	Min   float64
	Max   float64
	Count int
}

// Histogram is the result of Compute.
type Histogram struct {
	Bins  []Bin
	Width float64
	Total int
}

// Compute bins values into n equal-width bins.
func Compute(values []float64, n int) (*Histogram, error) {
	if n <= 0 {
		return nil, apperr.Configuration("bin count", fmt.Errorf("must be a positive integer, got %d", n))
	}

	lo, hi := span(values)
	width := (hi - lo) / float64(n)
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[n] = hi

	h := &Histogram{
		Bins:  make([]Bin, n),
		Width: width,
		Total: len(values),
	}
	for i := range h.Bins {
		h.Bins[i].Min = edges[i]
		h.Bins[i].Max = edges[i+1]
	}
	for _, v := range values {
		h.Bins[index(v, lo, width, edges)].Count++
	}
	return h, nil
}

func span(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	return lo, hi
}

// index returns the bin for v. The arithmetic guess is corrected against the
// edges so rounding never moves a value across a boundary.
func index(v, lo, width float64, edges []float64) int {
	n := len(edges) - 1
	i := int((v - lo) / width)
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	if v < edges[i] && i > 0 {
		i--
	} else if i < n-1 && v >= edges[i+1] {
		i++
	}
	return i
}

// Edges returns the n+1 bin boundaries.
func (h *Histogram) Edges() []float64 {
	if len(h.Bins) == 0 {
		return nil
	}
	edges := make([]float64, 0, len(h.Bins)+1)
	for _, b := range h.Bins {
		edges = append(edges, b.Min)
	}
	return append(edges, h.Bins[len(h.Bins)-1].Max)
}

// Counts returns the per-bin counts.
func (h *Histogram) Counts() []int {
	counts := make([]int, len(h.Bins))
	for i, b := range h.Bins {
		counts[i] = b.Count
	}
	return counts
}

// MaxCount returns the largest bin count.
func (h *Histogram) MaxCount() int {
	m := 0
	for _, b := range h.Bins {
		m = max(m, b.Count)
	}
	return m
}

// MinPositiveCount returns the smallest non-zero bin count, or 0 if every
// bin is empty.
func (h *Histogram) MinPositiveCount() int {
	m := 0
	for _, b := range h.Bins {
		if b.Count > 0 && (m == 0 || b.Count < m) {
			m = b.Count
		}
	}
	return m
}

// Empty reports whether no value was binned.
func (h *Histogram) Empty() bool {
	return h.Total == 0
}
