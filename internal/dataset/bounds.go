package dataset

import (
	"fmt"

	"github.com/specialistvlad/histgen/internal/apperr"
)

// Bounds is an optional inclusive [Min, Max] window. A nil side is unbounded.
type Bounds struct {
	Min *float64
	Max *float64
}

// Validate rejects a window whose lower side lies above its upper side.
func (b Bounds) Validate() error {
	if b.Min != nil && b.Max != nil && *b.Min > *b.Max {
		return apperr.Configuration("x bounds", fmt.Errorf("x_min %g is greater than x_max %g", *b.Min, *b.Max))
	}
	return nil
}

// Contains reports whether v lies inside the window. Both sides are inclusive.
func (b Bounds) Contains(v float64) bool {
	if b.Min != nil && v < *b.Min {
		return false
	}
	if b.Max != nil && v > *b.Max {
		return false
	}
	return true
}

// Filter returns the values inside the window, preserving order. The input
// slice is not modified.
func (b Bounds) Filter(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if b.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

func (b Bounds) String() string {
	lo, hi := "-inf", "+inf"
	if b.Min != nil {
		lo = fmt.Sprintf("%g", *b.Min)
	}
	if b.Max != nil {
		hi = fmt.Sprintf("%g", *b.Max)
	}
	return "[" + lo + ", " + hi + "]"
}
