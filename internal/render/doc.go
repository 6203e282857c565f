// Package render draws a histogram.Histogram with gonum/plot onto a fixed
// size raster canvas and saves it as a PNG.
//
// A Canvas is the only resource with a lifecycle. Render acquires one, and
// releases it on every exit path, including panics raised while drawing.
package render
