// Package dataset loads the working dataset: one floating-point value per
// non-blank line of a text file, filtered by optional inclusive bounds.
package dataset
