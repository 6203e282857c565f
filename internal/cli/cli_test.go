package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/histgen/internal/app"
	"github.com/specialistvlad/histgen/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected app.RenderOptions
	}{
		{
			name:     "scenario A, nothing constrained",
			args:     []string{"in.txt", "out.png", "4", "false", "false", "0", "false", "0", "false"},
			expected: app.RenderOptions{BinCount: 4},
		},
		{
			name:     "scenario B, x_max constrained",
			args:     []string{"in.txt", "out.png", "4", "false", "false", "0", "true", "3", "false"},
			expected: app.RenderOptions{BinCount: 4, XMax: f64(3)},
		},
		{
			name:     "unused bounds are never parsed",
			args:     []string{"in.txt", "out.png", "10", "TRUE", "False", "garbage", "false", "junk", "True"},
			expected: app.RenderOptions{BinCount: 10, LogScale: true, ShowGrid: true},
		},
		{
			name:     "negative bounds after positionals are not flags",
			args:     []string{"in.txt", "out.png", "2", "false", "true", "-5.5", "true", "-1", "false"},
			expected: app.RenderOptions{BinCount: 2, XMin: f64(-5.5), XMax: f64(-1)},
		},
		{
			name:     "extra arguments are ignored",
			args:     []string{"in.txt", "out.png", "3", "false", "false", "0", "false", "0", "false", "extra"},
			expected: app.RenderOptions{BinCount: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, "in.txt", cfg.DataPath)
			assert.Equal(t, "out.png", cfg.OutputPath)
			assert.Equal(t, tc.expected, cfg.Render)
			assert.Empty(t, out.String())
		})
	}
}

func TestParse_Options(t *testing.T) {
	args := []string{"-log-level", "DEBUG", "-log-format", "text", "-style", "dark.hcl",
		"in.txt", "out.png", "4", "false", "false", "0", "false", "0", "false"}

	cfg, _, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "dark.hcl", cfg.StylePath)
}

func TestParse_TooFewArgumentsPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"in.txt", "out.png", "4"}, out)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.False(t, shouldExit)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok, "expected *ExitError, got %T", err)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-style")
}

func TestParse_Errors(t *testing.T) {
	base := func(i int, v string) []string {
		args := []string{"in.txt", "out.png", "4", "false", "true", "1", "true", "2", "false"}
		args[i] = v
		return args
	}

	testCases := []struct {
		name     string
		args     []string
		wantKind apperr.Kind
	}{
		{"bin count not an integer", base(2, "four"), apperr.KindParse},
		{"bin count is a float", base(2, "2.5"), apperr.KindParse},
		{"bin count zero", base(2, "0"), apperr.KindConfiguration},
		{"bin count negative", base(2, "-2"), apperr.KindConfiguration},
		{"log scale not a bool", base(3, "yes"), apperr.KindParse},
		{"constraint not a bool", base(4, "1"), apperr.KindParse},
		{"x_min not a float", base(5, "low"), apperr.KindParse},
		{"x_max not a float", base(7, "high"), apperr.KindParse},
		{"grid not a bool", base(8, ""), apperr.KindParse},
		{"x_min above x_max", base(5, "10"), apperr.KindConfiguration},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Equal(t, tc.wantKind, apperr.KindOf(err))
		})
	}
}

func TestParse_InvalidOptionValues(t *testing.T) {
	rest := []string{"in.txt", "out.png", "4", "false", "false", "0", "false", "0", "false"}

	for _, opt := range [][]string{{"-log-format", "xml"}, {"-log-level", "loud"}, {"-nope"}} {
		_, _, err := Parse(append(opt, rest...), &bytes.Buffer{})
		require.Error(t, err)
		exitErr, ok := err.(*ExitError)
		require.True(t, ok, "expected *ExitError for %v", opt)
		assert.Equal(t, 2, exitErr.Code)
	}
}
