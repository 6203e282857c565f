package dataset

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/histgen/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestRead(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		bounds    Bounds
		expected  []float64
		expectErr bool
	}{
		{
			name:     "scenario A values, unbounded",
			input:    "1\n2\n2\n3\n100\n",
			expected: []float64{1, 2, 2, 3, 100},
		},
		{
			name:     "scenario B drops values above x_max",
			input:    "1\n2\n2\n3\n100\n",
			bounds:   Bounds{Max: f64(3)},
			expected: []float64{1, 2, 2, 3},
		},
		{
			name:     "blank and whitespace lines are skipped",
			input:    "\n  1.5  \n\t\n-2e3\r\n\n",
			expected: []float64{1.5, -2000},
		},
		{
			name:     "bounds are inclusive on both sides",
			input:    "0\n1\n5\n9\n10\n",
			bounds:   Bounds{Min: f64(1), Max: f64(9)},
			expected: []float64{1, 5, 9},
		},
		{
			name:     "everything filtered out",
			input:    "1\n2\n",
			bounds:   Bounds{Min: f64(50)},
			expected: nil,
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:      "error - malformed line",
			input:     "1\nabc\n3\n",
			expectErr: true,
		},
		{
			name:      "error - NaN literal",
			input:     "NaN\n",
			expectErr: true,
		},
		{
			name:      "error - overflow to infinity",
			input:     "1e400\n",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values, _, err := Read(context.Background(), strings.NewReader(tc.input), tc.bounds)
			if tc.expectErr {
				require.Error(t, err)
				assert.Equal(t, apperr.KindParse, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, values); diff != "" {
				t.Errorf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead_ParseErrorNamesLine(t *testing.T) {
	_, stats, err := Read(context.Background(), strings.NewReader("1\n\n2\nx\n"), Bounds{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
	assert.Equal(t, 2, stats.Parsed)
}

func TestRead_Stats(t *testing.T) {
	_, stats, err := Read(context.Background(), strings.NewReader("1\n\n2\n2\n3\n100\n"), Bounds{Max: f64(3)})
	require.NoError(t, err)
	assert.Equal(t, Stats{Lines: 6, Parsed: 5, Kept: 4, Dropped: 1}, stats)
}

func TestLoad_MissingFileIsIOError(t *testing.T) {
	_, _, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), Bounds{})
	require.Error(t, err)
	assert.Equal(t, apperr.KindIO, apperr.KindOf(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n1\n2\n"), 0600))

	values, stats, err := Load(context.Background(), path, Bounds{})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
	assert.Equal(t, 3, stats.Kept)
}

func TestBounds_FilterIsIdempotent(t *testing.T) {
	values := []float64{-5, -1, 0, 0.5, 1, 2, 7, 7, 100}
	bounds := Bounds{Min: f64(0), Max: f64(7)}

	once := bounds.Filter(values)
	twice := bounds.Filter(once)

	assert.Equal(t, []float64{0, 0.5, 1, 2, 7, 7}, once)
	assert.Equal(t, once, twice)
}

func TestBounds_UnsetMinExcludesNothingSmall(t *testing.T) {
	values := []float64{-1e300, -42, 0}
	assert.Equal(t, values, Bounds{}.Filter(values))
	assert.Equal(t, values, Bounds{Max: f64(0)}.Filter(values))
}

func TestBounds_Validate(t *testing.T) {
	require.NoError(t, Bounds{}.Validate())
	require.NoError(t, Bounds{Min: f64(3), Max: f64(3)}.Validate())
	require.NoError(t, Bounds{Min: f64(10)}.Validate())

	err := Bounds{Min: f64(4), Max: f64(3)}.Validate()
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfiguration, apperr.KindOf(err))
}

func TestBounds_String(t *testing.T) {
	assert.Equal(t, "[-inf, +inf]", Bounds{}.String())
	assert.Equal(t, "[1, 2.5]", Bounds{Min: f64(1), Max: f64(2.5)}.String())
}
