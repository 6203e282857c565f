package apperr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf_ThroughWrapping(t *testing.T) {
	base := Parse("line 3", errors.New(`"abc" is not a number`))
	wrapped := fmt.Errorf("loading dataset: %w", base)

	assert.Equal(t, KindParse, KindOf(wrapped))
	assert.Equal(t, 3, ExitCode(wrapped))
	assert.Equal(t, `parse error: line 3: "abc" is not a number`, base.Error())
}

func TestKindOf_Unclassified(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 0, ExitCode(nil))
}

func TestError_UnwrapReachesCause(t *testing.T) {
	err := IO("open data.txt", fs.ErrNotExist)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestExitCodes(t *testing.T) {
	testCases := []struct {
		kind Kind
		code int
		name string
	}{
		{KindUsage, 1, "usage"},
		{KindConfiguration, 2, "configuration"},
		{KindParse, 3, "parse"},
		{KindIO, 4, "io"},
		{KindUnknown, 1, "unknown"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.kind.ExitCode())
			assert.Equal(t, tc.name, tc.kind.String())
			assert.NotZero(t, New(tc.kind, "", errors.New("x")).Error())
		})
	}
}
