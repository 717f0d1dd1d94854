package campaign

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCount_Strings(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1200", 1200, false},
		{" 1200 ", 1200, false},
		{"1.2K", 1200, false},
		{"1.2k", 1200, false},
		{"2K", 2000, false},
		{">500", 500, false},
		{"> 500", 500, false},
		{"1,234", 1234, false},
		{"1,234,567", 1234567, false},
		{">2K", 2000, false},
		{"1.7", 1, false}, // fractional counts truncate
		{"0", 0, false},
		{"-3", -3, false}, // callers decide that <= 0 means absent
		{"N/A", 0, true},
		{"n/a", 0, true},
		{"", 0, true},
		{"   ", 0, true},
		{"K", 0, true},
		{">", 0, true},
		{"twelve", 0, true},
		{"12abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			got, err := ParseCount(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotANumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCount_NonStringValues(t *testing.T) {
	got, err := ParseCount(1500)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), got)

	got, err = ParseCount(int64(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	got, err = ParseCount(float64(1234.9))
	require.NoError(t, err)
	assert.Equal(t, int64(1234), got)

	_, err = ParseCount(nil)
	assert.ErrorIs(t, err, ErrNotANumber)

	_, err = ParseCount(true)
	assert.ErrorIs(t, err, ErrNotANumber)
}

// Round-trip property: any canonical non-negative integer survives string
// normalization, its thousand-scaled "K" form reconstructs it, and the ">"
// prefix collapses to the bound.
func TestParseCount_RoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 7, 500, 1000, 1200, 250000} {
		got, err := ParseCount(fmt.Sprintf("%d", n))
		require.NoError(t, err)
		assert.Equal(t, n, got)

		got, err = ParseCount(fmt.Sprintf(">%d", n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	for _, n := range []int64{1000, 1200, 2500, 250000} {
		got, err := ParseCount(fmt.Sprintf("%gK", float64(n)/1000))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}
