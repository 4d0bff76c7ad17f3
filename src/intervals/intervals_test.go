package intervals

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupNativeIntervals(t *testing.T) {
	iv, ok := Lookup("in_1_minute")
	require.True(t, ok)
	assert.Equal(t, "1", iv.Resolution)
	assert.False(t, iv.NeedsResample())
	assert.Equal(t, 1, iv.BarsPerWindow())

	iv, ok = Lookup("in_daily")
	require.True(t, ok)
	assert.Equal(t, "1D", iv.Resolution)
	assert.False(t, iv.NeedsResample())
}

func TestLookupSyntheticIntervals(t *testing.T) {
	tests := []struct {
		name          string
		resolution    string
		barsPerWindow int
	}{
		{"in_10_minute", "5", 2},
		{"in_75_minute", "15", 5},
		{"in_125_minute", "5", 25},
		{"in_5_hour", "60", 5},
		{"in_6_hour", "180", 2},
		{"in_8_hour", "240", 2},
		{"in_10_hour", "60", 10},
		{"in_12_hour", "60", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, ok := Lookup(tt.name)
			require.True(t, ok)
			assert.True(t, iv.NeedsResample())
			assert.Equal(t, tt.resolution, iv.Resolution)
			assert.Equal(t, tt.barsPerWindow, iv.BarsPerWindow())
		})
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported(DefaultName))
	assert.True(t, IsSupported("in_monthly"))
	assert.False(t, IsSupported("in_7_minute"))
	assert.False(t, IsSupported(""))
	assert.False(t, IsSupported("1m"))
}

func TestNamesAreSortedAndComplete(t *testing.T) {
	names := Names()
	assert.Len(t, names, 21)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		assert.True(t, IsSupported(name))
	}
}
