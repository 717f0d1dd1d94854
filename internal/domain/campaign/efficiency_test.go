package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEfficiency(t *testing.T) {
	assert.InDelta(t, 120.0, Efficiency(1200, 1000), 1e-9)
	assert.InDelta(t, 600.0, Efficiency(1200, 200), 1e-9)
	assert.InDelta(t, 2.5, Efficiency(25, 1000), 1e-9)
	assert.Zero(t, Efficiency(1200, 0))
	assert.Zero(t, Efficiency(1200, -5))
	assert.Zero(t, Efficiency(0, 1000))
}

// Boundary exactness: thresholds are inclusive upper bounds.
func TestTierOf_Boundaries(t *testing.T) {
	tests := []struct {
		efficiency float64
		want       Tier
	}{
		{0, TierLow},
		{5.0, TierLow},
		{5.01, TierMedium},
		{49.0, TierMedium},
		{49.01, TierHigh},
		{50.0, TierHigh},
		{600.0, TierHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierOf(tt.efficiency), "tier(%v)", tt.efficiency)
	}
}

func TestVisualIntensity(t *testing.T) {
	assert.Equal(t, 0.3, VisualIntensity(2.0))
	assert.Equal(t, 0.3, VisualIntensity(5.0))
	assert.Equal(t, 0.6, VisualIntensity(30.0))
	assert.Equal(t, 1.0, VisualIntensity(75.0))
}
