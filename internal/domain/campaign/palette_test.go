package campaign

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette_Size(t *testing.T) {
	require.Len(t, Palette, 21)
}

func TestColorFor_Deterministic(t *testing.T) {
	catalog := []string{"Acme", "Beta", "Gamma"}

	first := ColorFor("Beta", catalog)
	assert.Equal(t, Palette[1], first)
	// Invariant under repeated calls and call order.
	_ = ColorFor("Gamma", catalog)
	_ = ColorFor("Acme", catalog)
	assert.Equal(t, first, ColorFor("Beta", catalog))
}

func TestColorFor_CyclesPastPaletteSize(t *testing.T) {
	// Catalog positions i and i+21 share a color by design.
	catalog := make([]string, 0, 43)
	for i := 0; i < 43; i++ {
		catalog = append(catalog, fmt.Sprintf("vendor-%02d", i))
	}

	for i := 0; i < 21; i++ {
		assert.Equal(t, ColorFor(catalog[i], catalog), ColorFor(catalog[i+21], catalog),
			"positions %d and %d must collide", i, i+21)
	}
	assert.Equal(t, ColorFor(catalog[0], catalog), ColorFor(catalog[42], catalog))
}

func TestColorFor_UnknownVendor(t *testing.T) {
	assert.Empty(t, ColorFor("Nobody", []string{"Acme", "Beta"}))
	assert.Empty(t, ColorFor("Anyone", nil))
}
