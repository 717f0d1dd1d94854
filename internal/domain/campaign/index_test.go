package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reachlab/geodash/pkg/types/tabular"
)

func TestBuildIndex_EndToEnd(t *testing.T) {
	// The canonical two-vendor scenario from the production dashboard.
	printRows := []tabular.Row{
		{"zip": "12345", "vendor": "Acme", "quantity": "1,000"},
		{"zip": "12345", "vendor": "Beta", "quantity": 200},
	}
	visitors := AggregateVisitors([]tabular.Row{
		{"zipcode": "12345", "visitors": "1.2K"},
	})

	idx, catalog := BuildIndex(printRows, visitors)

	require.Len(t, idx, 1)
	records := idx.Records("12345")
	require.Len(t, records, 2)

	acme := records[0]
	assert.Equal(t, "Acme", acme.Vendor)
	assert.Equal(t, int64(1200), acme.Visitors)
	assert.Equal(t, int64(1000), acme.PrintPieces)
	assert.InDelta(t, 120.0, acme.Efficiency, 1e-9)
	assert.Equal(t, TierHigh, acme.Tier)

	beta := records[1]
	assert.Equal(t, "Beta", beta.Vendor)
	assert.Equal(t, int64(1200), beta.Visitors)
	assert.Equal(t, int64(200), beta.PrintPieces)
	assert.InDelta(t, 600.0, beta.Efficiency, 1e-9)
	assert.Equal(t, TierHigh, beta.Tier)

	assert.True(t, idx.MultiVendor("12345"))
	assert.Equal(t, []string{"Acme", "Beta"}, catalog)

	combined := idx.CombinedEfficiency("12345", SelectAll())
	assert.InDelta(t, 200.0, combined, 1e-9)
}

func TestBuildIndex_InvalidRowExclusion(t *testing.T) {
	printRows := []tabular.Row{
		{"zip": "12345", "vendor": "Acme", "quantity": "500"},
		{"zip": "12345", "vendor": "GhostCo", "quantity": 0},     // zero volume
		{"zip": "", "vendor": "EdgeOnly", "quantity": "900"},     // blank area
		{"vendor": "NoArea", "quantity": "900"},                  // missing area key
		{"zip": "14850", "vendor": "BadQty", "quantity": "N/A"},  // unparseable
		{"zip": "14850", "vendor": "NegQty", "quantity": "-100"}, // negative
	}

	idx, catalog := BuildIndex(printRows, nil)

	assert.Len(t, idx, 1)
	assert.Len(t, idx.Records("12345"), 1)
	assert.Nil(t, idx.Records("14850"))

	// Dropped rows never leak their vendors into the catalog, even when the
	// vendor name is unique.
	assert.Equal(t, []string{"Acme"}, catalog)
}

func TestBuildIndex_Defaults(t *testing.T) {
	printRows := []tabular.Row{
		{"ZIP Code": " 05401 ", "quantity": "250", "notes": "resort corridor"},
	}

	idx, catalog := BuildIndex(printRows, map[string]int64{"05401": 10})

	records := idx.Records("05401")
	require.Len(t, records, 1)
	assert.Equal(t, UnknownVendor, records[0].Vendor)
	assert.Equal(t, "resort corridor", records[0].Notes)
	assert.InDelta(t, 4.0, records[0].Efficiency, 1e-9)
	assert.Equal(t, TierLow, records[0].Tier)
	assert.Equal(t, []string{UnknownVendor}, catalog)
}

func TestBuildIndex_MissingVisitorsDefaultZero(t *testing.T) {
	idx, _ := BuildIndex([]tabular.Row{
		{"zip": "13676", "vendor": "Acme", "quantity": "400"},
	}, map[string]int64{"99999": 500})

	records := idx.Records("13676")
	require.Len(t, records, 1)
	assert.Zero(t, records[0].Visitors)
	assert.Zero(t, records[0].Efficiency)
	assert.Equal(t, TierLow, records[0].Tier)
}

func TestBuildIndex_OrderPreservedPerArea(t *testing.T) {
	printRows := []tabular.Row{
		{"zip": "12345", "vendor": "C", "quantity": "10"},
		{"zip": "12345", "vendor": "A", "quantity": "20"},
		{"zip": "12345", "vendor": "B", "quantity": "30"},
	}

	idx, catalog := BuildIndex(printRows, nil)

	var order []string
	for _, r := range idx.Records("12345") {
		order = append(order, r.Vendor)
	}
	assert.Equal(t, []string{"C", "A", "B"}, order, "insertion order preserved")
	assert.Equal(t, []string{"A", "B", "C"}, catalog, "catalog sorted regardless")
}

func TestAreaIndex_Areas(t *testing.T) {
	idx, _ := BuildIndex([]tabular.Row{
		{"zip": "14850", "vendor": "A", "quantity": "1"},
		{"zip": "05401", "vendor": "A", "quantity": "1"},
		{"zip": "12345", "vendor": "A", "quantity": "1"},
	}, nil)
	assert.Equal(t, []string{"05401", "12345", "14850"}, idx.Areas())
}
