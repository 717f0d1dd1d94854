package campaign

import (
	"sort"

	"github.com/reachlab/geodash/pkg/types/tabular"
)

var (
	printAreaKeys     = []string{"zip", "ZIP Code"}
	printVendorKeys   = []string{"vendor", "Vendor"}
	printQuantityKeys = []string{"quantity", "Quantity"}
	printNotesKeys    = []string{"notes", "Notes"}
)

// BuildIndex constructs the AreaIndex and the vendor catalog from raw
// print-distribution rows and the per-area visitor totals produced by
// AggregateVisitors.
//
// Per row: the area code comes from zip / "ZIP Code", the vendor defaults to
// UnknownVendor, and the quantity passes through ParseCount.  Rows with a
// blank area code or a quantity <= 0 are dropped.  Retained records keep
// input order within each area; that order is the dominant-vendor tie-break
// and must stay deterministic.
//
// The returned catalog is the sorted, deduplicated set of vendor names
// across retained records.  Catalog order, not discovery order, drives color
// assignment, so two processes fed the same rows always agree.
func BuildIndex(printRows []tabular.Row, visitorsByArea map[string]int64) (AreaIndex, []string) {
	idx := make(AreaIndex)
	seen := make(map[string]struct{})

	for _, row := range printRows {
		area := row.Text(printAreaKeys...)
		if area == "" {
			continue
		}

		rawQty, ok := row.Lookup(printQuantityKeys...)
		if !ok {
			continue
		}
		qty, err := ParseCount(rawQty)
		if err != nil || qty <= 0 {
			continue
		}

		vendor := row.Text(printVendorKeys...)
		if vendor == "" {
			vendor = UnknownVendor
		}

		visitors := visitorsByArea[area]
		eff := Efficiency(visitors, qty)

		idx[area] = append(idx[area], VendorRecord{
			Vendor:      vendor,
			Visitors:    visitors,
			PrintPieces: qty,
			Notes:       row.Text(printNotesKeys...),
			Efficiency:  eff,
			Tier:        TierOf(eff),
		})
		seen[vendor] = struct{}{}
	}

	catalog := make([]string, 0, len(seen))
	for vendor := range seen {
		catalog = append(catalog, vendor)
	}
	sort.Strings(catalog)

	return idx, catalog
}
