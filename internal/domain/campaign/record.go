// Package campaign implements the print-campaign aggregation core: numeric
// normalization of messy count fields, visitor aggregation by postal area,
// the area-to-vendor index with derived efficiency metrics, deterministic
// vendor coloring, and the selection-aware query operations consumed by the
// dashboard layer.
//
// Everything in this package is pure computation over in-memory rows; the
// ingest layer owns I/O and the dashboard layer owns snapshot lifecycle.
package campaign

import "sort"

// UnknownVendor is substituted when a print row carries no vendor name.
const UnknownVendor = "Unknown Vendor"

// VendorRecord is one vendor's activity within one postal area.  Visitors is
// the area-level total shared by every vendor active in that area; only
// PrintPieces is vendor-specific.
type VendorRecord struct {
	Vendor      string  `json:"vendor"`
	Visitors    int64   `json:"visitors"`
	PrintPieces int64   `json:"print_pieces"`
	Notes       string  `json:"notes,omitempty"`
	Efficiency  float64 `json:"efficiency"`
	Tier        Tier    `json:"efficiency_tier"`
}

// AreaIndex maps a postal area code to the vendor records active there, in
// input-row order.  Invariants maintained by BuildIndex:
//
//   - every key maps to a non-empty slice (areas without valid rows are
//     absent, not present-with-empty-list)
//   - every record has PrintPieces > 0 and a non-empty Vendor
//
// The per-area order is the tie-break for dominant-vendor resolution and
// must stay stable; callers treat stored slices as read-only.
type AreaIndex map[string][]VendorRecord

// Records returns the vendor records for an area, or nil for unknown areas.
func (idx AreaIndex) Records(area string) []VendorRecord {
	return idx[area]
}

// Areas returns the indexed area codes in sorted order.
func (idx AreaIndex) Areas() []string {
	out := make([]string, 0, len(idx))
	for area := range idx {
		out = append(out, area)
	}
	sort.Strings(out)
	return out
}

// MultiVendor reports whether more than one vendor record exists for the
// area regardless of any selection.  Selection-relative overlap is
// IsOverlap.
func (idx AreaIndex) MultiVendor(area string) bool {
	return len(idx[area]) > 1
}
