package campaign

// RelevantVendors returns the area's vendor records that pass the selection
// filter, preserving index order.  Unknown areas yield an empty result, and
// an explicit empty selection yields an empty result for every area; neither
// is an error.  With the all-vendors sentinel the stored slice is returned
// directly; callers must not mutate it.
func (idx AreaIndex) RelevantVendors(area string, sel Selection) []VendorRecord {
	records := idx[area]
	if sel.IsAll() {
		return records
	}
	var out []VendorRecord
	for _, r := range records {
		if sel.Contains(r.Vendor) {
			out = append(out, r)
		}
	}
	return out
}

// WeightedEfficiency computes the combined efficiency of a record set by
// summing visitors and print pieces first and applying the efficiency
// formula to the sums.  This is deliberately not an average of per-record
// efficiencies: large print runs weigh more.  Empty input yields 0.
func WeightedEfficiency(records []VendorRecord) float64 {
	var visitors, pieces int64
	for _, r := range records {
		visitors += r.Visitors
		pieces += r.PrintPieces
	}
	return Efficiency(visitors, pieces)
}

// CombinedEfficiency is WeightedEfficiency over the selection-relevant
// records of an area.
func (idx AreaIndex) CombinedEfficiency(area string, sel Selection) float64 {
	return WeightedEfficiency(idx.RelevantVendors(area, sel))
}

// DominantVendor returns the record with the highest print volume, the
// area's "primary" vendor for rendering.  Ties resolve to the
// first-encountered record (stable reduce, no re-sort), which is why index
// order must stay deterministic.  Returns nil for empty input.
func DominantVendor(records []VendorRecord) *VendorRecord {
	if len(records) == 0 {
		return nil
	}
	best := records[0]
	for _, r := range records[1:] {
		if r.PrintPieces > best.PrintPieces {
			best = r
		}
	}
	return &best
}

// AdditionalVendors returns the records whose vendor identity differs from
// the dominant record's, in input order.  These render as secondary stripe
// entries on overlap areas.  A nil dominant yields nil.
func AdditionalVendors(records []VendorRecord, dominant *VendorRecord) []VendorRecord {
	if dominant == nil {
		return nil
	}
	var out []VendorRecord
	for _, r := range records {
		if r.Vendor != dominant.Vendor {
			out = append(out, r)
		}
	}
	return out
}

// IsOverlap reports whether the area shows more than one relevant vendor
// under the given selection.  Overlap is selection-relative: an area with
// three vendors stops being an overlap once the selection narrows to one of
// them.
func (idx AreaIndex) IsOverlap(area string, sel Selection) bool {
	return len(idx.RelevantVendors(area, sel)) > 1
}
