package campaign

import (
	"github.com/reachlab/geodash/pkg/types/tabular"
)

// Candidate header names per logical field.  These are the fixed, finite
// variants seen across dataset exports; resolution is first-non-blank in
// order, not a fuzzy match.
var (
	visitorAreaKeys  = []string{"zipcode", "Zipcode", "ZIP"}
	visitorCountKeys = []string{"visitors", "Visitors"}
)

// AggregateVisitors reduces raw visitor rows to a map from trimmed area code
// to summed visitor count.  Rows with a blank area code or an unparseable
// count are skipped entirely; they contribute nothing, not zero.  Counts
// <= 0 are treated as absent.  Multiple rows per area sum, modelling
// separate survey windows for the same place, and the result is independent
// of row order.
func AggregateVisitors(rows []tabular.Row) map[string]int64 {
	totals := make(map[string]int64)
	for _, row := range rows {
		area := row.Text(visitorAreaKeys...)
		if area == "" {
			continue
		}
		raw, ok := row.Lookup(visitorCountKeys...)
		if !ok {
			continue
		}
		count, err := ParseCount(raw)
		if err != nil || count <= 0 {
			continue
		}
		totals[area] += count
	}
	return totals
}
