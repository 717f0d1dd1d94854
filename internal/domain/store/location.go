// Package store normalizes retail store location records from heterogeneous
// field names into the flat shape the map renderer places markers from.
package store

import (
	"math"
	"strconv"
	"strings"

	"github.com/reachlab/geodash/pkg/types/tabular"
)

// UnknownStore is substituted when a store row carries no name.
const UnknownStore = "Unknown Store"

var (
	nameKeys      = []string{"name", "Name"}
	latitudeKeys  = []string{"lat", "latitude", "Latitude"}
	longitudeKeys = []string{"lng", "longitude", "Longitude"}
	addressKeys   = []string{"address", "Address"}
)

// Location is one normalized store record.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Normalize resolves each raw store row against the candidate field names
// and drops records whose coordinates do not parse to finite numbers.
// Output preserves input order and performs no deduplication; two rows for
// the same storefront render two markers, which is what the source data
// means.
func Normalize(rows []tabular.Row) []Location {
	out := make([]Location, 0, len(rows))
	for _, row := range rows {
		lat, ok := coordinate(row, latitudeKeys)
		if !ok {
			continue
		}
		lng, ok := coordinate(row, longitudeKeys)
		if !ok {
			continue
		}

		name := row.Text(nameKeys...)
		if name == "" {
			name = UnknownStore
		}

		out = append(out, Location{
			Name:      name,
			Latitude:  lat,
			Longitude: lng,
			Address:   row.Text(addressKeys...),
		})
	}
	return out
}

// coordinate resolves a latitude/longitude field to a finite float64.
func coordinate(row tabular.Row, keys []string) (float64, bool) {
	raw, ok := row.Lookup(keys...)
	if !ok {
		return 0, false
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
