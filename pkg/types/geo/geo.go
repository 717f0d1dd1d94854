// Package geo defines the minimal GeoJSON types the dashboard passes between
// the ingest layer and the rendering client.  Geometry is carried opaque;
// geodash makes no claim about polygon validity, it only resolves which
// postal area a feature describes.
package geo

import (
	"encoding/json"

	"github.com/reachlab/geodash/pkg/types/tabular"
)

// areaCodeKeys are the boundary property names that may carry the postal
// code, tried in order.  Census ZCTA exports switched the property name
// between the 2010 and 2020 vintages, and shipped data mixes both.
var areaCodeKeys = []string{"ZCTA5CE20", "ZCTA5CE10"}

// Feature is a single GeoJSON feature.  Geometry is kept as raw JSON and
// round-tripped untouched to the rendering client.
type Feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// AreaCode returns the postal area code carried by the feature's properties,
// or "" when neither candidate property is present.
func (f Feature) AreaCode() string {
	return tabular.Row(f.Properties).Text(areaCodeKeys...)
}

// FeatureCollection is a GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Merge concatenates several collections into one, preserving feature order.
// The production dataset ships one file per state.
func Merge(collections ...FeatureCollection) FeatureCollection {
	merged := FeatureCollection{Type: "FeatureCollection"}
	for _, fc := range collections {
		merged.Features = append(merged.Features, fc.Features...)
	}
	return merged
}
