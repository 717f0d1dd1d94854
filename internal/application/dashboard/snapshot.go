// Package dashboard orchestrates snapshot construction from the raw datasets
// and answers the queries the HTTP layer exposes: area detail, choropleth
// styles, legend aggregates, vendors, and store markers.
package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/reachlab/geodash/internal/domain/campaign"
	"github.com/reachlab/geodash/internal/domain/store"
	"github.com/reachlab/geodash/internal/infrastructure/ingest"
	"github.com/reachlab/geodash/pkg/types/geo"
)

// Snapshot is one immutable, fully-built view of the campaign data. A
// snapshot is never mutated after publication; rebuilds produce a new value
// with a new version.
type Snapshot struct {
	Index      campaign.AreaIndex
	Catalog    []string
	Stores     []store.Location
	Boundaries geo.FeatureCollection
	Version    string
	BuiltAt    time.Time
}

// BuildSnapshot runs the full aggregation pass over decoded datasets.
func BuildSnapshot(ds *ingest.Datasets) *Snapshot {
	visitorsByArea := campaign.AggregateVisitors(ds.VisitorRows)
	index, catalog := campaign.BuildIndex(ds.PrintRows, visitorsByArea)

	return &Snapshot{
		Index:      index,
		Catalog:    catalog,
		Stores:     store.Normalize(ds.StoreRows),
		Boundaries: ds.Boundaries,
		Version:    uuid.NewString(),
		BuiltAt:    time.Now().UTC(),
	}
}
