package prometheus

// AppMetrics holds every metric the dashboard backend emits.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec

	// Ingest layer
	IngestRowsTotal CounterVec
	IngestDuration  HistogramVec

	// Snapshot lifecycle
	SnapshotBuildsTotal   CounterVec
	SnapshotBuildDuration HistogramVec
	SnapshotEntities      GaugeVec

	// Response cache
	CacheHitsTotal   CounterVec
	CacheMissesTotal CounterVec
}

var (
	DefaultHTTPDurationBuckets  = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultBuildDurationBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
)

// NewAppMetrics registers all application metrics with the collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")

	m.IngestRowsTotal = collector.RegisterCounter("ingest_rows_total", "Dataset rows processed at ingest", "dataset", "result")
	m.IngestDuration = collector.RegisterHistogram("ingest_duration_seconds", "Per-dataset ingest duration", DefaultBuildDurationBuckets, "dataset")

	m.SnapshotBuildsTotal = collector.RegisterCounter("snapshot_builds_total", "Snapshot build attempts", "result")
	m.SnapshotBuildDuration = collector.RegisterHistogram("snapshot_build_duration_seconds", "Snapshot build duration", DefaultBuildDurationBuckets, "trigger")
	m.SnapshotEntities = collector.RegisterGauge("snapshot_entities", "Entity counts in the published snapshot", "entity")

	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Response cache hits", "cache")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Response cache misses", "cache")

	return m
}

// NewNopMetrics returns metrics whose operations all discard their input,
// for tests and for callers that run without a collector.
func NewNopMetrics() *AppMetrics {
	return &AppMetrics{
		HTTPRequestsTotal:     &noopCounterVec{},
		HTTPRequestDuration:   &noopHistogramVec{},
		IngestRowsTotal:       &noopCounterVec{},
		IngestDuration:        &noopHistogramVec{},
		SnapshotBuildsTotal:   &noopCounterVec{},
		SnapshotBuildDuration: &noopHistogramVec{},
		SnapshotEntities:      &noopGaugeVec{},
		CacheHitsTotal:        &noopCounterVec{},
		CacheMissesTotal:      &noopCounterVec{},
	}
}
