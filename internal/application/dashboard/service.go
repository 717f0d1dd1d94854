package dashboard

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/reachlab/geodash/internal/config"
	rediscache "github.com/reachlab/geodash/internal/infrastructure/cache/redis"
	"github.com/reachlab/geodash/internal/infrastructure/ingest"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/logging"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/prometheus"
	"github.com/reachlab/geodash/pkg/errors"
)

// Refresh triggers, used as metric labels.
const (
	TriggerStartup = "startup"
	TriggerManual  = "manual"
	TriggerWatch   = "watch"
)

// styleCachePrefix scopes cached style payloads so a snapshot swap can drop
// them all in one pass.
const styleCachePrefix = "style:"

// Service owns the published snapshot and serves all dashboard queries.
// The snapshot is swapped atomically; readers never block a rebuild.
type Service struct {
	loader   *ingest.Loader
	mapCfg   config.MapConfig
	logger   logging.Logger
	metrics  *prometheus.AppMetrics
	cache    rediscache.Cache
	cacheTTL time.Duration

	current atomic.Pointer[Snapshot]
	sf      singleflight.Group
}

type ServiceOption func(*Service)

// WithCache attaches an optional response cache for style lookups.
func WithCache(c rediscache.Cache, ttl time.Duration) ServiceOption {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// NewService builds a Service. metrics may be nil. No snapshot exists until
// the first Refresh succeeds.
func NewService(loader *ingest.Loader, mapCfg config.MapConfig, logger logging.Logger, metrics *prometheus.AppMetrics, opts ...ServiceOption) *Service {
	if metrics == nil {
		metrics = prometheus.NewNopMetrics()
	}
	s := &Service{
		loader:  loader,
		mapCfg:  mapCfg,
		logger:  logger.Named("dashboard"),
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh rebuilds the snapshot from the sources and publishes it.
// Concurrent callers share one build. On failure the previously published
// snapshot stays live.
func (s *Service) Refresh(ctx context.Context, trigger string) (*Snapshot, error) {
	v, err, _ := s.sf.Do("refresh", func() (interface{}, error) {
		return s.rebuild(ctx, trigger)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

func (s *Service) rebuild(ctx context.Context, trigger string) (*Snapshot, error) {
	timer := prometheus.NewTimer(s.metrics.SnapshotBuildDuration.WithLabelValues(trigger))
	defer timer.ObserveDuration()

	ds, err := s.loader.Load(ctx)
	if err != nil {
		s.metrics.SnapshotBuildsTotal.WithLabelValues("error").Inc()
		return nil, errors.Wrap(err, errors.ErrCodeSnapshotBuild, "snapshot build failed")
	}

	snap := BuildSnapshot(ds)
	s.current.Store(snap)

	s.metrics.SnapshotBuildsTotal.WithLabelValues("ok").Inc()
	s.metrics.SnapshotEntities.WithLabelValues("areas").Set(float64(len(snap.Index)))
	s.metrics.SnapshotEntities.WithLabelValues("vendors").Set(float64(len(snap.Catalog)))
	s.metrics.SnapshotEntities.WithLabelValues("stores").Set(float64(len(snap.Stores)))
	s.metrics.SnapshotEntities.WithLabelValues("boundaries").Set(float64(len(snap.Boundaries.Features)))

	if s.cache != nil {
		// Stale styles belong to older snapshot versions; drop them all.
		if _, err := s.cache.DeleteByPrefix(ctx, styleCachePrefix); err != nil {
			s.logger.Warn("failed to invalidate style cache", logging.Err(err))
		}
	}

	s.logger.Info("snapshot published",
		logging.String("version", snap.Version),
		logging.String("trigger", trigger),
		logging.Int("areas", len(snap.Index)),
		logging.Int("vendors", len(snap.Catalog)),
		logging.Int("stores", len(snap.Stores)),
	)
	return snap, nil
}

// Snapshot returns the currently published snapshot.
func (s *Service) Snapshot() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, errors.New(errors.ErrCodeSnapshotNotReady, "no snapshot has been built yet")
	}
	return snap, nil
}

// Ready reports whether a snapshot has been published.
func (s *Service) Ready() bool {
	return s.current.Load() != nil
}

// MapDefaults is the initial viewport handed to the renderer.
type MapDefaults struct {
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Zoom      int     `json:"zoom"`
}

// MapDefaults returns the configured initial viewport.
func (s *Service) MapDefaults() MapDefaults {
	return MapDefaults{
		CenterLat: s.mapCfg.CenterLat,
		CenterLng: s.mapCfg.CenterLng,
		Zoom:      s.mapCfg.Zoom,
	}
}
