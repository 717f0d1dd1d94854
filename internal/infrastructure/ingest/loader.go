package ingest

import (
	"context"
	"encoding/json"
	"io"

	"github.com/reachlab/geodash/internal/config"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/logging"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/prometheus"
	"github.com/reachlab/geodash/pkg/errors"
	"github.com/reachlab/geodash/pkg/types/geo"
	"github.com/reachlab/geodash/pkg/types/tabular"
)

// Dataset label values for metrics and logs.
const (
	DatasetPrint    = "print"
	DatasetVisitor  = "visitor"
	DatasetStore    = "store"
	DatasetBoundary = "boundary"
)

// Datasets carries the decoded inputs of one snapshot build.
type Datasets struct {
	PrintRows   []tabular.Row
	VisitorRows []tabular.Row
	StoreRows   []tabular.Row
	Boundaries  geo.FeatureCollection
}

// Loader fetches and decodes all datasets from a Source. Any structural
// failure (unreadable file, malformed CSV, invalid GeoJSON) aborts the whole
// load; partial datasets are never returned.
type Loader struct {
	source  Source
	cfg     config.DataConfig
	logger  logging.Logger
	metrics *prometheus.AppMetrics
}

// NewLoader builds a Loader. metrics may be nil.
func NewLoader(source Source, cfg config.DataConfig, logger logging.Logger, metrics *prometheus.AppMetrics) *Loader {
	if metrics == nil {
		metrics = prometheus.NewNopMetrics()
	}
	return &Loader{
		source:  source,
		cfg:     cfg,
		logger:  logger.Named("ingest"),
		metrics: metrics,
	}
}

// Load reads all configured dataset files.
func (l *Loader) Load(ctx context.Context) (*Datasets, error) {
	ds := &Datasets{}
	var err error

	if ds.PrintRows, err = l.loadCSV(ctx, DatasetPrint, l.cfg.PrintFile); err != nil {
		return nil, err
	}
	if ds.VisitorRows, err = l.loadCSV(ctx, DatasetVisitor, l.cfg.VisitorFile); err != nil {
		return nil, err
	}
	if ds.StoreRows, err = l.loadCSV(ctx, DatasetStore, l.cfg.StoreFile); err != nil {
		return nil, err
	}
	if ds.Boundaries, err = l.loadBoundaries(ctx); err != nil {
		return nil, err
	}

	l.logger.Info("datasets loaded",
		logging.String("source", l.source.String()),
		logging.Int("print_rows", len(ds.PrintRows)),
		logging.Int("visitor_rows", len(ds.VisitorRows)),
		logging.Int("store_rows", len(ds.StoreRows)),
		logging.Int("boundary_features", len(ds.Boundaries.Features)),
	)
	return ds, nil
}

func (l *Loader) loadCSV(ctx context.Context, dataset, name string) ([]tabular.Row, error) {
	timer := prometheus.NewTimer(l.metrics.IngestDuration.WithLabelValues(dataset))
	defer timer.ObserveDuration()

	rc, err := l.source.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	rows, err := DecodeCSV(rc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetMalformed, "failed to decode dataset").WithDetail(name)
	}

	l.metrics.IngestRowsTotal.WithLabelValues(dataset, "decoded").Add(float64(len(rows)))
	l.logger.Debug("dataset decoded",
		logging.String("dataset", dataset),
		logging.String("file", name),
		logging.Int("rows", len(rows)),
	)
	return rows, nil
}

func (l *Loader) loadBoundaries(ctx context.Context) (geo.FeatureCollection, error) {
	timer := prometheus.NewTimer(l.metrics.IngestDuration.WithLabelValues(DatasetBoundary))
	defer timer.ObserveDuration()

	collections := make([]geo.FeatureCollection, 0, len(l.cfg.BoundaryFiles))
	for _, name := range l.cfg.BoundaryFiles {
		fc, err := l.loadBoundaryFile(ctx, name)
		if err != nil {
			return geo.FeatureCollection{}, err
		}
		collections = append(collections, fc)
	}

	merged := geo.Merge(collections...)
	l.metrics.IngestRowsTotal.WithLabelValues(DatasetBoundary, "decoded").Add(float64(len(merged.Features)))
	return merged, nil
}

func (l *Loader) loadBoundaryFile(ctx context.Context, name string) (geo.FeatureCollection, error) {
	rc, err := l.source.Open(ctx, name)
	if err != nil {
		return geo.FeatureCollection{}, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return geo.FeatureCollection{}, errors.Wrap(err, errors.ErrCodeDatasetUnreadable, "failed to read boundary file").WithDetail(name)
	}

	var fc geo.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return geo.FeatureCollection{}, errors.Wrap(err, errors.ErrCodeBoundaryInvalid, "failed to parse boundary GeoJSON").WithDetail(name)
	}
	if fc.Type != "FeatureCollection" {
		return geo.FeatureCollection{}, errors.New(errors.ErrCodeBoundaryInvalid, "boundary file is not a FeatureCollection").WithDetail(name)
	}
	return fc, nil
}
