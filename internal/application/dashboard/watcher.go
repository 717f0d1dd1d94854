package dashboard

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/reachlab/geodash/internal/config"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/logging"
	"github.com/reachlab/geodash/pkg/errors"
)

// Watcher rebuilds the snapshot when a dataset file changes on disk.
// Spreadsheet exports arrive as several writes in quick succession, so
// rebuilds are debounced rather than fired per event.
type Watcher struct {
	fsw      *fsnotify.Watcher
	svc      *Service
	logger   logging.Logger
	debounce time.Duration
	files    map[string]struct{}
	done     chan struct{}
}

// NewWatcher watches the dataset directory. Only events on the configured
// dataset file names trigger a rebuild.
func NewWatcher(cfg config.DataConfig, svc *Service, logger logging.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create filesystem watcher")
	}
	if err := fsw.Add(cfg.Dir); err != nil {
		fsw.Close()
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to watch dataset directory").WithDetail(cfg.Dir)
	}

	files := make(map[string]struct{})
	for _, name := range append([]string{cfg.PrintFile, cfg.VisitorFile, cfg.StoreFile}, cfg.BoundaryFiles...) {
		files[name] = struct{}{}
	}

	return &Watcher{
		fsw:      fsw,
		svc:      svc,
		logger:   logger.Named("watcher"),
		debounce: cfg.WatchDebounce,
		files:    files,
		done:     make(chan struct{}),
	}, nil
}

// Start runs the event loop in a goroutine until ctx is done or Close is
// called.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("dataset change detected",
				logging.String("file", filepath.Base(event.Name)),
				logging.String("op", event.Op.String()),
			)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			pending = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("filesystem watcher error", logging.Err(err))

		case <-pending:
			timer = nil
			pending = nil
			if _, err := w.svc.Refresh(ctx, TriggerWatch); err != nil {
				// Keep serving the previous snapshot; the next change will
				// retry.
				w.logger.Error("snapshot rebuild after file change failed", logging.Err(err))
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	_, ok := w.files[filepath.Base(event.Name)]
	return ok
}

// Close stops the event loop and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
