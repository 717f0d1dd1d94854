package dashboard

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reachlab/geodash/internal/config"
	"github.com/reachlab/geodash/internal/domain/campaign"
	rediscache "github.com/reachlab/geodash/internal/infrastructure/cache/redis"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/logging"
)

func testWatcherConfig(dir string) config.DataConfig {
	return config.DataConfig{
		Source:        "local",
		Dir:           dir,
		PrintFile:     "print.csv",
		VisitorFile:   "visitors.csv",
		StoreFile:     "stores.csv",
		BoundaryFiles: []string{"ny.geojson"},
		Watch:         true,
		WatchDebounce: 20 * time.Millisecond,
	}
}

func TestWatcher_RebuildsOnDatasetChange(t *testing.T) {
	dir := t.TempDir()
	writeDatasets(t, dir)
	svc := testService(t, dir)

	first, err := svc.Refresh(context.Background(), TriggerStartup)
	require.NoError(t, err)

	w, err := NewWatcher(testWatcherConfig(dir), svc, logging.NewNopLogger())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	updated := testPrintCSV + "54321,Gamma Press,250,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "print.csv"), []byte(updated), 0o644))

	require.Eventually(t, func() bool {
		snap, err := svc.Snapshot()
		return err == nil && snap.Version != first.Version
	}, 3*time.Second, 10*time.Millisecond)

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, snap.Catalog, "Gamma Press")
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	writeDatasets(t, dir)
	svc := testService(t, dir)

	first, err := svc.Refresh(context.Background(), TriggerStartup)
	require.NoError(t, err)

	w, err := NewWatcher(testWatcherConfig(dir), svc, logging.NewNopLogger())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("noise"), 0o644))

	time.Sleep(150 * time.Millisecond)
	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, first.Version, snap.Version)
}

func TestService_StyleCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := rediscache.NewClient(config.CacheConfig{
		Addr:        mr.Addr(),
		DialTimeout: time.Second,
	}, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	cache := rediscache.NewRedisCache(client, logging.NewNopLogger(), rediscache.WithPrefix("geodash:"))

	dir := t.TempDir()
	writeDatasets(t, dir)
	svc := testService(t, dir, WithCache(cache, time.Minute))

	ctx := context.Background()
	_, err = svc.Refresh(ctx, TriggerStartup)
	require.NoError(t, err)

	computed, err := svc.AreaStyle(ctx, "12345", campaign.SelectAll())
	require.NoError(t, err)

	styleKeys := func() []string {
		var out []string
		for _, k := range mr.Keys() {
			if strings.Contains(k, "style:") {
				out = append(out, k)
			}
		}
		return out
	}
	require.Len(t, styleKeys(), 1)

	// Second read is served from the cache and matches the computed style.
	cached, err := svc.AreaStyle(ctx, "12345", campaign.SelectAll())
	require.NoError(t, err)
	assert.Equal(t, computed, cached)

	// Publishing a new snapshot drops every cached style.
	_, err = svc.Refresh(ctx, TriggerManual)
	require.NoError(t, err)
	assert.Empty(t, styleKeys())
}
