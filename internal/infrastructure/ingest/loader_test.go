package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reachlab/geodash/internal/config"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/logging"
	"github.com/reachlab/geodash/pkg/errors"
)

const testBoundaryJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"ZCTA5CE20": "12345"}, "geometry": {"type": "Polygon", "coordinates": []}},
    {"type": "Feature", "properties": {"ZCTA5CE10": "12346"}, "geometry": {"type": "Polygon", "coordinates": []}}
  ]
}`

func writeTestData(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func testDataConfig(dir string) config.DataConfig {
	return config.DataConfig{
		Source:        "local",
		Dir:           dir,
		PrintFile:     "print.csv",
		VisitorFile:   "visitors.csv",
		StoreFile:     "stores.csv",
		BoundaryFiles: []string{"ny.geojson"},
	}
}

func completeTestData(t *testing.T) string {
	return writeTestData(t, map[string]string{
		"print.csv":    "zip,vendor,quantity\n12345,Acme,500\n12346,Beta,300\n",
		"visitors.csv": "zipcode,visitors\n12345,600\n",
		"stores.csv":   "name,lat,lng\nOutlet,44.0,-74.0\n",
		"ny.geojson":   testBoundaryJSON,
	})
}

func newTestLoader(dir string) *Loader {
	cfg := testDataConfig(dir)
	return NewLoader(NewDirSource(cfg.Dir), cfg, logging.NewNopLogger(), nil)
}

func TestLoader_Load(t *testing.T) {
	l := newTestLoader(completeTestData(t))

	ds, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.PrintRows, 2)
	assert.Len(t, ds.VisitorRows, 1)
	assert.Len(t, ds.StoreRows, 1)
	require.Len(t, ds.Boundaries.Features, 2)
	assert.Equal(t, "12345", ds.Boundaries.Features[0].AreaCode())
	assert.Equal(t, "12346", ds.Boundaries.Features[1].AreaCode())
}

func TestLoader_MissingFileFailsWhole(t *testing.T) {
	dir := writeTestData(t, map[string]string{
		"print.csv": "zip,vendor,quantity\n12345,Acme,500\n",
		// visitors.csv absent
		"stores.csv": "name,lat,lng\n",
		"ny.geojson": testBoundaryJSON,
	})

	_, err := newTestLoader(dir).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDatasetUnreadable))
}

func TestLoader_MalformedBoundary(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "<html>not geojson</html>"},
		{"wrong type", `{"type": "Feature", "features": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := completeTestData(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "ny.geojson"), []byte(tt.content), 0o644))

			_, err := newTestLoader(dir).Load(context.Background())
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeBoundaryInvalid))
		})
	}
}

func TestLoader_MergesBoundaryFiles(t *testing.T) {
	dir := completeTestData(t)
	vt := `{"type": "FeatureCollection", "features": [
		{"type": "Feature", "properties": {"ZCTA5CE20": "05401"}, "geometry": {"type": "Polygon", "coordinates": []}}
	]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vt.geojson"), []byte(vt), 0o644))

	cfg := testDataConfig(dir)
	cfg.BoundaryFiles = []string{"ny.geojson", "vt.geojson"}
	l := NewLoader(NewDirSource(dir), cfg, logging.NewNopLogger(), nil)

	ds, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Boundaries.Features, 3)
	assert.Equal(t, "05401", ds.Boundaries.Features[2].AreaCode())
}

func TestDirSource_String(t *testing.T) {
	assert.Equal(t, "dir:/srv/data", NewDirSource("/srv/data").String())
}
