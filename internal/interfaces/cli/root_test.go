package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"print_distribution.csv": "zip,vendor,quantity\n12345,Acme Direct,500\n12345,Beta Media,100\n",
		"visitor_data.csv":       "zipcode,visitors\n12345,600\n",
		"store_locations.csv":    "name,lat,lng\nOutlet,44.0,-74.0\n",
		"ny.geojson": `{"type":"FeatureCollection","features":[` +
			`{"type":"Feature","properties":{"ZCTA5CE20":"12345"},"geometry":{"type":"Polygon","coordinates":[]}}]}`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	configYAML := fmt.Sprintf("data:\n  dir: %s\n  boundary_files:\n    - ny.geojson\n", dir)
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o644))
	return configPath
}

func TestRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "geodash", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "version")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "geodash dev")
	assert.Contains(t, out, "commit:")
}

func TestValidateCommand(t *testing.T) {
	configPath := writeFixture(t)

	out, err := runCommand(t, "validate", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "datasets OK")
	assert.Contains(t, out, "print rows:        2")
	assert.Contains(t, out, "areas:   1")
	assert.Contains(t, out, "- Acme Direct")
	assert.Contains(t, out, "- Beta Media")
}

func TestValidateCommand_MissingDataset(t *testing.T) {
	configPath := writeFixture(t)
	require.NoError(t, os.Remove(filepath.Join(filepath.Dir(configPath), "visitor_data.csv")))

	_, err := runCommand(t, "validate", "--config", configPath)
	assert.Error(t, err)
}

func TestUnknownCommand(t *testing.T) {
	_, err := runCommand(t, "bogus")
	assert.Error(t, err)
}
