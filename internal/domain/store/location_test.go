package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reachlab/geodash/pkg/types/tabular"
)

func TestNormalize(t *testing.T) {
	rows := []tabular.Row{
		{"name": "Potsdam Outlet", "lat": "44.6698", "lng": "-74.9813", "address": "1 Market St"},
		{"Name": "Burlington Store", "latitude": 44.4759, "longitude": -73.2121, "Address": "2 Church St"},
		{"Latitude": "43.0481", "Longitude": "-75.1735"}, // no name, no address
	}

	got := Normalize(rows)
	require.Len(t, got, 3)

	assert.Equal(t, Location{Name: "Potsdam Outlet", Latitude: 44.6698, Longitude: -74.9813, Address: "1 Market St"}, got[0])
	assert.Equal(t, "Burlington Store", got[1].Name)
	assert.Equal(t, UnknownStore, got[2].Name)
	assert.Empty(t, got[2].Address)
}

func TestNormalize_DropsInvalidCoordinates(t *testing.T) {
	rows := []tabular.Row{
		{"name": "No Coords"},
		{"name": "Bad Lat", "lat": "north", "lng": "-74.0"},
		{"name": "Missing Lng", "lat": "44.0"},
		{"name": "NaN Lat", "lat": math.NaN(), "lng": -74.0},
		{"name": "Inf Lng", "lat": 44.0, "lng": math.Inf(1)},
		{"name": "Keeper", "lat": "44.0", "lng": "-74.0"},
	}

	got := Normalize(rows)
	require.Len(t, got, 1)
	assert.Equal(t, "Keeper", got[0].Name)
}

func TestNormalize_OrderPreservedNoDedup(t *testing.T) {
	rows := []tabular.Row{
		{"name": "Twin", "lat": "44.0", "lng": "-74.0"},
		{"name": "Other", "lat": "45.0", "lng": "-73.0"},
		{"name": "Twin", "lat": "44.0", "lng": "-74.0"},
	}

	got := Normalize(rows)
	require.Len(t, got, 3)
	assert.Equal(t, "Twin", got[0].Name)
	assert.Equal(t, "Other", got[1].Name)
	assert.Equal(t, "Twin", got[2].Name)
}
