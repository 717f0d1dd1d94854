package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reachlab/geodash/pkg/errors"
)

func TestDecodeCSV(t *testing.T) {
	input := "zip,vendor,quantity,notes\n12345,Acme Direct,500,Q3 drop\n12346,Beta Media,\"1,200\",\n"

	rows, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "12345", rows[0]["zip"])
	assert.Equal(t, "Acme Direct", rows[0]["vendor"])
	assert.Equal(t, "500", rows[0]["quantity"])
	assert.Equal(t, "1,200", rows[1]["quantity"])
}

func TestDecodeCSV_DelimiterDetection(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"tab", "zip\tvendor\n12345\tAcme\n"},
		{"semicolon", "zip;vendor\n12345;Acme\n"},
		{"pipe", "zip|vendor\n12345|Acme\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := DecodeCSV(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, "12345", rows[0]["zip"])
			assert.Equal(t, "Acme", rows[0]["vendor"])
		})
	}
}

func TestDecodeCSV_RaggedAndBlankRows(t *testing.T) {
	input := "zip,vendor,quantity\n12345,Acme\n\n  ,  ,\n12346,Beta,300,extra\n"

	rows, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Short row: missing trailing cells are absent, not empty strings.
	_, ok := rows[0]["quantity"]
	assert.False(t, ok)

	// Long row: the overflow cell has no header and is dropped.
	assert.Equal(t, "300", rows[1]["quantity"])
	assert.Len(t, rows[1], 3)
}

func TestDecodeCSV_HeaderOnly(t *testing.T) {
	rows, err := DecodeCSV(strings.NewReader("zip,vendor,quantity\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecodeCSV_Empty(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDatasetMalformed))
}

func TestDecodeCSV_HeaderWhitespaceTrimmed(t *testing.T) {
	rows, err := DecodeCSV(strings.NewReader(" zip , vendor \n12345,Acme\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "12345", rows[0]["zip"])
	assert.Equal(t, "Acme", rows[0]["vendor"])
}
