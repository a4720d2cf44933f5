package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScoresCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "similarity.csv")

	err := writeScoresCSV(path, map[string]float64{
		"Low":   0.25,
		"High":  0.9,
		"Also":  0.25,
		"Seedy": 1.0,
	})
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 5)
	assert.Equal(t, []string{"title", "score"}, records[0])
	assert.Equal(t, "Seedy", records[1][0])
	assert.Equal(t, "High", records[2][0])
	// ties ordered by title
	assert.Equal(t, "Also", records[3][0])
	assert.Equal(t, "Low", records[4][0])
	assert.Equal(t, "1.000000", records[1][1])
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeJSON(path, map[string]int{"a": 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))
}
