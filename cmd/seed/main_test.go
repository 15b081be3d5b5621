package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_RoundTrip(t *testing.T) {
	cacheFile := filepath.Join(t.TempDir(), "seed", ".seed_cache.json")

	cache, err := loadCache(cacheFile)
	require.NoError(t, err)
	assert.Empty(t, cache.ProcessedFiles)

	cache.ProcessedFiles["data/qa.csv"] = ProcessedFile{
		FilePath:    "data/qa.csv",
		FileHash:    "abc",
		Rows:        2,
		ProcessedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, saveCache(cacheFile, cache))

	loaded, err := loadCache(cacheFile)
	require.NoError(t, err)
	assert.Equal(t, cache.ProcessedFiles, loaded.ProcessedFiles)
}

func TestLoadCache_EmptyAndCorrupt(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	cache, err := loadCache(empty)
	require.NoError(t, err)
	assert.NotNil(t, cache.ProcessedFiles)

	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{"), 0o644))
	_, err = loadCache(corrupt)
	assert.Error(t, err)
}

func TestCalculateFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qa.csv")
	require.NoError(t, os.WriteFile(path, []byte("question,answer\n"), 0o644))

	first, err := calculateFileHash(path)
	require.NoError(t, err)
	assert.Len(t, first, 32)

	again, err := calculateFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	require.NoError(t, os.WriteFile(path, []byte("question,answer\na,b\n"), 0o644))
	changed, err := calculateFileHash(path)
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)

	_, err = calculateFileHash(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
