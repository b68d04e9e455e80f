package raster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyASC = "ncols 1\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\n0.5\n"

func TestCache_LoadCaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.asc")
	writeFile(t, path, tinyASC)

	c := NewCache()
	g1, _, err := c.Load(path)
	require.NoError(t, err)

	// Remove the file; a cached load must still succeed and return the
	// same grid.
	require.NoError(t, os.Remove(path))
	g2, _, err := c.Load(path)
	require.NoError(t, err)
	assert.Same(t, g1, g2)
}

func TestCache_Evict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.asc")
	writeFile(t, path, tinyASC)

	c := NewCache()
	_, _, err := c.Load(path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	c.Evict(path)

	_, _, err = c.Load(path)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCache_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.asc")
	writeFile(t, path, tinyASC)

	c := NewCache()
	_, _, err := c.Load(path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	c.Clear()

	_, _, err = c.Load(path)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCache_LoadError_NotCached(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "late.asc")

	c := NewCache()
	_, _, err := c.Load(path)
	require.ErrorIs(t, err, ErrNotFound)

	// The file appearing later must be picked up.
	writeFile(t, path, tinyASC)
	g, _, err := c.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, g.At(0, 0))
}
