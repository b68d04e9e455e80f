package raster

import "sync"

// Cache provides thread-safe caching of loaded rasters to avoid redundant
// disk reads.
//
// Entries are keyed by the exact path string passed to Load, so relative
// and absolute paths to the same file cache separately. Grids are
// immutable after load, which makes sharing a cached entry across tool
// calls safe.
//
// Cached rasters stay in memory until Evict or Clear; long-running
// servers handling many rasters should clear periodically.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	grid *Grid
	ref  *SpatialRef
}

// NewCache creates an empty raster cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Load returns the grid and spatial reference for path, reading from disk
// only on the first request.
func (c *Cache) Load(path string) (*Grid, *SpatialRef, error) {
	c.mu.RLock()
	if e, ok := c.entries[path]; ok {
		c.mu.RUnlock()
		return e.grid, e.ref, nil
	}
	c.mu.RUnlock()

	g, sr, err := Read(path)
	if err != nil {
		return nil, nil, err
	}

	c.mu.Lock()
	c.entries[path] = &cacheEntry{grid: g, ref: sr}
	c.mu.Unlock()

	return g, sr, nil
}

// Evict removes a single cached raster. Unknown paths are a no-op.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Clear drops every cached raster.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}
