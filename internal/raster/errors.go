package raster

import "errors"

// I/O failures are reported as one of these sentinels wrapped with the
// resource identifier, so callers can branch with errors.Is while log
// output still names the offending file.
var (
	// ErrNotFound means the raster resource does not exist.
	ErrNotFound = errors.New("raster not found")

	// ErrUnreadable means the resource exists but could not be decoded
	// as a raster (corrupt file, unsupported layout, malformed header).
	ErrUnreadable = errors.New("unreadable raster")

	// ErrWriteFailed means the destination raster could not be created
	// or written.
	ErrWriteFailed = errors.New("raster write failed")
)
