package raster

// SpatialRef carries the spatial metadata of a raster: the affine
// geotransform mapping cell indices to map coordinates, and the coordinate
// reference system as WKT.
//
// The numeric core treats a SpatialRef as opaque. It is captured when a
// raster is read and forwarded unchanged when a derived grid is written,
// so an output always inherits the extent, cell size and CRS of its
// reference input.
type SpatialRef struct {
	// GeoTransform is the GDAL-convention affine transform:
	// [origin X, cell width, row rotation, origin Y, col rotation, cell height].
	// Cell height is negative for north-up rasters.
	GeoTransform [6]float64

	// WKT is the coordinate reference system in well-known text.
	// Empty when the source carried no CRS (e.g. an .asc with no .prj).
	WKT string
}

// CellSize returns the absolute cell width and height in map units.
func (sr *SpatialRef) CellSize() (w, h float64) {
	w = sr.GeoTransform[1]
	h = sr.GeoTransform[5]
	if h < 0 {
		h = -h
	}
	return w, h
}

// HasCRS reports whether a coordinate reference system is present.
func (sr *SpatialRef) HasCRS() bool { return sr.WKT != "" }
