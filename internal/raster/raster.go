package raster

import (
	"path/filepath"
	"strings"
)

// WriteOptions adjusts how a grid is persisted.
type WriteOptions struct {
	// CRS, when non-empty, replaces the reference spatial reference's
	// coordinate system in the output metadata. Accepts "EPSG:<code>" or
	// WKT. Only the metadata changes; cell values are never reprojected.
	CRS string
}

// Read loads a raster resource into a Grid plus its SpatialRef.
//
// .asc and .agr files go through the pure-Go ESRI ASCII grid codec; any
// other extension is handed to GDAL. In both cases the source's nodata
// convention is translated to NaN before the grid is returned.
func Read(path string) (*Grid, *SpatialRef, error) {
	if isASCIIGridPath(path) {
		return readASCIIGrid(path)
	}
	return readGDAL(path)
}

// Write persists a grid to path using the reference SpatialRef for all
// spatial metadata, encoding NaN cells in the destination format's nodata
// convention. The output format is chosen from the extension the same way
// Read chooses it.
func Write(path string, g *Grid, sr *SpatialRef, opts WriteOptions) error {
	if isASCIIGridPath(path) {
		// The ASCII codec has no CRS machinery beyond the sidecar, so an
		// override is just a different WKT to place there.
		if opts.CRS != "" {
			sidecar := *sr
			wkt, err := resolveCRS(opts.CRS)
			if err != nil {
				return err
			}
			sidecar.WKT = wkt
			return writeASCIIGrid(path, g, &sidecar)
		}
		return writeASCIIGrid(path, g, sr)
	}
	return writeGDAL(path, g, sr, opts.CRS)
}

func isASCIIGridPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".asc", ".agr":
		return true
	}
	return false
}
