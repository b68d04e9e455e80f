package raster

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/airbusgeo/godal"
)

// gdalNoData is the sentinel used when writing GDAL rasters. Matches the
// ASCII codec so round-tripping between formats keeps the same convention.
const gdalNoData = -9999

var registerGDAL sync.Once

// readGDAL decodes band 1 of any GDAL-supported raster (GeoTIFF in
// practice) into a Grid, mapping the band's declared nodata value to NaN.
func readGDAL(path string) (*Grid, *SpatialRef, error) {
	registerGDAL.Do(godal.RegisterAll)

	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	ds, err := godal.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer ds.Close()

	st := ds.Structure()
	if st.NBands < 1 {
		return nil, nil, fmt.Errorf("%w: %s: raster has no bands", ErrUnreadable, path)
	}
	band := ds.Bands()[0]

	cells := make([]float64, st.SizeX*st.SizeY)
	if err := band.Read(0, 0, cells, st.SizeX, st.SizeY); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: reading band 1: %v", ErrUnreadable, path, err)
	}

	// Source nodata never reaches the numeric core as a real value.
	if nodata, ok := band.NoData(); ok {
		for i, v := range cells {
			if v == nodata {
				cells[i] = math.NaN()
			}
		}
	}

	g, err := NewGridFrom(st.SizeY, st.SizeX, cells)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	sr := &SpatialRef{WKT: ds.Projection()}
	if gt, err := ds.GeoTransform(); err == nil {
		sr.GeoTransform = gt
	} else {
		// No georeferencing; identity transform keeps cell size 1.
		sr.GeoTransform = [6]float64{0, 1, 0, 0, 0, -1}
	}
	return g, sr, nil
}

// writeGDAL persists a grid as a single-band Float32 GeoTIFF, copying the
// reference spatial metadata unchanged and encoding NaN cells as the
// nodata sentinel. A non-empty crsOverride replaces the reference CRS in
// the output metadata; cell values are never reprojected.
func writeGDAL(path string, g *Grid, sr *SpatialRef, crsOverride string) error {
	registerGDAL.Do(godal.RegisterAll)

	ds, err := godal.Create(godal.GTiff, path, 1, godal.Float32, g.Cols(), g.Rows())
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	wkt := sr.WKT
	if crsOverride != "" {
		wkt, err = resolveCRS(crsOverride)
		if err != nil {
			ds.Close()
			return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
		}
	}

	if err := ds.SetGeoTransform(sr.GeoTransform); err != nil {
		ds.Close()
		return fmt.Errorf("%w: %s: setting geotransform: %v", ErrWriteFailed, path, err)
	}
	if wkt != "" {
		if err := ds.SetProjection(wkt); err != nil {
			ds.Close()
			return fmt.Errorf("%w: %s: setting projection: %v", ErrWriteFailed, path, err)
		}
	}

	band := ds.Bands()[0]
	if err := band.SetNoData(gdalNoData); err != nil {
		ds.Close()
		return fmt.Errorf("%w: %s: setting nodata: %v", ErrWriteFailed, path, err)
	}

	cells := make([]float64, g.Rows()*g.Cols())
	copy(cells, g.Cells())
	for i, v := range cells {
		if math.IsNaN(v) {
			cells[i] = gdalNoData
		}
	}
	if err := band.Write(0, 0, cells, g.Cols(), g.Rows()); err != nil {
		ds.Close()
		return fmt.Errorf("%w: %s: writing band 1: %v", ErrWriteFailed, path, err)
	}

	if err := ds.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}
	return nil
}

// resolveCRS turns a user-supplied CRS identifier ("EPSG:4326" or raw
// WKT) into WKT for the output metadata.
func resolveCRS(id string) (string, error) {
	var (
		sr  *godal.SpatialRef
		err error
	)
	var code int
	if n, _ := fmt.Sscanf(id, "EPSG:%d", &code); n == 1 {
		sr, err = godal.NewSpatialRefFromEPSG(code)
	} else {
		sr, err = godal.NewSpatialRefFromWKT(id)
	}
	if err != nil {
		return "", fmt.Errorf("invalid CRS %q: %v", id, err)
	}
	defer sr.Close()
	return sr.WKT()
}
