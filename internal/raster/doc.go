// Package raster provides the grid data model and file I/O for the niche
// analysis tools.
//
// A raster is represented as a Grid: a dense, row-major array of float64
// cell values plus a Shape. Missing cells (the format's "nodata" pixels)
// are encoded as NaN, so downstream numeric code can test validity with a
// single math.IsNaN call and no statistic ever sees a nodata sentinel as a
// real number.
//
// # Coordinate System
//
// Grid indices are 0-based (row, col) with row 0 at the top of the raster,
// matching the order cells appear in both ESRI ASCII grids and GDAL band
// reads. The mapping from cells to geographic space is carried separately
// in a SpatialRef, which this package treats as an opaque bundle: it is
// read from a source raster and forwarded unchanged to outputs.
//
// # Formats
//
// Two backends sit behind Read and Write:
//
//   - ESRI ASCII grid (.asc, .agr): a pure-Go text codec, with the
//     coordinate system carried in an optional .prj sidecar file.
//   - Everything else (GeoTIFF et al.): GDAL, via github.com/airbusgeo/godal.
//
// The choice is made from the file extension; callers never name a format
// explicitly.
//
// # Immutability
//
// Grids are not mutated after creation. Operations that transform a grid
// allocate a new one, so a Grid held in the Cache can be shared freely
// across tool calls.
package raster
