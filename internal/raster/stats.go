package raster

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Info summarizes a raster for reporting: its shape, spatial metadata
// presence, and basic statistics over the valid cells.
type Info struct {
	Shape       Shape   `json:"shape"`
	CellWidth   float64 `json:"cell_width"`
	CellHeight  float64 `json:"cell_height"`
	HasCRS      bool    `json:"has_crs"`
	ValidCells  int     `json:"valid_cells"`
	NoDataCells int     `json:"nodata_cells"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Mean        float64 `json:"mean"`
	Sum         float64 `json:"sum"`
}

// Describe computes an Info for a loaded raster. Statistics cover valid
// cells only; an all-missing grid reports zero statistics.
func Describe(g *Grid, sr *SpatialRef) Info {
	valid := make([]float64, 0, len(g.Cells()))
	for _, v := range g.Cells() {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}

	info := Info{
		Shape:       g.Shape(),
		HasCRS:      sr.HasCRS(),
		ValidCells:  len(valid),
		NoDataCells: len(g.Cells()) - len(valid),
	}
	info.CellWidth, info.CellHeight = sr.CellSize()

	if len(valid) > 0 {
		info.Min = floats.Min(valid)
		info.Max = floats.Max(valid)
		info.Sum = floats.Sum(valid)
		info.Mean = info.Sum / float64(len(valid))
	}
	return info
}
