package niche

import (
	"math"

	"github.com/ecomapper/niche-tools-mcp/internal/raster"
)

// Agreement class values written to the output grid.
const (
	ClassLower  = -1 // comparison is lower than reference beyond tolerance
	ClassSame   = 0  // within the tolerance band
	ClassHigher = 1  // comparison is higher than reference beyond tolerance
)

// DefaultTolerance is the tolerance band applied when a caller does not
// choose one.
const DefaultTolerance = 0.05

// AgreementMap classifies, cell by cell, how a comparison grid differs
// from a reference grid. For each cell valid in both inputs:
//
//	delta = comparison - reference
//	-1 if delta < -tolerance
//	 0 if |delta| <= tolerance
//	+1 if delta > tolerance
//
// The band is closed on both ends: a delta exactly at the tolerance is
// classified "same", never as a directional difference. Cells missing in
// either input are missing in the output.
//
// tolerance must be >= 0; a negative tolerance would make "same"
// unreachable and is rejected with an InvalidParameterError before any
// cell is examined. Shape mismatches return a ShapeMismatchError.
func AgreementMap(reference, comparison *raster.Grid, tolerance float64) (*raster.Grid, error) {
	if tolerance < 0 || math.IsNaN(tolerance) {
		return nil, &InvalidParameterError{Param: "tolerance", Reason: "must be >= 0"}
	}
	if err := checkShapes(reference, comparison); err != nil {
		return nil, err
	}

	out := raster.NewGrid(reference.Rows(), reference.Cols())
	rc, cc := reference.Cells(), comparison.Cells()
	for i := range rc {
		if math.IsNaN(rc[i]) || math.IsNaN(cc[i]) {
			continue // NewGrid starts all-missing
		}
		delta := cc[i] - rc[i]
		// A cell pair sitting exactly on the band edge must classify as
		// "same", but subtraction can land a hair outside the band
		// (0.55-0.5 > 0.05 in float64). The slack covers representation
		// error without absorbing real differences.
		band := tolerance + 1e-12*(math.Abs(rc[i])+math.Abs(cc[i])+tolerance)
		class := float64(ClassSame)
		switch {
		case delta < -band:
			class = ClassLower
		case delta > band:
			class = ClassHigher
		}
		out.Set(i/reference.Cols(), i%reference.Cols(), class)
	}
	return out, nil
}

// Summary holds the per-class cell counts of an agreement map and their
// share of the valid total.
type Summary struct {
	Lower  int `json:"lower_cells"`
	Same   int `json:"same_cells"`
	Higher int `json:"higher_cells"`
	Valid  int `json:"valid_cells"`

	LowerPercent  float64 `json:"lower_percent"`
	SamePercent   float64 `json:"same_percent"`
	HigherPercent float64 `json:"higher_percent"`
}

// Summarize counts the classes of an agreement map in a single pass.
// Missing cells are excluded from both the counts and the percentages.
func Summarize(agreement *raster.Grid) Summary {
	var s Summary
	for _, v := range agreement.Cells() {
		switch {
		case math.IsNaN(v):
		case v < 0:
			s.Lower++
		case v > 0:
			s.Higher++
		default:
			s.Same++
		}
	}
	s.Valid = s.Lower + s.Same + s.Higher
	if s.Valid > 0 {
		total := float64(s.Valid)
		s.LowerPercent = 100 * float64(s.Lower) / total
		s.SamePercent = 100 * float64(s.Same) / total
		s.HigherPercent = 100 * float64(s.Higher) / total
	}
	return s
}
