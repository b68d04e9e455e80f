package niche

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ecomapper/niche-tools-mcp/internal/raster"
)

// WarrensI computes Warren's I niche-overlap statistic between two
// suitability grids of identical shape:
//
//	I = 1 - 0.5 * sum(|p1 - p2|)
//
// summed over every cell that is valid in both grids. I ranges from 1
// (identical distributions) down to 0 (disjoint distributions).
//
// Values are used exactly as given. In the literature the inputs are
// probability surfaces that each sum to 1 over their valid region; this
// function does not normalize for the caller, because doing so silently
// would change results in ways that are hard to detect. Callers holding
// raw suitability values should pass their grids through Normalize first.
//
// Returns a ShapeMismatchError when the grids do not align, and
// ErrInsufficientData when no cell is valid in both inputs.
//
// Reference: Warren et al. (2008), Environmental niche equivalency versus
// conservatism: quantitative approaches to niche evolution.
func WarrensI(a, b *raster.Grid) (float64, error) {
	if err := checkShapes(a, b); err != nil {
		return 0, err
	}

	av, bv := pairedValid(a, b)
	if len(av) == 0 {
		return 0, ErrInsufficientData
	}

	return 1 - 0.5*floats.Distance(av, bv, 1), nil
}

// Normalize rescales a grid so its valid cells sum to 1, turning a raw
// suitability surface into the probability distribution Warren's I
// expects. Missing cells stay missing.
//
// A grid whose valid cells sum to zero or to a negative value cannot be
// normalized and is rejected with an InvalidParameterError.
func Normalize(g *raster.Grid) (*raster.Grid, error) {
	sum := 0.0
	for _, v := range g.Cells() {
		if !math.IsNaN(v) {
			sum += v
		}
	}
	if sum <= 0 {
		return nil, &InvalidParameterError{Param: "grid", Reason: "valid cells must sum to a positive value to normalize"}
	}

	cells := make([]float64, len(g.Cells()))
	copy(cells, g.Cells())
	floats.Scale(1/sum, cells)
	out, err := raster.NewGridFrom(g.Rows(), g.Cols(), cells)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// pairedValid extracts the values of cells valid in both grids, in step,
// as two dense slices.
func pairedValid(a, b *raster.Grid) (av, bv []float64) {
	ac, bc := a.Cells(), b.Cells()
	for i := range ac {
		if math.IsNaN(ac[i]) || math.IsNaN(bc[i]) {
			continue
		}
		av = append(av, ac[i])
		bv = append(bv, bc[i])
	}
	return av, bv
}
