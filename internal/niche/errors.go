package niche

import (
	"errors"
	"fmt"

	"github.com/ecomapper/niche-tools-mcp/internal/raster"
)

// ErrInsufficientData means two grids share no cell that is valid in
// both, so a paired statistic has nothing to compute over.
var ErrInsufficientData = errors.New("no overlapping valid cells")

// ShapeMismatchError reports two grids that cannot take part in the same
// computation because their dimensions differ.
type ShapeMismatchError struct {
	A, B raster.Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("grids must be the same shape: got %s and %s", e.A, e.B)
}

// InvalidParameterError reports a parameter value rejected before any
// per-cell computation began.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// checkShapes returns a ShapeMismatchError unless a and b align.
func checkShapes(a, b *raster.Grid) error {
	if a.Shape() != b.Shape() {
		return &ShapeMismatchError{A: a.Shape(), B: b.Shape()}
	}
	return nil
}
