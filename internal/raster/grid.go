package raster

import (
	"fmt"
	"math"
)

// Shape is the (rows, cols) dimensions of a grid.
type Shape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// String formats a shape as "RxC", e.g. "480x640".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Grid is a 2D raster of float64 cell values stored in row-major order.
//
// Missing cells are stored as NaN. Every other value, including zero, is a
// valid measurement. A Grid is never mutated after it is filled; functions
// that derive a new raster return a fresh Grid.
type Grid struct {
	shape Shape
	cells []float64
}

// NewGrid allocates a grid of the given shape with every cell missing.
func NewGrid(rows, cols int) *Grid {
	cells := make([]float64, rows*cols)
	for i := range cells {
		cells[i] = math.NaN()
	}
	return &Grid{shape: Shape{Rows: rows, Cols: cols}, cells: cells}
}

// NewGridFrom builds a grid from row-major cell values. The slice is used
// directly, not copied; the caller must not retain it.
func NewGridFrom(rows, cols int, cells []float64) (*Grid, error) {
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("cell count %d does not match shape %dx%d", len(cells), rows, cols)
	}
	return &Grid{shape: Shape{Rows: rows, Cols: cols}, cells: cells}, nil
}

// Shape returns the grid dimensions.
func (g *Grid) Shape() Shape { return g.shape }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.shape.Rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.shape.Cols }

// At returns the value at (row, col). Missing cells return NaN.
func (g *Grid) At(row, col int) float64 {
	return g.cells[row*g.shape.Cols+col]
}

// Set stores a value at (row, col). Only grid constructors and codecs
// should call Set; computed grids are filled once and then read-only.
func (g *Grid) Set(row, col int, v float64) {
	g.cells[row*g.shape.Cols+col] = v
}

// Missing reports whether the cell at (row, col) has no valid measurement.
func (g *Grid) Missing(row, col int) bool {
	return math.IsNaN(g.cells[row*g.shape.Cols+col])
}

// Cells returns the backing row-major slice. Callers must treat it as
// read-only.
func (g *Grid) Cells() []float64 { return g.cells }

// ValidCount returns the number of non-missing cells.
func (g *Grid) ValidCount() int {
	n := 0
	for _, v := range g.cells {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}
