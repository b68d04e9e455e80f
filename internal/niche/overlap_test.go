package niche

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomapper/niche-tools-mcp/internal/raster"
)

// gridOf builds a grid from rows of values, with NaN marking missing
// cells.
func gridOf(t *testing.T, rows [][]float64) *raster.Grid {
	t.Helper()
	require.NotEmpty(t, rows)
	cells := make([]float64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		require.Len(t, r, len(rows[0]), "ragged test grid")
		cells = append(cells, r...)
	}
	g, err := raster.NewGridFrom(len(rows), len(rows[0]), cells)
	require.NoError(t, err)
	return g
}

var nan = math.NaN()

func TestWarrensI_Identity(t *testing.T) {
	a := gridOf(t, [][]float64{{0.2, 0.8}, {0.4, 0.6}})
	b := gridOf(t, [][]float64{{0.2, 0.8}, {0.4, 0.6}})

	i, err := WarrensI(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, i, 1e-12)
}

func TestWarrensI_DisjointOneHot(t *testing.T) {
	a := gridOf(t, [][]float64{{1.0, 0.0}})
	b := gridOf(t, [][]float64{{0.0, 1.0}})

	i, err := WarrensI(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, i, 1e-12)
}

func TestWarrensI_Symmetric(t *testing.T) {
	a := gridOf(t, [][]float64{{0.1, 0.3}, {0.2, 0.4}})
	b := gridOf(t, [][]float64{{0.4, 0.1}, {0.3, 0.2}})

	iab, err := WarrensI(a, b)
	require.NoError(t, err)
	iba, err := WarrensI(b, a)
	require.NoError(t, err)
	assert.Equal(t, iab, iba)
}

func TestWarrensI_KnownValue(t *testing.T) {
	// |0.5-0.3| + |0.5-0.7| = 0.4, so I = 1 - 0.2 = 0.8
	a := gridOf(t, [][]float64{{0.5, 0.5}})
	b := gridOf(t, [][]float64{{0.3, 0.7}})

	i, err := WarrensI(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, i, 1e-12)
}

func TestWarrensI_ShapeMismatch(t *testing.T) {
	a := gridOf(t, [][]float64{{0.5, 0.5}})
	b := gridOf(t, [][]float64{{0.5}, {0.5}})

	_, err := WarrensI(a, b)
	var sm *ShapeMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, raster.Shape{Rows: 1, Cols: 2}, sm.A)
	assert.Equal(t, raster.Shape{Rows: 2, Cols: 1}, sm.B)
}

func TestWarrensI_MissingCellsExcluded(t *testing.T) {
	// The NaN pair would contribute |1.0-0.0| = 1.0 if it were treated
	// as zero; excluding it leaves the grids identical.
	a := gridOf(t, [][]float64{{0.2, nan}, {0.4, 0.6}})
	b := gridOf(t, [][]float64{{0.2, 0.0}, {0.4, 0.6}})

	i, err := WarrensI(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, i, 1e-12)
}

func TestWarrensI_DisjointSupport(t *testing.T) {
	// No cell valid in both grids.
	a := gridOf(t, [][]float64{{0.5, nan}})
	b := gridOf(t, [][]float64{{nan, 0.5}})

	_, err := WarrensI(a, b)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestWarrensI_AllMissing(t *testing.T) {
	a := raster.NewGrid(2, 2)
	b := raster.NewGrid(2, 2)

	_, err := WarrensI(a, b)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestNormalize(t *testing.T) {
	g := gridOf(t, [][]float64{{1, 3}, {nan, 4}})

	n, err := Normalize(g)
	require.NoError(t, err)

	assert.InDelta(t, 0.125, n.At(0, 0), 1e-12)
	assert.InDelta(t, 0.375, n.At(0, 1), 1e-12)
	assert.True(t, n.Missing(1, 0), "missing cells must stay missing")
	assert.InDelta(t, 0.5, n.At(1, 1), 1e-12)

	// Input untouched.
	assert.Equal(t, 1.0, g.At(0, 0))
}

func TestNormalize_ZeroSum(t *testing.T) {
	g := gridOf(t, [][]float64{{0, 0}})

	_, err := Normalize(g)
	var ip *InvalidParameterError
	assert.ErrorAs(t, err, &ip)
}

func TestNormalize_ThenOverlapIsOne(t *testing.T) {
	// Two proportional surfaces normalize to the same distribution.
	a := gridOf(t, [][]float64{{1, 2}, {3, 4}})
	b := gridOf(t, [][]float64{{10, 20}, {30, 40}})

	na, err := Normalize(a)
	require.NoError(t, err)
	nb, err := Normalize(b)
	require.NoError(t, err)

	i, err := WarrensI(na, nb)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, i, 1e-12)
}
