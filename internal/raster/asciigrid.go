package raster

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// asciiNoData is the sentinel written for missing cells in ASCII grid
// output. -9999 is the conventional ESRI default and what most readers
// assume when the header is absent.
const asciiNoData = -9999

// readASCIIGrid decodes an ESRI ASCII grid (.asc) file.
//
// The header is the standard six-keyword block (ncols, nrows,
// xllcorner/xllcenter, yllcorner/yllcenter, cellsize, NODATA_value), case
// insensitive, with NODATA_value optional. Cells equal to the nodata
// sentinel become NaN. The CRS, if any, is read from a .prj sidecar next
// to the file.
func readASCIIGrid(path string) (*Grid, *SpatialRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	var (
		ncols, nrows       = -1, -1
		xll, yll, cellsize float64
		centered           bool
		nodata             = float64(asciiNoData)
		haveXY, haveCell   bool
	)

	// Header keywords arrive as keyword/value token pairs. The first
	// non-keyword token is the first cell value.
	var firstCell string
	for {
		tok, ok := next()
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s: truncated header", ErrUnreadable, path)
		}
		key := strings.ToLower(tok)
		if !isASCIIHeaderKey(key) {
			firstCell = tok
			break
		}
		val, ok := next()
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s: header keyword %q has no value", ErrUnreadable, path, tok)
		}
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: bad %s value %q", ErrUnreadable, path, key, val)
		}
		switch key {
		case "ncols":
			ncols = int(n)
		case "nrows":
			nrows = int(n)
		case "xllcorner":
			xll = n
			haveXY = true
		case "xllcenter":
			xll = n
			centered = true
			haveXY = true
		case "yllcorner":
			yll = n
		case "yllcenter":
			yll = n
			centered = true
		case "cellsize":
			cellsize = n
			haveCell = true
		case "nodata_value":
			nodata = n
		}
	}

	if ncols <= 0 || nrows <= 0 || !haveXY || !haveCell || cellsize <= 0 {
		return nil, nil, fmt.Errorf("%w: %s: incomplete ASCII grid header", ErrUnreadable, path)
	}
	if centered {
		xll -= cellsize / 2
		yll -= cellsize / 2
	}

	cells := make([]float64, nrows*ncols)
	tok := firstCell
	for i := range cells {
		if i > 0 {
			var ok bool
			tok, ok = next()
			if !ok {
				return nil, nil, fmt.Errorf("%w: %s: expected %d cells, got %d", ErrUnreadable, path, len(cells), i)
			}
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: bad cell value %q at index %d", ErrUnreadable, path, tok, i)
		}
		if v == nodata {
			v = math.NaN()
		}
		cells[i] = v
	}

	g, err := NewGridFrom(nrows, ncols, cells)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	sr := &SpatialRef{
		GeoTransform: [6]float64{xll, cellsize, 0, yll + float64(nrows)*cellsize, 0, -cellsize},
		WKT:          readPrjSidecar(path),
	}
	return g, sr, nil
}

func isASCIIHeaderKey(key string) bool {
	switch key {
	case "ncols", "nrows", "xllcorner", "xllcenter", "yllcorner", "yllcenter", "cellsize", "nodata_value":
		return true
	}
	return false
}

// writeASCIIGrid encodes a grid as an ESRI ASCII grid file, with NaN
// cells written as the -9999 nodata sentinel. The spatial reference must
// have square cells; the CRS, if present, goes to a .prj sidecar.
func writeASCIIGrid(path string, g *Grid, sr *SpatialRef) error {
	w, h := sr.CellSize()
	if math.Abs(w-h) > 1e-9*math.Max(w, h) {
		return fmt.Errorf("%w: %s: ASCII grid requires square cells, got %gx%g", ErrWriteFailed, path, w, h)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	xll := sr.GeoTransform[0]
	yll := sr.GeoTransform[3] + float64(g.Rows())*sr.GeoTransform[5]
	fmt.Fprintf(bw, "ncols %d\n", g.Cols())
	fmt.Fprintf(bw, "nrows %d\n", g.Rows())
	fmt.Fprintf(bw, "xllcorner %g\n", xll)
	fmt.Fprintf(bw, "yllcorner %g\n", yll)
	fmt.Fprintf(bw, "cellsize %g\n", w)
	fmt.Fprintf(bw, "NODATA_value %d\n", asciiNoData)

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			v := g.At(row, col)
			if math.IsNaN(v) {
				fmt.Fprintf(bw, "%d", asciiNoData)
			} else {
				fmt.Fprintf(bw, "%g", v)
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	if sr.HasCRS() {
		if err := os.WriteFile(prjPath(path), []byte(sr.WKT), 0o644); err != nil {
			return fmt.Errorf("%w: %s: writing .prj sidecar: %v", ErrWriteFailed, path, err)
		}
	}
	return nil
}

// prjPath returns the .prj sidecar path for an ASCII grid file.
func prjPath(ascPath string) string {
	if i := strings.LastIndex(ascPath, "."); i > strings.LastIndexAny(ascPath, "/\\") {
		return ascPath[:i] + ".prj"
	}
	return ascPath + ".prj"
}

// readPrjSidecar returns the WKT from the .prj next to an ASCII grid, or
// "" when there is none.
func readPrjSidecar(ascPath string) string {
	b, err := os.ReadFile(prjPath(ascPath))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
