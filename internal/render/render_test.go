package render

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"math"
	"testing"

	"github.com/ecomapper/niche-tools-mcp/internal/raster"
)

func mustGrid(t *testing.T, rows, cols int, cells []float64) *raster.Grid {
	t.Helper()
	g, err := raster.NewGridFrom(rows, cols, cells)
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}
	return g
}

func decodeResult(t *testing.T, r *Result) ([]byte, int, int) {
	t.Helper()
	if r.MimeType != "image/png" {
		t.Fatalf("MimeType: got %s, want image/png", r.MimeType)
	}
	raw, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	return raw, img.Bounds().Dx(), img.Bounds().Dy()
}

func TestSuitability(t *testing.T) {
	g := mustGrid(t, 2, 2, []float64{0.0, 0.5, math.NaN(), 1.0})

	r, err := Suitability(g, 0)
	if err != nil {
		t.Fatalf("Suitability failed: %v", err)
	}

	_, w, h := decodeResult(t, r)
	if w != 2 || h != 2 {
		t.Errorf("decoded size: got %dx%d, want 2x2", w, h)
	}
	if r.Width != 2 || r.Height != 2 {
		t.Errorf("reported size: got %dx%d, want 2x2", r.Width, r.Height)
	}
}

func TestSuitability_MissingTransparent(t *testing.T) {
	g := mustGrid(t, 1, 2, []float64{math.NaN(), 1.0})

	r, err := Suitability(g, 0)
	if err != nil {
		t.Fatalf("Suitability failed: %v", err)
	}

	raw, _, _ := decodeResult(t, r)
	img, _ := png.Decode(bytes.NewReader(raw))
	_, _, _, a0 := img.At(0, 0).RGBA()
	_, _, _, a1 := img.At(1, 0).RGBA()
	if a0 != 0 {
		t.Errorf("missing cell alpha: got %d, want 0", a0)
	}
	if a1 == 0 {
		t.Error("valid cell must be opaque")
	}
}

func TestSuitability_FlatGrid(t *testing.T) {
	g := mustGrid(t, 1, 2, []float64{0.5, 0.5})

	if _, err := Suitability(g, 0); err != nil {
		t.Fatalf("flat grid should render: %v", err)
	}
}

func TestSuitability_AllMissing(t *testing.T) {
	if _, err := Suitability(raster.NewGrid(2, 2), 0); err == nil {
		t.Fatal("expected error for all-missing grid")
	}
}

func TestSuitability_MaxDimension(t *testing.T) {
	cells := make([]float64, 10*40)
	for i := range cells {
		cells[i] = float64(i)
	}
	g := mustGrid(t, 10, 40, cells)

	r, err := Suitability(g, 20)
	if err != nil {
		t.Fatalf("Suitability failed: %v", err)
	}
	if r.Width != 20 {
		t.Errorf("Width: got %d, want 20", r.Width)
	}
	if r.Height > 20 {
		t.Errorf("Height: got %d, want <= 20", r.Height)
	}
}

func TestAgreement_ClassColors(t *testing.T) {
	g := mustGrid(t, 1, 4, []float64{-1, 0, 1, math.NaN()})

	r, err := Agreement(g, 0)
	if err != nil {
		t.Fatalf("Agreement failed: %v", err)
	}

	raw, _, _ := decodeResult(t, r)
	img, _ := png.Decode(bytes.NewReader(raw))

	red, _, _, _ := img.At(0, 0).RGBA()
	_, _, blue, _ := img.At(2, 0).RGBA()
	_, _, _, aMissing := img.At(3, 0).RGBA()

	if red == 0 {
		t.Error("lower class should render red-dominant")
	}
	if blue == 0 {
		t.Error("higher class should render blue-dominant")
	}
	if aMissing != 0 {
		t.Errorf("missing cell alpha: got %d, want 0", aMissing)
	}
}

func TestRampColor_Endpoints(t *testing.T) {
	lo := rampColor(0)
	hi := rampColor(1)
	if lo == hi {
		t.Error("ramp endpoints must differ")
	}
	if rampColor(-0.5) != lo {
		t.Error("values below 0 clamp to the low stop")
	}
	if rampColor(1.5) != hi {
		t.Error("values above 1 clamp to the high stop")
	}
}
