package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ecomapper/niche-tools-mcp/internal/raster"
)

// Result contains a rendered grid preview encoded as base64 PNG.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// rampStops is a viridis-like perceptual ramp from low to high
// suitability. Blending happens in Luv space so the midpoints stay
// perceptually even.
var rampStops = mustStops("#440154", "#3B528B", "#21918C", "#5EC962", "#FDE725")

// Class colors for agreement previews: lower=red, same=grey, higher=blue.
var (
	lowerColor  = color.NRGBA{R: 202, G: 0, B: 32, A: 255}
	sameColor   = color.NRGBA{R: 190, G: 190, B: 190, A: 255}
	higherColor = color.NRGBA{R: 5, G: 113, B: 176, A: 255}
)

// Suitability renders a continuous grid with the color ramp stretched
// between the grid's own min and max valid values. Missing cells are
// transparent. maxDim bounds the longer output edge; 0 means no scaling.
func Suitability(g *raster.Grid, maxDim int) (*Result, error) {
	lo, hi, ok := validRange(g)
	if !ok {
		return nil, fmt.Errorf("grid has no valid cells to render")
	}
	span := hi - lo
	if span == 0 {
		span = 1 // flat grid maps everything to the low stop
	}

	img := image.NewNRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			v := g.At(row, col)
			if math.IsNaN(v) {
				continue // zero value is fully transparent
			}
			img.SetNRGBA(col, row, rampColor((v-lo)/span))
		}
	}
	return encode(img, maxDim)
}

// Agreement renders a {-1,0,1} agreement map with one fixed color per
// class and transparent missing cells.
func Agreement(g *raster.Grid, maxDim int) (*Result, error) {
	img := image.NewNRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			v := g.At(row, col)
			switch {
			case math.IsNaN(v):
			case v < 0:
				img.SetNRGBA(col, row, lowerColor)
			case v > 0:
				img.SetNRGBA(col, row, higherColor)
			default:
				img.SetNRGBA(col, row, sameColor)
			}
		}
	}
	return encode(img, maxDim)
}

// rampColor interpolates the ramp at t in [0,1].
func rampColor(t float64) color.NRGBA {
	if t <= 0 {
		return toNRGBA(rampStops[0])
	}
	if t >= 1 {
		return toNRGBA(rampStops[len(rampStops)-1])
	}
	segs := float64(len(rampStops) - 1)
	i := int(t * segs)
	frac := t*segs - float64(i)
	c := rampStops[i].BlendLuv(rampStops[i+1], frac).Clamped()
	return toNRGBA(c)
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func mustStops(hexes ...string) []colorful.Color {
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("bad ramp stop %q: %v", h, err))
		}
		stops[i] = c
	}
	return stops
}

// encode downsizes the preview if needed and packages it as base64 PNG.
// NearestNeighbor keeps class boundaries crisp when shrinking agreement
// maps.
func encode(img *image.NRGBA, maxDim int) (*Result, error) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			img = imaging.Resize(img, maxDim, 0, imaging.NearestNeighbor)
		} else {
			img = imaging.Resize(img, 0, maxDim, imaging.NearestNeighbor)
		}
		w = img.Bounds().Dx()
		h = img.Bounds().Dy()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}
	return &Result{
		Width:       w,
		Height:      h,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func validRange(g *raster.Grid) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.Cells() {
		if math.IsNaN(v) {
			continue
		}
		ok = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}
