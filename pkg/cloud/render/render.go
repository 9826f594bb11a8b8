// Package render draws a computed layout into a raster image.
//
// Each placement is drawn at its recorded position, font size, and
// orientation; rotated words are painted through a quarter-turn
// transform about the box origin. Colors are sampled in HSL space with a
// random hue and fixed saturation/lightness, from a seeded generator so
// renders are reproducible.
package render

import (
	"image"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/wordhaze/wordhaze/pkg/cloud/glyph"
	"github.com/wordhaze/wordhaze/pkg/cloud/layout"
)

// Color sampling constants: hue is random per word, saturation and
// lightness are fixed for a coherent palette.
const (
	colorSaturation = 0.8
	colorLightness  = 0.5
)

// Options controls how a layout is rasterized.
type Options struct {
	// Width and Height are the canvas dimensions in pixels. They must
	// match the dimensions the layout was computed for.
	Width  int
	Height int

	// Seed drives the per-word color choice.
	Seed int64
}

// Draw rasterizes the layout using the given font and returns the image.
// The canvas background is black, as in the classic word-cloud look.
func Draw(res layout.Result, f *truetype.Font, opts Options) image.Image {
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	rng := rand.New(rand.NewSource(opts.Seed))

	for _, p := range res.Placements {
		face := truetype.NewFace(f, &truetype.Options{
			Size: float64(p.FontSize),
			DPI:  72,
		})
		metrics := face.Metrics()
		ascent := float64(metrics.Ascent.Ceil())
		descent := float64(metrics.Descent.Ceil())

		dc.SetFontFace(face)
		dc.SetColor(colorful.Hsl(rng.Float64()*360, colorSaturation, colorLightness))

		x := float64(p.Col)
		y := float64(p.Row)
		if p.Orientation == glyph.Rotated90 {
			// Rotate about the box origin; the pre-rotation baseline at
			// y-descent maps the glyph band onto columns [x, x+textHeight].
			dc.Push()
			dc.RotateAbout(gg.Radians(90), x, y)
			dc.DrawString(p.Word.Text, x, y-descent)
			dc.Pop()
		} else {
			dc.DrawString(p.Word.Text, x, y+ascent)
		}
		face.Close()
	}

	return dc.Image()
}
