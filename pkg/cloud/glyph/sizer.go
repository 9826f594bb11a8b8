package glyph

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/wordhaze/wordhaze/pkg/errors"
)

// measureDPI is the rendering resolution. At 72 DPI one point equals one
// pixel, so font sizes and box dimensions share a unit.
const measureDPI = 72

// FaceSizer measures words against a parsed TrueType font.
type FaceSizer struct {
	font *truetype.Font
}

// NewFaceSizer loads and parses the TrueType font at path.
// A missing or unreadable file surfaces as FONT_NOT_FOUND carrying the
// requested path; there is no silent fallback font.
func NewFaceSizer(path string) (*FaceSizer, error) {
	f, err := LoadFont(path)
	if err != nil {
		return nil, err
	}
	return &FaceSizer{font: f}, nil
}

// NewFaceSizerFromFont wraps an already-parsed font.
func NewFaceSizerFromFont(f *truetype.Font) *FaceSizer {
	return &FaceSizer{font: f}
}

// Font returns the underlying parsed font, shared with the renderer so
// measurement and drawing agree on metrics.
func (s *FaceSizer) Font() *truetype.Font {
	return s.font
}

// Measure returns the pixel bounding box of word at the given font size
// and orientation. A rotated word swaps the box axes.
func (s *FaceSizer) Measure(word string, size int, o Orientation) (Box, error) {
	if size <= 0 {
		return Box{}, nil
	}

	face := truetype.NewFace(s.font, &truetype.Options{
		Size: float64(size),
		DPI:  measureDPI,
	})
	defer face.Close()

	m := face.Metrics()
	box := Box{
		Height: (m.Ascent + m.Descent).Ceil(),
		Width:  font.MeasureString(face, word).Ceil(),
	}
	if o == Rotated90 {
		box = box.Rotated()
	}
	return box, nil
}

// LoadFont reads and parses a TrueType font file.
func LoadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "font %q not found", path)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "font %q is not a usable TrueType file", path)
	}
	return f, nil
}
