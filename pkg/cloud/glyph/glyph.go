// Package glyph measures the pixel footprint of words.
//
// The layout engine only needs one thing from the font stack: the size of
// the axis-aligned bounding box a word occupies at a given font size and
// orientation. The Sizer interface captures that, and FaceSizer implements
// it on top of a parsed TrueType font.
package glyph

// Orientation is the direction a word is drawn in.
type Orientation int

const (
	// Horizontal draws the word left to right.
	Horizontal Orientation = iota
	// Rotated90 draws the word rotated a quarter turn, running downward.
	Rotated90
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	if o == Rotated90 {
		return "rotated-90"
	}
	return "horizontal"
}

// Box is a word's bounding box in pixels.
type Box struct {
	Height int
	Width  int
}

// Rotated returns the box with its axes swapped.
func (b Box) Rotated() Box {
	return Box{Height: b.Width, Width: b.Height}
}

// Sizer reports the bounding box of a word at a font size and orientation.
type Sizer interface {
	Measure(word string, size int, o Orientation) (Box, error)
}
