// Package fonts provides the built-in fallback font.
//
// The Go Regular typeface ships inside the binary, so word clouds can be
// rendered on systems with no usable fonts installed and without any
// font configuration.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// FamilyName is the display name of the built-in font.
const FamilyName = "Go Regular"

// Default returns the raw TTF data of the built-in font.
func Default() []byte {
	return goregular.TTF
}

// Cache for the parsed font (computed once on first access).
var (
	parsed     *truetype.Font
	parsedErr  error
	parsedOnce sync.Once
)

// DefaultFont returns the built-in font parsed and ready for measuring
// and drawing. The parse happens once; subsequent calls are cheap.
func DefaultFont() (*truetype.Font, error) {
	parsedOnce.Do(func() {
		parsed, parsedErr = truetype.Parse(goregular.TTF)
	})
	return parsed, parsedErr
}
