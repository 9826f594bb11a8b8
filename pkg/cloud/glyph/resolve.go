package glyph

import (
	"os"

	"github.com/flopp/go-findfont"

	"github.com/wordhaze/wordhaze/pkg/errors"
)

// defaultFontNames are tried in order when the caller gives no font at
// all. These cover the common Linux and macOS system font sets.
var defaultFontNames = []string{
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"Arial.ttf",
	"Helvetica.ttc",
}

// Resolve turns a font specification into a path on disk.
//
// A spec that names an existing file is used directly. Anything else is
// treated as a font file name and looked up in the system font
// directories. An empty spec falls back to a list of well-known fonts.
func Resolve(spec string) (string, error) {
	if spec == "" {
		for _, name := range defaultFontNames {
			if path, err := findfont.Find(name); err == nil {
				return path, nil
			}
		}
		return "", errors.New(errors.ErrCodeFontNotFound, "no default font found; pass one with --font")
	}

	if info, err := os.Stat(spec); err == nil && !info.IsDir() {
		return spec, nil
	}

	path, err := findfont.Find(spec)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFontNotFound, err, "font %q not found", spec)
	}
	return path, nil
}
