package render

import (
	"bytes"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/wordhaze/wordhaze/pkg/errors"
)

// Save writes the image to path. The encoding format is inferred from
// the path's extension (png, jpg, gif, tif, bmp).
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		if err == imaging.ErrUnsupportedFormat {
			return errors.New(errors.ErrCodeUnsupportedFormat,
				"cannot infer image format from %q; use a .png, .jpg, .gif, .tif, or .bmp extension", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write image to %q", path)
	}
	return nil
}

// Encode renders the image into memory in the format named by ext
// (e.g. "png" or ".jpg"). Used by the HTTP surface, which has no output
// path to infer a format from.
func Encode(img image.Image, ext string) ([]byte, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported image format %q", ext)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s image", format)
	}
	return buf.Bytes(), nil
}

// FormatFromPath reports the image format a given output path implies,
// or an UNSUPPORTED_FORMAT error. Useful for validating an output path
// before spending time on layout.
func FormatFromPath(path string) (string, error) {
	ext := filepath.Ext(path)
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return "", errors.New(errors.ErrCodeUnsupportedFormat,
			"cannot infer image format from %q; use a .png, .jpg, .gif, .tif, or .bmp extension", path)
	}
	return strings.ToLower(format.String()), nil
}
