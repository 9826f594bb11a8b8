package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/wordhaze/wordhaze/pkg/cloud/glyph"
	"github.com/wordhaze/wordhaze/pkg/cloud/layout"
	"github.com/wordhaze/wordhaze/pkg/errors"
)

type document struct {
	Placements []placement `json:"placements"`
	Dropped    int         `json:"dropped"`
	Exhausted  bool        `json:"exhausted"`
}

type placement struct {
	Text        string  `json:"text"`
	Weight      float64 `json:"weight"`
	FontSize    int     `json:"font_size"`
	Row         int     `json:"row"`
	Col         int     `json:"col"`
	Orientation string  `json:"orientation"`
}

// WriteJSON encodes a layout result as JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(res layout.Result, w io.Writer) error {
	out := document{
		Placements: make([]placement, len(res.Placements)),
		Dropped:    res.Dropped,
		Exhausted:  res.Exhausted,
	}

	for i, p := range res.Placements {
		out.Placements[i] = placement{
			Text:        p.Word.Text,
			Weight:      p.Word.Weight,
			FontSize:    p.FontSize,
			Row:         p.Row,
			Col:         p.Col,
			Orientation: p.Orientation.String(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return nil
}

// ExportJSON writes a layout result to the file at path.
func ExportJSON(res layout.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %q", path)
	}
	defer f.Close()

	return WriteJSON(res, f)
}

// orientationFromString is the inverse of glyph.Orientation.String.
func orientationFromString(s string) (glyph.Orientation, error) {
	switch s {
	case "horizontal":
		return glyph.Horizontal, nil
	case "rotated-90":
		return glyph.Rotated90, nil
	}
	return glyph.Horizontal, errors.New(errors.ErrCodeInvalidInput, "unknown orientation %q", s)
}
