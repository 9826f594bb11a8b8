package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/wordhaze/wordhaze/pkg/cloud/layout"
	"github.com/wordhaze/wordhaze/pkg/errors"
)

// ReadJSON decodes a layout result from r.
func ReadJSON(r io.Reader) (layout.Result, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return layout.Result{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}

	res := layout.Result{
		Placements: make([]layout.Placement, len(doc.Placements)),
		Dropped:    doc.Dropped,
		Exhausted:  doc.Exhausted,
	}

	for i, p := range doc.Placements {
		o, err := orientationFromString(p.Orientation)
		if err != nil {
			return layout.Result{}, err
		}
		res.Placements[i] = layout.Placement{
			Word:        layout.Word{Text: p.Text, Weight: p.Weight, Index: i},
			FontSize:    p.FontSize,
			Row:         p.Row,
			Col:         p.Col,
			Orientation: o,
		}
	}

	return res, nil
}

// ImportJSON reads a layout result from the file at path.
func ImportJSON(path string) (layout.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return layout.Result{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %q", path)
	}
	defer f.Close()

	return ReadJSON(f)
}
