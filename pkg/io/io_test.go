package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/wordhaze/wordhaze/pkg/cloud/glyph"
	"github.com/wordhaze/wordhaze/pkg/cloud/layout"
	"github.com/wordhaze/wordhaze/pkg/errors"
)

func sampleResult() layout.Result {
	return layout.Result{
		Placements: []layout.Placement{
			{
				Word:        layout.Word{Text: "cloud", Weight: 1.0, Index: 0},
				FontSize:    96,
				Row:         12,
				Col:         40,
				Orientation: glyph.Horizontal,
			},
			{
				Word:        layout.Word{Text: "rain", Weight: 0.5, Index: 1},
				FontSize:    58,
				Row:         110,
				Col:         8,
				Orientation: glyph.Rotated90,
			},
		},
		Dropped:   1,
		Exhausted: true,
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	want := sampleResult()

	var buf bytes.Buffer
	if err := WriteJSON(want, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestWriteJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleResult(), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`"text": "cloud"`,
		`"orientation": "horizontal"`,
		`"orientation": "rotated-90"`,
		`"dropped": 1`,
		`"exhausted": true`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestExportImportFile(t *testing.T) {
	want := sampleResult()
	path := filepath.Join(t.TempDir(), "layout.json")

	if err := ExportJSON(want, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("file round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "malformed json",
			input: `{"placements": `,
		},
		{
			name:  "unknown field",
			input: `{"placements": [], "extra": 1}`,
		},
		{
			name:  "bad orientation",
			input: `{"placements": [{"text": "x", "orientation": "diagonal"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestEmptyResultRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(layout.Result{}, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(got.Placements) != 0 || got.Dropped != 0 || got.Exhausted {
		t.Errorf("empty round trip produced %+v", got)
	}
}
