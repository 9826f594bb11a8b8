// Package io provides JSON import and export for computed layouts.
//
// # Overview
//
// This package serializes the result of a layout run to and from a simple
// JSON format. The format is designed for:
//
//   - Inspecting where each word landed without decoding an image
//   - Feeding computed placements to external renderers
//   - Round-trip preservation: export a layout and re-import it identically
//
// # JSON Format
//
//	{
//	  "placements": [
//	    {"text": "cloud", "weight": 1.0, "font_size": 96, "row": 12, "col": 40, "orientation": "horizontal"},
//	    {"text": "rain", "weight": 0.5, "font_size": 58, "row": 110, "col": 8, "orientation": "rotated-90"}
//	  ],
//	  "dropped": 0,
//	  "exhausted": false
//	}
//
// Placements appear in placement order, which is descending weight.
// The weight field holds the normalized weight in [0, 1].
//
// # Import
//
// Use [ImportJSON] to read a layout from a file path, or [ReadJSON] to
// read from any io.Reader. Both validate the orientation names and
// return INVALID_INPUT errors for malformed documents.
//
// # Export
//
// Use [ExportJSON] to write a layout to a file, or [WriteJSON] to write
// to any io.Writer.
package io
