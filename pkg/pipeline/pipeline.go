// Package pipeline provides the core word-cloud pipeline.
//
// This package implements the complete extract → layout → render pipeline
// that is shared by the CLI and the HTTP server. Centralizing this logic
// keeps behavior consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Extract: Turn raw text into weighted word counts
//  2. Layout: Pack words onto the canvas, largest first
//  3. Render: Rasterize the layout and encode the image
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.NewOptions()
//	opts.Inputs = []string{"speech.txt"}
//	opts.Output = "speech.png"
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
package pipeline

import (
	"image"
	"io"
	"time"

	"github.com/wordhaze/wordhaze/pkg/cloud/layout"
	"github.com/wordhaze/wordhaze/pkg/cloud/render"
	"github.com/wordhaze/wordhaze/pkg/errors"
	"github.com/wordhaze/wordhaze/pkg/words"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 400

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 200

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = int64(42)
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the word-cloud pipeline.
// This struct supports JSON serialization for server requests.
// Construct it with NewOptions so every field starts at its default.
type Options struct {
	// Extract options
	Text         string   `json:"text,omitempty"`   // direct input text
	Inputs       []string `json:"inputs,omitempty"` // input file paths; "-" reads Stdin
	StopwordPath string   `json:"stopword_path,omitempty"`
	MinCount     int      `json:"min_count,omitempty"`

	// Layout options
	Width            int     `json:"width,omitempty"`
	Height           int     `json:"height,omitempty"`
	Margin           int     `json:"margin"`
	PreferHorizontal float64 `json:"prefer_horizontal"`
	RanksOnly        bool    `json:"ranks_only,omitempty"`
	MaxFontSize      int     `json:"max_font_size,omitempty"`
	Seed             int64   `json:"seed,omitempty"`

	// Render options
	Font   string `json:"font,omitempty"`   // font file path or system font name
	Output string `json:"output,omitempty"` // output path; format inferred from extension

	// Runtime options (not serialized)
	Stdin   io.Reader           `json:"-"` // source for "-" inputs
	OnPlace layout.ProgressFunc `json:"-"` // per-placement progress callback
}

// NewOptions returns Options with every field set to its default.
func NewOptions() Options {
	return Options{
		MinCount:         words.DefaultMinCount,
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Margin:           layout.DefaultMargin,
		PreferHorizontal: layout.DefaultPreferHorizontal,
		MaxFontSize:      layout.DefaultMaxFontSize,
		Seed:             DefaultSeed,
	}
}

// Validate checks option values for consistency.
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas dimensions must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margin must be non-negative, got %d", o.Margin)
	}
	if o.PreferHorizontal < 0 || o.PreferHorizontal > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "prefer-horizontal must be in [0,1], got %g", o.PreferHorizontal)
	}
	if o.MaxFontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max font size must be positive, got %d", o.MaxFontSize)
	}
	if o.MinCount < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "min count must be at least 1, got %d", o.MinCount)
	}
	if o.Output != "" {
		if _, err := render.FormatFromPath(o.Output); err != nil {
			return err
		}
	}
	return nil
}

// SizePolicy returns the sizing policy the options select.
func (o *Options) SizePolicy() layout.SizePolicy {
	if o.RanksOnly {
		return layout.RankSizing{}
	}
	return layout.WeightedSizing{}
}

// =============================================================================
// Result and Stats
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Counts is the extracted word frequency list.
	Counts []words.Count

	// Layout is the computed placement list.
	Layout layout.Result

	// Image is the rendered canvas.
	Image image.Image

	// FontPath is the resolved font file that was used.
	FontPath string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount   int
	Placed      int
	Dropped     int
	ExtractTime time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}
