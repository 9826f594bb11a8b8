package layout

import (
	"math/rand"

	"github.com/wordhaze/wordhaze/pkg/cloud/glyph"
	"github.com/wordhaze/wordhaze/pkg/cloud/grid"
)

// Default engine parameters, matching the classic word-cloud recipe.
const (
	// DefaultMargin is the padding in pixels added around each word's box.
	DefaultMargin = 5

	// DefaultPreferHorizontal is the probability a word is drawn
	// horizontally rather than rotated a quarter turn.
	DefaultPreferHorizontal = 0.9

	// DefaultMaxFontSize is the starting font-size ceiling. It only needs
	// to be "large enough"; the shrink loop brings it down to whatever
	// actually fits.
	DefaultMaxFontSize = 1000

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = 42
)

// Placement is one word fixed on the canvas.
type Placement struct {
	Word        Word
	FontSize    int
	Row, Col    int
	Orientation glyph.Orientation
}

// Result is the outcome of a layout run. Placements are in attempt order
// (descending weight). Dropped counts the words discarded when the
// canvas ran out of room; Exhausted marks that the run ended early.
type Result struct {
	Placements []Placement
	Dropped    int
	Exhausted  bool
}

// ProgressFunc is invoked after each successful placement.
type ProgressFunc func(placed, total int, word string, fontSize int)

// Engine packs words onto a fixed-size canvas. It owns its occupancy
// grid for the duration of a run; placement is strictly sequential since
// every query depends on the grid state left by earlier words.
type Engine struct {
	width            int
	height           int
	sizer            glyph.Sizer
	policy           SizePolicy
	rng              *rand.Rand
	margin           int
	preferHorizontal float64
	maxFontSize      int
	onPlace          ProgressFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithMargin sets the pixel padding added around each word's box.
func WithMargin(px int) Option {
	return func(e *Engine) { e.margin = px }
}

// WithPreferHorizontal sets the probability of horizontal orientation.
func WithPreferHorizontal(p float64) Option {
	return func(e *Engine) { e.preferHorizontal = p }
}

// WithMaxFontSize sets the starting font-size ceiling.
func WithMaxFontSize(size int) Option {
	return func(e *Engine) { e.maxFontSize = size }
}

// WithSizing selects the sizing policy. The default is WeightedSizing;
// pass RankSizing to size words purely by processing order.
func WithSizing(p SizePolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithSeed seeds the engine's random generator. Identical inputs and an
// identical seed reproduce the exact same layout.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithProgress registers a callback invoked after every placement.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) { e.onPlace = fn }
}

// NewEngine creates an engine for a width x height pixel canvas.
func NewEngine(sizer glyph.Sizer, width, height int, opts ...Option) *Engine {
	e := &Engine{
		width:            width,
		height:           height,
		sizer:            sizer,
		policy:           WeightedSizing{},
		rng:              rand.New(rand.NewSource(DefaultSeed)),
		margin:           DefaultMargin,
		preferHorizontal: DefaultPreferHorizontal,
		maxFontSize:      DefaultMaxFontSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run places words, which must already be normalized and sorted (see
// Normalize). It returns a partial result with Exhausted set once a word
// fails to fit even at the minimum size; every remaining word is dropped
// rather than skipped, so the output is always a weight-descending
// prefix of the input.
func (e *Engine) Run(words []Word) (Result, error) {
	var res Result
	g := grid.New(e.height, e.width)
	ceiling := e.maxFontSize

	for i, w := range words {
		size := e.policy.Size(w.Weight, ceiling)

		// Orientation is rolled once per word and held fixed through the
		// shrink loop, keeping runs reproducible for a given seed.
		orientation := glyph.Horizontal
		if e.rng.Float64() >= e.preferHorizontal {
			orientation = glyph.Rotated90
		}

		var box glyph.Box
		var row, col int
		placed := false
		for size > 0 {
			var err error
			box, err = e.sizer.Measure(w.Text, size, orientation)
			if err != nil {
				return Result{}, err
			}
			r, c, ok := g.Search(box.Height+e.margin, box.Width+e.margin)
			if ok {
				row, col = r, c
				placed = true
				break
			}
			size--
		}

		if !placed {
			res.Dropped = len(words) - i
			res.Exhausted = true
			return res, nil
		}

		g.Mark(row, col, box.Height+e.margin, box.Width+e.margin)
		res.Placements = append(res.Placements, Placement{
			Word:        w,
			FontSize:    size,
			Row:         row + e.margin/2,
			Col:         col + e.margin/2,
			Orientation: orientation,
		})
		ceiling = size

		if e.onPlace != nil {
			e.onPlace(len(res.Placements), len(words), w.Text, size)
		}
	}
	return res, nil
}
