// Package layout implements the word-cloud packing engine.
//
// Words are normalized and sorted by weight, then placed one at a time,
// heaviest first. Each word runs a shrink-to-fit loop: measure its box at
// a candidate font size, search the occupancy grid for a free region, and
// shrink by one point until it fits or the size floor is reached. A
// global font-size ceiling carries across words so later words never
// render larger than earlier ones.
package layout

import (
	"sort"

	"github.com/wordhaze/wordhaze/pkg/errors"
)

// WeightedWord is a raw (text, weight) pair as supplied by a frequency
// extractor. Any non-negative weight scale is accepted.
type WeightedWord struct {
	Text   string
	Weight float64
}

// Word is a normalized word ready for placement. Weight lies in [0,1]
// and Index is the position in the original input, used as the stable
// tie-break when weights are equal.
type Word struct {
	Text   string
	Weight float64
	Index  int
}

// Normalize scales weights into [0,1] and orders words by descending
// weight, ties broken by original input position. A negative weight is
// rejected as INVALID_INPUT. Empty input yields an empty slice.
func Normalize(words []WeightedWord) ([]Word, error) {
	out := make([]Word, 0, len(words))

	var max float64
	for i, w := range words {
		if w.Weight < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "negative weight %g for %q", w.Weight, w.Text)
		}
		if w.Weight > max {
			max = w.Weight
		}
		out = append(out, Word{Text: w.Text, Weight: w.Weight, Index: i})
	}

	if max > 0 {
		for i := range out {
			out[i].Weight /= max
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})
	return out, nil
}
