package layout

import (
	"testing"

	"github.com/wordhaze/wordhaze/pkg/errors"
)

func TestNormalizeEmpty(t *testing.T) {
	words, err := Normalize(nil)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("len = %d, want 0", len(words))
	}
}

func TestNormalizeScalesToUnitRange(t *testing.T) {
	words, err := Normalize([]WeightedWord{
		{Text: "low", Weight: 2},
		{Text: "high", Weight: 8},
		{Text: "mid", Weight: 4},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if words[0].Text != "high" || words[0].Weight != 1.0 {
		t.Errorf("words[0] = %+v, want high with weight 1", words[0])
	}
	if words[1].Text != "mid" || words[1].Weight != 0.5 {
		t.Errorf("words[1] = %+v, want mid with weight 0.5", words[1])
	}
	if words[2].Text != "low" || words[2].Weight != 0.25 {
		t.Errorf("words[2] = %+v, want low with weight 0.25", words[2])
	}
}

func TestNormalizeDescendingOrder(t *testing.T) {
	words, err := Normalize([]WeightedWord{
		{Text: "a", Weight: 1},
		{Text: "b", Weight: 5},
		{Text: "c", Weight: 3},
		{Text: "d", Weight: 4},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for i := 1; i < len(words); i++ {
		if words[i].Weight > words[i-1].Weight {
			t.Fatalf("weights not descending at %d: %v", i, words)
		}
	}
}

func TestNormalizeStableTieBreak(t *testing.T) {
	// Equal weights keep input order, tracked by Index.
	words, err := Normalize([]WeightedWord{
		{Text: "w1", Weight: 7},
		{Text: "w2", Weight: 7},
		{Text: "w3", Weight: 7},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	for i, want := range []string{"w1", "w2", "w3"} {
		if words[i].Text != want || words[i].Index != i {
			t.Errorf("words[%d] = %+v, want %s at index %d", i, words[i], want, i)
		}
	}
}

func TestNormalizeNegativeWeight(t *testing.T) {
	_, err := Normalize([]WeightedWord{{Text: "bad", Weight: -1}})
	if err == nil {
		t.Fatal("Normalize accepted a negative weight")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestNormalizeAllZeroWeights(t *testing.T) {
	words, err := Normalize([]WeightedWord{
		{Text: "a", Weight: 0},
		{Text: "b", Weight: 0},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for _, w := range words {
		if w.Weight != 0 {
			t.Errorf("weight = %g, want 0", w.Weight)
		}
	}
}
