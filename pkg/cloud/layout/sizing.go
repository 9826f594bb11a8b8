package layout

import "math"

// SizePolicy picks the starting font size for a word given its
// normalized weight and the current global ceiling. Implementations must
// never return a value above the ceiling, which is what keeps font sizes
// non-increasing across the placement order.
type SizePolicy interface {
	Size(weight float64, ceiling int) int
}

// WeightedSizing derives the font size from the word's weight on a
// logarithmic curve, capped by the ceiling.
type WeightedSizing struct{}

// Size returns min(ceiling, 100*ln(weight+100)).
func (WeightedSizing) Size(weight float64, ceiling int) int {
	size := int(100 * math.Log(weight+100))
	if size > ceiling {
		return ceiling
	}
	return size
}

// RankSizing ignores weights entirely: every word starts at the current
// ceiling, so sizing depends purely on processing order.
type RankSizing struct{}

// Size returns the ceiling.
func (RankSizing) Size(_ float64, ceiling int) int {
	return ceiling
}
