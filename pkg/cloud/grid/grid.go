// Package grid implements the occupancy structure behind word placement.
//
// A Grid tracks which canvas pixels are already covered by placed words.
// Alongside the boolean mask it maintains a summed-area (integral) table,
// so the total occupancy of any rectangle can be read in O(1) via
// inclusion-exclusion. The table is updated incrementally on every Mark,
// touching only the cells at or below/right of the marked rectangle's
// origin.
//
// The mask and the integral table are private and only mutated through
// Mark, which keeps the table an exact 2D prefix sum of the mask at all
// times.
package grid

// Grid is a boolean occupancy mask over a fixed-size canvas plus its
// integral table. Coordinates are (row, col) with the origin at the
// top-left corner.
type Grid struct {
	height int
	width  int
	mask   []uint8
	sums   []uint32
}

// New creates an all-free grid for a canvas of the given dimensions.
func New(height, width int) *Grid {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return &Grid{
		height: height,
		width:  width,
		mask:   make([]uint8, height*width),
		sums:   make([]uint32, height*width),
	}
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Occupied reports whether the cell at (row, col) is covered.
func (g *Grid) Occupied(row, col int) bool {
	return g.mask[row*g.width+col] != 0
}

// sumAt reads the integral table, treating indices at row -1 or col -1
// as zero so inclusion-exclusion works along the edges.
func (g *Grid) sumAt(row, col int) uint32 {
	if row < 0 || col < 0 {
		return 0
	}
	return g.sums[row*g.width+col]
}

// RegionSum returns the number of occupied cells inside the h x w
// rectangle whose top-left corner is (top, left). A result of zero means
// the region is entirely free. The caller must keep the rectangle inside
// the grid bounds.
func (g *Grid) RegionSum(top, left, h, w int) int {
	bottom := top + h - 1
	right := left + w - 1
	total := g.sumAt(bottom, right) -
		g.sumAt(top-1, right) -
		g.sumAt(bottom, left-1) +
		g.sumAt(top-1, left-1)
	return int(total)
}

// Mark covers the h x w rectangle at (top, left) and brings the integral
// table back in sync. Only cells at or below/right of (top, left) can
// change, so the table is recomputed for that sub-block alone, seeded by
// the still-valid sums in row top-1 and column left-1. The rectangle is
// clipped to the grid bounds.
func (g *Grid) Mark(top, left, h, w int) {
	if top < 0 {
		h += top
		top = 0
	}
	if left < 0 {
		w += left
		left = 0
	}
	bottom := min(top+h, g.height)
	right := min(left+w, g.width)
	if top >= bottom || left >= right {
		return
	}

	for r := top; r < bottom; r++ {
		row := r * g.width
		for c := left; c < right; c++ {
			g.mask[row+c] = 1
		}
	}

	for r := top; r < g.height; r++ {
		row := r * g.width
		for c := left; c < g.width; c++ {
			g.sums[row+c] = uint32(g.mask[row+c]) +
				g.sumAt(r-1, c) + g.sumAt(r, c-1) - g.sumAt(r-1, c-1)
		}
	}
}
