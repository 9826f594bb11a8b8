package grid

// Search scans the grid for the first entirely free boxH x boxW
// rectangle and returns its top-left corner. Candidates are visited in
// row-major order starting at row 0, which gives word clouds their
// characteristic top-biased fill. The box size is taken as-is; callers
// shrink and retry on failure.
func (g *Grid) Search(boxH, boxW int) (row, col int, ok bool) {
	if boxH <= 0 || boxW <= 0 {
		return 0, 0, false
	}
	maxRow := g.height - boxH
	maxCol := g.width - boxW
	for r := 0; r <= maxRow; r++ {
		for c := 0; c <= maxCol; c++ {
			if g.RegionSum(r, c, boxH, boxW) == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
