package grid

// Select sets the selection to row, col if it is within bounds.
func (g Grid) Select(row, col int) Grid {
	if !g.inBounds(row, col) {
		return g
	}
	g.position = position{row: row, col: col}
	g.selected = true
	return g
}

// Move shifts the selection by the given deltas, clamping each axis
// independently to the grid bounds. With no selection it selects the
// origin. Header rows and columns are not skipped over.
func (g Grid) Move(dRow, dCol int) Grid {
	if len(g.cells) == 0 {
		return g
	}
	if !g.selected {
		return g.Select(0, 0)
	}

	g.position.row = clamp(g.position.row+dRow, 0, g.NumRows()-1)
	g.position.col = clamp(g.position.col+dCol, 0, g.NumCols()-1)
	return g
}

// clampSelection pulls the selection back into bounds after a structural
// edit shrinks the grid.
func (g Grid) clampSelection() Grid {
	if !g.selected {
		return g
	}
	if len(g.cells) == 0 {
		g.selected = false
		return g
	}
	g.position.row = clamp(g.position.row, 0, g.NumRows()-1)
	g.position.col = clamp(g.position.col, 0, g.NumCols()-1)
	return g
}

func clamp(val, low, high int) int {
	if val < low {
		return low
	}
	if val > high {
		return high
	}
	return val
}
