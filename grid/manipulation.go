package grid

import "slices"

// SetCell replaces the value of a single editable cell. The target row and
// the outer slice are fresh copies so prior snapshots are unharmed. Out of
// bounds or header targets are no-ops.
func (g Grid) SetCell(row, col int, value string) Grid {
	if !g.inBounds(row, col) || g.IsHeader(row, col) {
		return g
	}

	cells := slices.Clone(g.cells)
	cells[row] = slices.Clone(cells[row])
	cells[row][col] = value
	g.cells = cells
	return g
}

// AppendRow adds an empty row at the bottom. An empty grid resets to a
// single one-cell row.
func (g Grid) AppendRow() Grid {
	return g.insertRow(g.NumRows())
}

// InsertRowAfter inserts an empty row below idx.
func (g Grid) InsertRowAfter(idx int) Grid {
	return g.insertRow(idx + 1)
}

// InsertRowBefore inserts an empty row above idx, shifting idx and all
// later rows down by one.
func (g Grid) InsertRowBefore(idx int) Grid {
	return g.insertRow(idx)
}

// CanDeleteRow reports whether DeleteRow(idx) would act: idx must be an
// editable row and not the last one.
func (g Grid) CanDeleteRow(idx int) bool {
	return idx >= g.headerRows() && idx < g.NumRows() && g.NumRows()-g.headerRows() > 1
}

// DeleteRow removes the row at idx. Refused when idx is out of bounds, a
// header row, or the last editable row.
func (g Grid) DeleteRow(idx int) Grid {
	if !g.CanDeleteRow(idx) {
		return g
	}

	cells := slices.Clone(g.cells)
	g.cells = slices.Delete(cells, idx, idx+1)
	return g.clampSelection()
}

// AppendColumn adds an empty column at the right edge.
func (g Grid) AppendColumn() Grid {
	return g.insertColumn(g.NumCols())
}

// InsertColumnAfter inserts an empty column right of idx.
func (g Grid) InsertColumnAfter(idx int) Grid {
	return g.insertColumn(idx + 1)
}

// InsertColumnBefore inserts an empty column left of idx.
func (g Grid) InsertColumnBefore(idx int) Grid {
	return g.insertColumn(idx)
}

// CanDeleteColumn is the column counterpart of CanDeleteRow.
func (g Grid) CanDeleteColumn(idx int) bool {
	return idx >= g.headerCols() && idx < g.NumCols() && g.NumCols()-g.headerCols() > 1
}

// DeleteColumn removes the column at idx, same refusals as DeleteRow.
func (g Grid) DeleteColumn(idx int) Grid {
	if !g.CanDeleteColumn(idx) {
		return g
	}

	cells := make([][]string, len(g.cells))
	for r, row := range g.cells {
		row = slices.Clone(row)
		cells[r] = slices.Delete(row, idx, idx+1)
	}
	g.cells = cells
	return g.clampSelection()
}

// unexported

// insertRow places an empty row at idx, clamped so the header row stays on
// top and gaps cannot open past the bottom edge.
func (g Grid) insertRow(idx int) Grid {
	if len(g.cells) == 0 {
		g.cells = [][]string{{""}}
		return g
	}

	idx = clamp(idx, g.headerRows(), g.NumRows())
	row := make([]string, g.NumCols())

	cells := slices.Clone(g.cells)
	g.cells = slices.Insert(cells, idx, row)
	return g
}

func (g Grid) insertColumn(idx int) Grid {
	if len(g.cells) == 0 {
		g.cells = [][]string{{""}}
		return g
	}

	idx = clamp(idx, g.headerCols(), g.NumCols())

	cells := make([][]string, len(g.cells))
	for r, row := range g.cells {
		row = slices.Clone(row)
		cells[r] = slices.Insert(row, idx, "")
	}
	g.cells = cells
	return g
}
