// Package grid implements a rectangular store of string cell values with an
// optional fixed label row and/or column and a single selection cursor.
//
// Grid is designed for immutable use in bubbletea/Elm architecture:
// - Mutating methods return a new Grid with fresh cell storage for the
//   parts they touch (copy-on-write)
// - Disallowed requests (out of bounds, header targets, minimum structure)
//   are silent no-ops rather than errors
package grid

import "slices"

// Config describes the shape of a grid: each axis is either a count of
// unlabeled rows/columns or an ordered list of fixed label captions.
// Labels on one axis reserve a header column/row on the other.
type Config struct {
	Rows      int
	RowLabels []string
	Cols      int
	ColLabels []string
}

// Grid holds the cells and selection.
type Grid struct {
	cells       [][]string
	labeledRows bool // column 0 holds fixed row labels
	labeledCols bool // row 0 holds fixed column labels
	position    position
	selected    bool
}

// New builds a grid from config and a previously captured value.
//
// A counted axis yields max(count, value dimension) rows/columns; a labeled
// axis yields one per label plus the reserved header for the other axis.
// The value is laid in first, padded with empty strings, then configured
// label text overwrites the reserved positions.
func New(cfg Config, value [][]string) Grid {

	g := Grid{
		labeledRows: len(cfg.RowLabels) > 0,
		labeledCols: len(cfg.ColLabels) > 0,
	}

	rows := max(cfg.Rows, 1)
	if g.labeledRows {
		rows = len(cfg.RowLabels)
	}
	rows += g.headerRows()
	rows = max(rows, len(value))

	cols := max(cfg.Cols, 1)
	if g.labeledCols {
		cols = len(cfg.ColLabels)
	}
	cols += g.headerCols()
	cols = max(cols, widest(value))

	cells := make([][]string, rows)
	for r := range cells {
		row := make([]string, cols)
		if r < len(value) {
			copy(row, value[r])
		}
		cells[r] = row
	}

	if g.labeledCols {
		for c := g.headerCols(); c < cols; c++ {
			label := ""
			if idx := c - g.headerCols(); idx < len(cfg.ColLabels) {
				label = cfg.ColLabels[idx]
			}
			cells[0][c] = label
		}
	}
	if g.labeledRows {
		for r := g.headerRows(); r < rows; r++ {
			label := ""
			if idx := r - g.headerRows(); idx < len(cfg.RowLabels) {
				label = cfg.RowLabels[idx]
			}
			cells[r][0] = label
		}
	}
	if g.labeledRows && g.labeledCols {
		cells[0][0] = "" // reserved corner
	}

	g.cells = cells
	return g
}

// NumRows returns the total row count, header row included.
func (g Grid) NumRows() int {
	return len(g.cells)
}

// NumCols returns the total column count, header column included.
func (g Grid) NumCols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Cell returns the value at row, col, or empty string out of bounds.
func (g Grid) Cell(row, col int) string {
	if !g.inBounds(row, col) {
		return ""
	}
	return g.cells[row][col]
}

// IsHeader reports whether row, col is a reserved label position.
func (g Grid) IsHeader(row, col int) bool {
	if g.labeledCols && row == 0 {
		return true
	}
	if g.labeledRows && col == 0 {
		return true
	}
	return false
}

// Snapshot returns a deep copy of all cells, labels included, suitable for
// handing to a change callback or a store.
func (g Grid) Snapshot() [][]string {
	return cloneCells(g.cells)
}

// Selection returns the selected position, if any.
func (g Grid) Selection() (row, col int, ok bool) {
	if !g.selected {
		return 0, 0, false
	}
	return g.position.row, g.position.col, true
}

// unexported

type position struct {
	row int
	col int
}

func (g Grid) headerRows() int {
	if g.labeledCols {
		return 1
	}
	return 0
}

func (g Grid) headerCols() int {
	if g.labeledRows {
		return 1
	}
	return 0
}

func (g Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.NumRows() && col >= 0 && col < g.NumCols()
}

func cloneCells(cells [][]string) [][]string {
	out := make([][]string, len(cells))
	for r, row := range cells {
		out[r] = slices.Clone(row)
	}
	return out
}

func widest(cells [][]string) (width int) {
	for _, row := range cells {
		width = max(width, len(row))
	}
	return
}
