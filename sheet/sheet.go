// Package sheet implements the grid controller: it owns the authoritative
// cell values and selection, composes one cell editor per position, and
// arbitrates navigation, clipboard, and structural edits. Cells request
// mutation via messages; nothing else writes the grid.
package sheet

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"

	"gridle/cell"
	nt "gridle/entity"
	"gridle/grid"
	"gridle/message"
	"gridle/style"
)

const maxCellWidth = 24

// Sheet is the bubbletea component for one editable grid.
type Sheet struct {
	name  string
	grid  grid.Grid
	cells [][]cell.Cell

	clip    *string // last copied value, local to this sheet
	editing bool    // some cell reported an active edit
	focused bool

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// New builds a sheet from a form layout and a previously stored value.
func New(ctx context.Context, form nt.Form, value [][]string, lgr nt.Logger) Sheet {

	cfg := grid.Config{
		Rows:      form.Rows,
		RowLabels: form.RowLabels,
		Cols:      form.Cols,
		ColLabels: form.ColLabels,
	}

	sh := Sheet{
		name:   form.Name,
		grid:   grid.New(cfg, value),
		ctx:    ctx,
		logger: lgr,
	}
	sh.cells = buildCells(sh.grid)

	return sh
}

func (sh Sheet) Init() tea.Cmd {
	return nil
}

func (sh Sheet) Update(msg tea.Msg) (Sheet, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		sh.width = msg.Width
		sh.height = msg.Height
		return sh, nil

	case tea.KeyPressMsg:
		if !sh.focused {
			return sh, nil
		}
		if sh.editing {
			// Typing: the cell owns every key, grid handling is suppressed
			return sh.updateCell(msg)
		}
		return sh.updateNav(msg)

	case tea.PasteMsg:
		if !sh.focused {
			return sh, nil
		}
		if sh.editing {
			return sh.updateCell(msg)
		}
		return sh.paste(msg.Content)

	case *cell.EditingMsg:
		sh.editing = msg.Editing
		return sh, nil

	case *cell.CommitMsg:
		sh.editing = false
		sh.grid = sh.grid.SetCell(msg.Row, msg.Col, msg.Value)
		sh = sh.refreshValues()
		if msg.Advance {
			sh.grid = sh.grid.Move(0, 1)
		}
		return sh, message.ChangedCmd(sh.name, sh.grid.Snapshot())
	}

	return sh, nil
}

// Focus directs grid input to this sheet.
func (sh Sheet) Focus() Sheet {
	sh.focused = true
	return sh
}

// Blur withdraws input routing, committing any in-flight edit the way
// leaving a text control does.
func (sh Sheet) Blur() (Sheet, tea.Cmd) {
	sh.focused = false

	row, col, ok := sh.grid.Selection()
	if !ok || !sh.editing {
		return sh, nil
	}

	blurred, committed := sh.cells[row][col].Blur()
	sh.cells = replaceCell(sh.cells, row, col, blurred)
	sh.editing = false
	if !committed {
		return sh, nil
	}

	sh.grid = sh.grid.SetCell(row, col, blurred.Value())
	sh = sh.refreshValues()
	return sh, message.ChangedCmd(sh.name, sh.grid.Snapshot())
}

// Name returns the form name this sheet persists under.
func (sh Sheet) Name() string {
	return sh.name
}

// Editing reports whether a cell edit is in flight.
func (sh Sheet) Editing() bool {
	return sh.editing
}

// Focused reports whether grid input routes here.
func (sh Sheet) Focused() bool {
	return sh.focused
}

// Selection returns the selected position, if any.
func (sh Sheet) Selection() (row, col int, ok bool) {
	return sh.grid.Selection()
}

// Grid returns the authoritative grid value.
func (sh Sheet) Grid() grid.Grid {
	return sh.grid
}

// Render renders the title and cells, highlighting selection when focused.
func (sh Sheet) Render() string {

	selRow, selCol := -1, -1
	if row, col, ok := sh.grid.Selection(); ok && sh.focused {
		selRow, selCol = row, col
	}

	styler := style.CellStyler(selRow, selCol)
	tbl := table.New()
	style.StyleTable(tbl)
	tbl.StyleFunc(func(row, col int) lipgloss.Style {
		if sh.grid.IsHeader(row, col) {
			return style.HeaderStyle
		}
		if sh.editing && row == selRow && col == selCol {
			return style.EditCellStyle
		}
		return styler(row, col)
	})

	for r := range sh.cells {
		var row []string
		for c := range sh.cells[r] {
			row = append(row, truncate(sh.cells[r][c].Render(), maxCellWidth))
		}
		tbl.Row(row...)
	}

	title := sh.name
	if sh.focused {
		title = style.TitleStyle.Render(title)
	} else {
		title = style.MutedStyle.Render(title)
	}

	return title + "\n" + tbl.Render()
}

// unexported

// updateNav handles grid-level keys while no cell is editing. Keys without
// a grid meaning fall through to the selected cell, which decides whether
// they begin an edit.
func (sh Sheet) updateNav(msg tea.KeyPressMsg) (Sheet, tea.Cmd) {

	switch msg.String() {

	case "up":
		sh.grid = sh.grid.Move(-1, 0)
	case "down":
		sh.grid = sh.grid.Move(1, 0)
	case "left":
		sh.grid = sh.grid.Move(0, -1)
	case "right", "tab":
		sh.grid = sh.grid.Move(0, 1)
	case "shift+tab":
		sh.grid = sh.grid.Move(0, -1)

	case "ctrl+c":
		if row, col, ok := sh.grid.Selection(); ok {
			value := sh.grid.Cell(row, col)
			sh.clip = &value
		}

	case "ctrl+v":
		if sh.clip == nil {
			return sh, nil
		}
		row, col, ok := sh.grid.Selection()
		if !ok || sh.grid.IsHeader(row, col) {
			return sh, nil
		}
		return sh.mutate(sh.grid.SetCell(row, col, *sh.clip))

	case "alt+r":
		if row, _, ok := sh.grid.Selection(); ok {
			return sh.mutate(sh.grid.InsertRowAfter(row))
		}
		return sh.mutate(sh.grid.AppendRow())

	case "alt+c":
		if _, col, ok := sh.grid.Selection(); ok {
			return sh.mutate(sh.grid.InsertColumnAfter(col))
		}
		return sh.mutate(sh.grid.AppendColumn())

	case "alt+d":
		row, _, ok := sh.grid.Selection()
		if !ok || !sh.grid.CanDeleteRow(row) {
			return sh, nil
		}
		return sh.mutate(sh.grid.DeleteRow(row))

	case "alt+x":
		_, col, ok := sh.grid.Selection()
		if !ok || !sh.grid.CanDeleteColumn(col) {
			return sh, nil
		}
		return sh.mutate(sh.grid.DeleteColumn(col))

	default:
		return sh.updateCell(msg)
	}

	return sh, nil
}

// updateCell routes a message to the selected cell and stamps any reply
// with the cell's position. The editing flag syncs from the updated cell
// right here; waiting on the EditingMsg round trip would leave a window
// where a nav key arriving behind the edit-opening keystroke is misrouted.
func (sh Sheet) updateCell(msg tea.Msg) (Sheet, tea.Cmd) {

	row, col, ok := sh.grid.Selection()
	if !ok {
		return sh, nil
	}

	updated, cmd := sh.cells[row][col].Update(msg)
	sh.cells = replaceCell(sh.cells, row, col, updated)
	sh.editing = updated.Editing()

	return sh, stamp(cmd, row, col)
}

// paste parses clipboard text and merges it at the selection.
func (sh Sheet) paste(text string) (Sheet, tea.Cmd) {

	row, col, ok := sh.grid.Selection()
	if !ok {
		return sh, nil
	}

	block := grid.ParseBlock(text)
	if len(block) == 0 {
		return sh, nil
	}

	return sh.mutate(sh.grid.Merge(row, col, block))
}

// mutate installs a new grid value, syncs the cell editors, and reports
// the change upward exactly once.
func (sh Sheet) mutate(next grid.Grid) (Sheet, tea.Cmd) {

	structural := next.NumRows() != sh.grid.NumRows() || next.NumCols() != sh.grid.NumCols()
	sh.grid = next

	if structural {
		sh.cells = buildCells(next)
	} else {
		sh = sh.refreshValues()
	}

	return sh, message.ChangedCmd(sh.name, next.Snapshot())
}

// refreshValues pushes current grid values into the cell editors. An
// active draft survives; SetValue leaves it alone.
func (sh Sheet) refreshValues() Sheet {
	cells := make([][]cell.Cell, len(sh.cells))
	for r := range sh.cells {
		cells[r] = make([]cell.Cell, len(sh.cells[r]))
		for c := range sh.cells[r] {
			cells[r][c] = sh.cells[r][c].SetValue(sh.grid.Cell(r, c))
		}
	}
	sh.cells = cells
	return sh
}

func buildCells(g grid.Grid) [][]cell.Cell {
	cells := make([][]cell.Cell, g.NumRows())
	for r := range cells {
		cells[r] = make([]cell.Cell, g.NumCols())
		for c := range cells[r] {
			cells[r][c] = cell.New(g.Cell(r, c), g.IsHeader(r, c), 0)
		}
	}
	return cells
}

// replaceCell swaps one cell with fresh row storage so prior sheet copies
// are unharmed.
func replaceCell(cells [][]cell.Cell, row, col int, updated cell.Cell) [][]cell.Cell {
	out := make([][]cell.Cell, len(cells))
	copy(out, cells)
	fresh := make([]cell.Cell, len(out[row]))
	copy(fresh, out[row])
	fresh[col] = updated
	out[row] = fresh
	return out
}

// stamp marks a cell reply with the position it came from.
func stamp(cmd tea.Cmd, row, col int) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if cm, ok := msg.(cell.Msg); ok {
			cm.SetPosition(row, col)
		}
		return msg
	}
}

// truncate cuts a rendered cell to width display cells, never mid-rune.
func truncate(in string, width int) string {

	if lipgloss.Width(in) <= width {
		return in
	}

	ellipsis := style.MutedStyle.Render("…")
	return ansi.Truncate(in, width-1, "") + ellipsis
}
