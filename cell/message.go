package cell

// Msg is a message from a cell, stamped with the cell's grid position by
// the sheet that routed it.
type Msg interface {
	SetPosition(row, col int)
}

// Ensure messages implement Msg
var (
	_ Msg = (*EditingMsg)(nil)
	_ Msg = (*CommitMsg)(nil)
)

// EditingMsg is sent when a cell enters or leaves edit mode without
// committing, so the sheet can suppress its own key handling while typing.
type EditingMsg struct {
	Row     int
	Col     int
	Editing bool
}

func (m *EditingMsg) SetPosition(row, col int) {
	m.Row = row
	m.Col = col
}

// CommitMsg is sent when a draft is committed. Advance asks the sheet to
// move the selection one column right (tab handoff).
type CommitMsg struct {
	Row     int
	Col     int
	Value   string
	Advance bool
}

func (m *CommitMsg) SetPosition(row, col int) {
	m.Row = row
	m.Col = col
}
