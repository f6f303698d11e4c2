// Package cell implements a single grid cell as a small state machine with
// two states: displaying its committed value or editing a local draft.
// Commits and edit-state changes travel upward as position-stamped messages;
// the cell never touches shared grid state itself.
package cell

import (
	"strings"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
)

const cursorGlyph = "▎"

// Cell is an editable text cell. The draft buffer and cursor are local
// while editing and reach the grid only on commit. The cursor is a byte
// offset kept on rune boundaries.
type Cell struct {
	value     string
	draft     string
	cursor    int
	editing   bool
	header    bool
	maxLength int
}

func New(value string, header bool, maxLength int) Cell {
	if maxLength <= 0 {
		maxLength = 100 // Default max length
	}
	return Cell{
		value:     value,
		header:    header,
		maxLength: maxLength,
	}
}

func (c Cell) Update(msg tea.Msg) (Cell, tea.Cmd) {
	if c.header {
		// Header cells never leave display state
		return c, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if c.editing {
			return c.updateEditing(msg)
		}
		return c.updateDisplay(msg)

	case tea.PasteMsg:
		if c.editing {
			return c.insert(flatten(msg.Content)), nil
		}
	}
	return c, nil
}

// Blur ends an in-flight edit by committing the draft, as leaving a text
// control does. Applied synchronously by the owning sheet since the sheet
// itself initiates the blur; committed reports whether a draft landed.
func (c Cell) Blur() (blurred Cell, committed bool) {
	if !c.editing {
		return c, false
	}
	c.editing = false
	c.value = c.draft
	c.draft = ""
	c.cursor = 0
	return c, true
}

// SetValue refreshes the committed value from the authoritative grid. An
// active draft is deliberately left alone; the last writer wins on commit.
func (c Cell) SetValue(value string) Cell {
	c.value = value
	return c
}

func (c Cell) Value() string {
	return c.value
}

func (c Cell) Editing() bool {
	return c.editing
}

func (c Cell) Header() bool {
	return c.header
}

func (c Cell) Render() string {
	if c.editing {
		return c.draft[:c.cursor] + cursorGlyph + c.draft[c.cursor:]
	}
	return c.value
}

// unexported

// updateDisplay watches for the two edit triggers: enter opens the draft on
// the current value, a printable character seeds the draft of an empty cell.
func (c Cell) updateDisplay(msg tea.KeyPressMsg) (Cell, tea.Cmd) {
	switch {
	case msg.String() == "enter":
		c.editing = true
		c.draft = c.value
		c.cursor = len(c.draft)
		return c, editingCmd(true)

	case msg.Text != "" && c.value == "":
		c.editing = true
		c.draft = ""
		c.cursor = 0
		c = c.insert(msg.Text)
		return c, editingCmd(true)
	}
	return c, nil
}

func (c Cell) updateEditing(msg tea.KeyPressMsg) (Cell, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return c.commit(false)
	case "tab":
		return c.commit(true)
	case "esc":
		// Discard the draft, keep the committed value
		c.editing = false
		c.draft = ""
		c.cursor = 0
		return c, editingCmd(false)
	case "backspace":
		if c.cursor > 0 {
			_, size := utf8.DecodeLastRuneInString(c.draft[:c.cursor])
			c.draft = c.draft[:c.cursor-size] + c.draft[c.cursor:]
			c.cursor -= size
		}
	case "delete":
		if c.cursor < len(c.draft) {
			_, size := utf8.DecodeRuneInString(c.draft[c.cursor:])
			c.draft = c.draft[:c.cursor] + c.draft[c.cursor+size:]
		}
	case "left":
		if c.cursor > 0 {
			_, size := utf8.DecodeLastRuneInString(c.draft[:c.cursor])
			c.cursor -= size
		}
	case "right":
		if c.cursor < len(c.draft) {
			_, size := utf8.DecodeRuneInString(c.draft[c.cursor:])
			c.cursor += size
		}
	case "home", "ctrl+a":
		c.cursor = 0
	case "end", "ctrl+e":
		c.cursor = len(c.draft)
	default:
		if msg.Text != "" {
			c = c.insert(msg.Text)
		}
	}
	return c, nil
}

func (c Cell) commit(advance bool) (Cell, tea.Cmd) {
	c.editing = false
	c.value = c.draft
	c.draft = ""
	c.cursor = 0

	value := c.value
	return c, func() tea.Msg {
		return &CommitMsg{Value: value, Advance: advance}
	}
}

func (c Cell) insert(text string) Cell {
	if len(c.draft)+len(text) > c.maxLength {
		return c
	}
	c.draft = c.draft[:c.cursor] + text + c.draft[c.cursor:]
	c.cursor += len(text)
	return c
}

func editingCmd(editing bool) tea.Cmd {
	return func() tea.Msg {
		return &EditingMsg{Editing: editing}
	}
}

// flatten folds pasted line breaks and tabs into spaces; a cell draft is a
// single line.
func flatten(text string) string {
	return strings.Join(strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\t'
	}), " ")
}
