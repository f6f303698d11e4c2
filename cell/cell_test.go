package cell_test

import (
	"testing"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridle/cell"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func char(text string) tea.KeyPressMsg {
	r, _ := utf8.DecodeRuneInString(text)
	return tea.KeyPressMsg{Code: r, Text: text}
}

// press feeds keys and collects messages from any resulting commands.
func press(c cell.Cell, msgs ...tea.Msg) (cell.Cell, []tea.Msg) {
	var out []tea.Msg
	for _, msg := range msgs {
		var cmd tea.Cmd
		c, cmd = c.Update(msg)
		if cmd != nil {
			out = append(out, cmd())
		}
	}
	return c, out
}

func TestEnterOpensEdit(t *testing.T) {

	c := cell.New("abc", false, 0)

	c, out := press(c, key(tea.KeyEnter))

	assert.True(t, c.Editing())
	require.Len(t, out, 1)
	editing, ok := out[0].(*cell.EditingMsg)
	require.True(t, ok)
	assert.True(t, editing.Editing)
}

func TestCommitOnEnter(t *testing.T) {

	c := cell.New("", false, 0)

	c, out := press(c, char("x"), key(tea.KeyEnter))

	assert.False(t, c.Editing())
	assert.Equal(t, "x", c.Value())

	require.Len(t, out, 2)
	commit, ok := out[1].(*cell.CommitMsg)
	require.True(t, ok)
	assert.Equal(t, "x", commit.Value)
	assert.False(t, commit.Advance)
}

func TestEscapeDiscards(t *testing.T) {

	c := cell.New("", false, 0)

	c, out := press(c, char("x"), key(tea.KeyEscape))

	assert.False(t, c.Editing())
	assert.Equal(t, "", c.Value(), "discarded draft leaves committed value")

	require.Len(t, out, 2)
	editing, ok := out[1].(*cell.EditingMsg)
	require.True(t, ok)
	assert.False(t, editing.Editing)
}

func TestTabCommitsAndAdvances(t *testing.T) {

	c := cell.New("old", false, 0)

	c, out := press(c, key(tea.KeyEnter), char("!"), key(tea.KeyTab))

	assert.Equal(t, "old!", c.Value())
	require.Len(t, out, 2)
	commit, ok := out[1].(*cell.CommitMsg)
	require.True(t, ok)
	assert.True(t, commit.Advance)
}

func TestCharSeedsOnlyEmptyCell(t *testing.T) {

	c := cell.New("occupied", false, 0)
	c, out := press(c, char("x"))
	assert.False(t, c.Editing(), "typing over a value does not open an edit")
	assert.Empty(t, out)

	c = cell.New("", false, 0)
	c, _ = press(c, char("x"))
	require.True(t, c.Editing())
	c, _ = press(c, key(tea.KeyEnter))
	assert.Equal(t, "x", c.Value(), "the seeding character lands in the draft")
}

func TestHeaderCellIsInert(t *testing.T) {

	c := cell.New("label", true, 0)

	c, out := press(c, key(tea.KeyEnter), char("x"))

	assert.False(t, c.Editing())
	assert.Equal(t, "label", c.Value())
	assert.Empty(t, out)
}

func TestDraftCursorEditing(t *testing.T) {

	c := cell.New("ab", false, 0)

	// open, walk left, insert, delete the last char
	c, _ = press(c,
		key(tea.KeyEnter),
		key(tea.KeyLeft),
		char("X"),
		key(tea.KeyEnd),
		key(tea.KeyBackspace),
		key(tea.KeyEnter),
	)

	assert.Equal(t, "aX", c.Value())
}

func TestMultibyteDraftEditing(t *testing.T) {

	c := cell.New("", false, 0)

	// cursor steps over the two-byte rune, insert lands before it
	c, _ = press(c, char("é"), key(tea.KeyLeft), char("x"), key(tea.KeyEnter))

	assert.Equal(t, "xé", c.Value())
	assert.True(t, utf8.ValidString(c.Value()))

	c, _ = press(c, key(tea.KeyEnter), key(tea.KeyBackspace), key(tea.KeyEnter))
	assert.Equal(t, "x", c.Value())
}

func TestExternalUpdateLeavesDraftAlone(t *testing.T) {

	c := cell.New("one", false, 0)
	c, _ = press(c, key(tea.KeyEnter), char("!"))

	c = c.SetValue("external")
	assert.True(t, c.Editing())

	c, _ = press(c, key(tea.KeyEnter))
	assert.Equal(t, "one!", c.Value(), "last writer wins on commit")
}

func TestBlurCommits(t *testing.T) {

	c := cell.New("a", false, 0)
	c, _ = press(c, key(tea.KeyEnter), char("b"))

	c, committed := c.Blur()

	assert.True(t, committed)
	assert.False(t, c.Editing())
	assert.Equal(t, "ab", c.Value())

	_, committed = c.Blur()
	assert.False(t, committed, "blur without an edit commits nothing")
}

func TestPasteIntoDraftFlattens(t *testing.T) {

	c := cell.New("", false, 0)
	c, _ = press(c, key(tea.KeyEnter))

	c, _ = press(c, tea.PasteMsg{Content: "two\nlines\there"})
	c, _ = press(c, key(tea.KeyEnter))

	assert.Equal(t, "two lines here", c.Value())
}

func TestMaxLengthCapsInsert(t *testing.T) {

	c := cell.New("", false, 3)

	c, _ = press(c, char("a"), char("b"), char("c"), char("d"), key(tea.KeyEnter))

	assert.Equal(t, "abc", c.Value())
}
