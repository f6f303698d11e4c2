package message

import tea "charm.land/bubbletea/v2"

// ChangedCmd returns a command reporting a fresh grid snapshot.
func ChangedCmd(form string, cells [][]string) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{
			Form:  form,
			Cells: cells,
		}
	}
}

// ErrorCmd returns a command carrying an error.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
