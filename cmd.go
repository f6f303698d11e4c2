package gridle

import (
	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"

	"gridle/message"
)

// save persists a snapshot through the store
func (m Model) save(form string, cells [][]string) tea.Cmd {

	return func() tea.Msg {

		err := m.Store.Save(form, cells)
		if err != nil {
			return message.ErrorMsg{Err: errors.Wrapf(err, "failed to save form %s", form)}
		}

		return message.SavedMsg{Form: form}
	}
}
