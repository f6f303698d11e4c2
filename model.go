package gridle

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"

	nt "gridle/entity"
	"gridle/message"
	"gridle/sheet"
	"gridle/style"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model for the form TUI.
type Model struct {
	Store       Store
	Layout      *Layout
	logger      nt.Logger
	ctx         context.Context
	errorString string

	Sheets []sheet.Sheet
	focus  int

	Width  int
	Height int
}

// NewModel creates a bt model with one sheet per form in the layout,
// seeded from the store.
func NewModel(ctx context.Context, store Store, lgr nt.Logger) (model Model, err error) {

	layout, err := loadLayout(LayoutFile)
	if err != nil {
		return
	}
	if len(layout.Forms) == 0 {
		err = errors.Errorf("layout %s names no forms", LayoutFile)
		return
	}

	sheets := make([]sheet.Sheet, 0, len(layout.Forms))
	for _, form := range layout.Forms {
		var value [][]string
		value, err = store.Load(form.Name)
		if err != nil {
			err = errors.Wrapf(err, "failed to load form %s", form.Name)
			return
		}
		sheets = append(sheets, sheet.New(ctx, form, value, lgr))
	}
	sheets[0] = sheets[0].Focus()

	model = Model{
		Store:  store,
		Layout: layout,
		logger: lgr,
		ctx:    ctx,
		Sheets: sheets,
	}

	return
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.ChangedMsg:
		return m, m.save(msg.Form, msg.Cells)

	case message.SavedMsg:
		m.logger.Info(m.ctx, "saved form", "form", msg.Form)
		return m, nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		editing := m.Sheets[m.focus].Editing()

		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit

		case "esc":
			if !editing {
				return m, tea.Quit
			}
			// mid-edit esc belongs to the cell, which discards its draft

		case "ctrl+n":
			if !editing && len(m.Sheets) > 1 {
				return m.cycleFocus()
			}
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		adjusted := tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: msg.Height - footerHeight,
		}
		var cmds []tea.Cmd
		for i := range m.Sheets {
			var cmd tea.Cmd
			m.Sheets[i], cmd = m.Sheets[i].Update(adjusted)
			cmds = append(cmds, cmd)
		}
		return m, tea.Sequence(cmds...)
	}

	// Keys, paste, and stamped cell messages route to the focused sheet
	// only, so stacked grids never cross-route input
	var cmd tea.Cmd
	m.Sheets[m.focus], cmd = m.Sheets[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	panes := make([]string, 0, len(m.Sheets))
	for _, sh := range m.Sheets {
		panes = append(panes, sh.Render())
	}
	content := strings.Join(panes, "\n\n")

	screenLayer := lipgloss.NewLayer("screen", content)

	footerContent := RenderFooter(m.Sheets[m.focus], m.Store.Name(), m.Width)
	if m.errorString != "" {
		footerContent = style.ErrorStyle.Render(m.errorString)
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// cycleFocus moves input routing to the next sheet.
func (m Model) cycleFocus() (tea.Model, tea.Cmd) {

	var cmd tea.Cmd
	m.Sheets[m.focus], cmd = m.Sheets[m.focus].Blur()

	m.focus = (m.focus + 1) % len(m.Sheets)
	m.Sheets[m.focus] = m.Sheets[m.focus].Focus()

	return m, cmd
}
