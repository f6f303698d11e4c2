package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "gridle/entity"
	"gridle/message"
	"gridle/sheet"
)

// noopLogger keeps the demo free of a log file
type noopLogger struct{}

func (l noopLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (l noopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

type model struct {
	sheet   sheet.Sheet
	changes int
	width   int
	height  int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case message.ChangedMsg:
		// would be persisted by a store in the full app
		m.changes++
		return m, nil
	}

	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(msg)
	return m, cmd
}

func (m model) View() tea.View {
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(fmt.Sprintf("%d changes  ctrl+q quit", m.changes))

	return tea.NewView(m.sheet.Render() + "\n\n" + footer)
}

func main() {

	form := nt.Form{
		Name:      "demo",
		RowLabels: []string{"alpha", "bravo", "charlie"},
		ColLabels: []string{"one", "two", "three"},
	}

	sh := sheet.New(context.Background(), form, nil, noopLogger{})
	sh = sh.Focus()

	p := tea.NewProgram(model{sheet: sh})
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
