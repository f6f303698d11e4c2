package gridle

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"gridle/sheet"
	"gridle/style"
)

const keyHelp = "enter edit  ctrl+c/v copy/paste  alt+r/c insert  alt+d/x delete  ctrl+n form  ctrl+q quit"

// RenderFooter renders the focused sheet's position, key help, and the
// store name.
func RenderFooter(sh sheet.Sheet, storeName string, width int) string {

	left := sh.Name()
	if row, col, ok := sh.Selection(); ok {
		left = fmt.Sprintf("%s %d:%d", sh.Name(), row+1, col+1)
	}
	right := storeName

	middle := keyHelp

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right) - 4
	if padding < 0 {
		middle = ""
		padding = width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	}
	if padding < 0 {
		padding = 0
	}

	footer := left + "  " + middle + strings.Repeat(" ", padding) + "  " + right
	return style.MutedStyle.Render(footer)
}
