package grid

import "strings"

// ParseBlock interprets pasted plain text as a block of cells. Text with no
// tab, comma, or line break is a single scalar cell. Otherwise lines are
// split on any of CRLF/LF/CR with empties dropped, and fields are split on
// tab when the first line holds one, else comma, each field trimmed and
// stripped of one layer of surrounding quotes.
func ParseBlock(text string) [][]string {

	if !strings.ContainsAny(text, "\t,\n\r") {
		return [][]string{{text}}
	}

	flat := strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(text)

	var lines []string
	for _, line := range strings.Split(flat, "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil
	}

	delim := ","
	if strings.Contains(lines[0], "\t") {
		delim = "\t"
	}

	block := make([][]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, delim)
		for i, field := range fields {
			fields[i] = unquote(strings.TrimSpace(field))
		}
		block = append(block, fields)
	}

	return block
}

// Merge overlays a parsed block onto the grid starting at startRow,
// startCol. Cells landing out of bounds or on a header position are
// skipped; a partial paste at the edges is expected, not an error.
func (g Grid) Merge(startRow, startCol int, block [][]string) Grid {

	cells := cloneCells(g.cells)
	for i, blockRow := range block {
		row := startRow + i
		if row < 0 || row >= len(cells) {
			continue
		}
		for j, value := range blockRow {
			col := startCol + j
			if col < 0 || col >= len(cells[row]) || g.IsHeader(row, col) {
				continue
			}
			cells[row][col] = value
		}
	}

	g.cells = cells
	return g
}

// unquote strips one layer of matching single or double quotes.
func unquote(field string) string {
	if len(field) < 2 {
		return field
	}

	first, last := field[0], field[len(field)-1]
	if first == last && (first == '"' || first == '\'') {
		return field[1 : len(field)-1]
	}
	return field
}
