package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridle/grid"
)

func TestParseBlock(t *testing.T) {

	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{
			name: "scalar without delimiters",
			text: "just a value",
			want: [][]string{{"just a value"}},
		},
		{
			name: "tab delimited",
			text: "a\tb\nc\td",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "comma delimited",
			text: "a,b\nc,d",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "tab wins over comma",
			text: "a,x\tb\nc\td,y",
			want: [][]string{{"a,x", "b"}, {"c", "d,y"}},
		},
		{
			name: "crlf and bare cr line breaks",
			text: "a,b\r\nc,d\re,f",
			want: [][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}},
		},
		{
			name: "empty lines dropped",
			text: "a,b\n\n\nc,d\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "fields trimmed and unquoted",
			text: ` "a" , 'b c' ` + "\n" + ` d , "e 'f'" `,
			want: [][]string{{"a", "b c"}, {"d", "e 'f'"}},
		},
		{
			name: "mismatched quotes kept",
			text: `"a',b`,
			want: [][]string{{`"a'`, "b"}},
		},
		{
			name: "ragged rows allowed",
			text: "a,b,c\nd",
			want: [][]string{{"a", "b", "c"}, {"d"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.ParseBlock(tt.text))
		})
	}
}

func TestMergeBlock(t *testing.T) {

	g := grid.New(grid.Config{Rows: 5, Cols: 5}, nil)
	g = g.Select(1, 1)

	g2 := g.Merge(1, 1, grid.ParseBlock("a\tb\nc\td"))

	assert.Equal(t, "a", g2.Cell(1, 1))
	assert.Equal(t, "b", g2.Cell(1, 2))
	assert.Equal(t, "c", g2.Cell(2, 1))
	assert.Equal(t, "d", g2.Cell(2, 2))

	// no other cell changes
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if (r == 1 || r == 2) && (c == 1 || c == 2) {
				continue
			}
			assert.Equal(t, "", g2.Cell(r, c), "cell %d:%d", r, c)
		}
	}

	assert.Equal(t, "", g.Cell(1, 1), "merge does not touch the prior grid")
}

func TestMergeScalar(t *testing.T) {

	g := grid.New(grid.Config{Rows: 3, Cols: 3}, nil)

	g = g.Merge(2, 2, grid.ParseBlock("lone"))

	assert.Equal(t, "lone", g.Cell(2, 2))
}

func TestMergeClipsAtEdges(t *testing.T) {

	g := grid.New(grid.Config{Rows: 2, Cols: 2}, nil)

	g = g.Merge(1, 1, [][]string{{"a", "spill"}, {"spill", "spill"}})

	assert.Equal(t, "a", g.Cell(1, 1))
	assert.Equal(t, 2, g.NumRows(), "paste never grows the grid")
	assert.Equal(t, 2, g.NumCols())
}

func TestMergeSkipsHeaders(t *testing.T) {

	cfg := grid.Config{
		RowLabels: []string{"alpha", "bravo"},
		ColLabels: []string{"one", "two"},
	}
	g := grid.New(cfg, nil)

	g = g.Merge(0, 0, [][]string{{"x", "x"}, {"x", "x"}})

	require.Equal(t, "", g.Cell(0, 0), "corner survives")
	assert.Equal(t, "one", g.Cell(0, 1), "column labels survive")
	assert.Equal(t, "alpha", g.Cell(1, 0), "row labels survive")
	assert.Equal(t, "x", g.Cell(1, 1), "the rest of the block still lands")
}
