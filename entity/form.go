package entity

// Form describes one grid in the layout: the name it persists under and
// the shape of each axis, given either as a count of unlabeled rows or
// columns or as an ordered list of fixed label captions. Labels win when
// both are set.
type Form struct {
	Name      string   `yaml:"name"`
	Rows      int      `yaml:"rows,omitempty"`
	RowLabels []string `yaml:"row_labels,omitempty"`
	Cols      int      `yaml:"cols,omitempty"`
	ColLabels []string `yaml:"col_labels,omitempty"`
}
