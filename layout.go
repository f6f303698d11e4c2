package gridle

import (
	"github.com/pkg/errors"

	nt "gridle/entity"
	"gridle/util"
)

// LayoutFile is where the model looks for its form layout.
const LayoutFile = "layout.yaml"

// Layout configures the set of grids composing the form.
type Layout struct {
	Forms []nt.Form `yaml:"forms"`
}

func loadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	if err != nil {
		return
	}

	seen := map[string]bool{}
	for _, form := range layout.Forms {
		if form.Name == "" {
			err = errors.Errorf("form with no name in %s", path)
			return
		}
		if seen[form.Name] {
			err = errors.Errorf("duplicate form %s in %s", form.Name, path)
			return
		}
		seen[form.Name] = true
	}

	return
}
