package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"

	"gridle"
	"gridle/store/duck"
	"gridle/util"
)

const (
	logFile  = "gridle.log"
	duckFile = "gridle.duck"
	fileMode = 0644
)

var sampleLayout = []byte(`forms:
  - name: crew
    rows: 4
    col_labels: [name, role, phone]
  - name: notes
    rows: 3
    cols: 2
`)

func main() {

	err := util.SampleConfig(sampleLayout, gridle.LayoutFile, fileMode)
	if err != nil {
		fail(err)
	}

	file := util.OpenLog(logFile, fileMode)
	defer util.CloseLog(file)
	lgr := &sabot.Sabot{Writer: file}

	ctx := context.Background()

	store, err := duck.New(lgr, duckFile)
	if err != nil {
		fail(err)
	}
	defer store.Close()

	model, err := gridle.NewModel(ctx, store, lgr)
	if err != nil {
		fail(err)
	}

	lgr.Info(ctx, "starting gridle", "store", store.Name())

	p := tea.NewProgram(model)
	if _, err = p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "gridle: %v\n", err)
	os.Exit(1)
}
