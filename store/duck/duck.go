// Package duck implements the form-value store on an embedded DuckDB
// database, one row per cell keyed by form name and position.
package duck

import (
	"database/sql"

	"github.com/pkg/errors"

	nt "gridle/entity"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS cells (
		form VARCHAR NOT NULL,
		rank INTEGER NOT NULL,
		file INTEGER NOT NULL,
		value VARCHAR NOT NULL
	)`

type Duck struct {
	db     *sql.DB
	logger nt.Logger
	path   string
}

// New opens or creates the database file and ensures the schema.
func New(lgr nt.Logger, path string) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open duck at %s", path)
		return
	}

	_, err = db.Exec(createTable)
	if err != nil {
		err = errors.Wrapf(err, "failed to create cells table")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
		path:   path,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the database filename
func (dk *Duck) Name() string {
	return dk.path
}

// Load returns the stored snapshot for a form, nil when none is stored.
// Rows are rebuilt in position order; gaps read back as empty strings.
func (dk *Duck) Load(form string) (cells [][]string, err error) {

	rows, err := dk.db.Query(
		`SELECT rank, file, value FROM cells WHERE form = ? ORDER BY rank, file`,
		form,
	)
	if err != nil {
		err = errors.Wrapf(err, "failed to query cells for %s", form)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var rank, file int
		var value string

		err = rows.Scan(&rank, &file, &value)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan cell for %s", form)
			return
		}

		for len(cells) <= rank {
			cells = append(cells, []string{})
		}
		for len(cells[rank]) <= file {
			cells[rank] = append(cells[rank], "")
		}
		cells[rank][file] = value
	}

	err = errors.Wrapf(rows.Err(), "failed reading cells for %s", form)
	return
}

// Save replaces the stored snapshot for a form in one transaction.
func (dk *Duck) Save(form string, cells [][]string) (err error) {

	tx, err := dk.db.Begin()
	if err != nil {
		return errors.Wrapf(err, "failed to begin save for %s", form)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM cells WHERE form = ?`, form)
	if err != nil {
		return errors.Wrapf(err, "failed to clear cells for %s", form)
	}

	for rank, row := range cells {
		for file, value := range row {
			_, err = tx.Exec(
				`INSERT INTO cells (form, rank, file, value) VALUES (?, ?, ?, ?)`,
				form, rank, file, value,
			)
			if err != nil {
				return errors.Wrapf(err, "failed to insert cell %d:%d for %s", rank, file, form)
			}
		}
	}

	err = tx.Commit()
	return errors.Wrapf(err, "failed to commit save for %s", form)
}
