// Package gridle assembles editable grid sheets into a form whose contents
// persist through a backing store. Sheets own values and selection; the
// root model here owns focus routing and persistence.
package gridle

// Store specifies the backing form-value store. Sheets never persist
// anything themselves; they report snapshots and the model hands them here.
type Store interface {
	// Name identifies the store for display
	Name() string
	// Load returns the stored snapshot for a form, nil when absent
	Load(form string) (cells [][]string, err error)
	// Save replaces the stored snapshot for a form
	Save(form string, cells [][]string) (err error)
	// Close releases the store
	Close()
}
