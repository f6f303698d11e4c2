// Package message holds the messages shared between the root form model
// and its sheets.
package message

// ChangedMsg carries a full grid snapshot after a mutating operation,
// labels included. Exactly one is sent per operation.
type ChangedMsg struct {
	Form  string
	Cells [][]string
}

// SavedMsg signals that a snapshot reached the store.
type SavedMsg struct {
	Form string
}

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}
