package repository

import "errors"

var (
	// ErrNotFound signals that no row matched the operation's scope
	// (active rows for updates and soft deletes, deleted rows for restores).
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateName signals a unique-constraint violation on a name
	// scoped to active rows.
	ErrDuplicateName = errors.New("duplicate name")
)
