package store

import "errors"

var (
	// ErrNotFound is returned by lookups with no matching record. It is an
	// expected outcome, never an operation failure.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyUsername is returned when a user operation is attempted with
	// a blank username.
	ErrEmptyUsername = errors.New("username must not be empty")

	// ErrInvalidPageNumber is returned when reading progress is saved with
	// a page number below 1.
	ErrInvalidPageNumber = errors.New("page number must be >= 1")
)
