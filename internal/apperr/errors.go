// Package apperr defines sentinel conditions shared across the engine.
package apperr

import "errors"

var (
	// ErrDuplicateEntry signals that an entry already exists verbatim in its
	// section. It is a no-op marker, not a failure.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrSkipped signals that a commit was intentionally not logged (invalid
	// ref, or a commit made inside the log repository itself).
	ErrSkipped = errors.New("commit skipped")
)
