package domain

import "errors"

var (
	// ErrCanonicalNotFound is returned when the authoritative definition file
	// does not exist. The checker cannot proceed without it.
	ErrCanonicalNotFound = errors.New("canonical file not found")

	// ErrMismatch is returned when dependent files diverge from the canonical
	// definitions.
	ErrMismatch = errors.New("identifier mismatch")

	// ErrNoEffect is returned in strict mode when at least one descriptor did
	// not find its insertion point.
	ErrNoEffect = errors.New("patch had no effect")
)
