package library

import "errors"

// Sentinel errors surfaced by the store and manager. Callers match them with
// errors.Is; the wrapped message carries the offending id, key or value.
var (
	ErrBookNotFound = errors.New("book not found")
	ErrMissingField = errors.New("missing required field")
	ErrInvalidValue = errors.New("invalid value")
)
