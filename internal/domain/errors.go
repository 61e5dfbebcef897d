package domain

import "errors"

var (
	// ErrNotFound indicates the requested product does not exist. It is a
	// normal outcome of lookups by id, not a failure.
	ErrNotFound = errors.New("not found")
)
