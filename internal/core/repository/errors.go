package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert or update violates a unique
	// constraint (client email, offer name).
	ErrDuplicate = errors.New("duplicate value")
)
