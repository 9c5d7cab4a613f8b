package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the given id or unique key.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique constraint (sku, username, email,
	// order number) is violated at persist time.
	ErrConflict = errors.New("unique constraint violated")
)
