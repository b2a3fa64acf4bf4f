package store

import "errors"

// Sentinel errors returned by the resource accessors. Handlers map these to
// HTTP status codes; anything else is a storage failure.
var (
	// ErrNotFound means no row matched the given identifier.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means a uniqueness constraint was violated.
	ErrDuplicate = errors.New("duplicate record")

	// ErrEmptyPatch means an update request carried no applicable fields.
	ErrEmptyPatch = errors.New("no fields to update")
)
