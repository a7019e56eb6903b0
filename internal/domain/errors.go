package domain

import "errors"

// Sentinel errors returned by the repository layer. Callers can tell a
// missing record apart from a broken store, which a plain nil/false
// convention cannot express.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	ErrStoreFailure = errors.New("persistent store failure")
)
