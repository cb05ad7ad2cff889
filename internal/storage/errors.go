package storage

import "errors"

var ErrNotFound = errors.New("resource not found")

// ErrConflict reports a uniqueness violation (e.g. a second application for the same job and user).
var ErrConflict = errors.New("resource conflict (e.g., duplicate key)")

// ErrReferenceMissing reports a foreign-key violation: the referenced row is gone.
var ErrReferenceMissing = errors.New("referenced resource missing")
