package repository

import "errors"

// Sentinel errors shared by all repository implementations. Services translate
// these into their own error taxonomy.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)
