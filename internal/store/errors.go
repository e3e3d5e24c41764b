package store

import "errors"

// Sentinel errors for single-resource operations. List and search never
// return these; they degrade to empty results instead.
var (
	ErrNotFound     = errors.New("prompt not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrStorage      = errors.New("storage failure")
)
