package catalog

import "errors"

var (
	// ErrRecordNotFound indicates no record exists at the requested index.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidInput indicates invalid input for catalog operations.
	ErrInvalidInput = errors.New("invalid catalog input")
)
