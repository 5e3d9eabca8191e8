package repository

import "errors"

var (
	// ErrUnsupported is returned by repositories without a backing store
	// when asked to load or save.
	ErrUnsupported = errors.New("persistence not supported by this repository")

	// ErrPersistence wraps any failure reading or writing a backing store.
	ErrPersistence = errors.New("persistence failed")

	// ErrMalformed is returned when persisted data cannot be interpreted as
	// a record set.
	ErrMalformed = errors.New("malformed catalog data")
)
