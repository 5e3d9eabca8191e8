package art

import "errors"

var (
	// ErrInvalidInput indicates a record field failed validation.
	ErrInvalidInput = errors.New("invalid art record")
	// ErrUnknownKind indicates an unrecognized type tag.
	ErrUnknownKind = errors.New("unknown art kind")
)
