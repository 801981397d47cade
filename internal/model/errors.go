package model

import "errors"

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrInvalidProgress is returned when an ETA can't be computed because the
	// reported progress fraction is zero.
	ErrInvalidProgress = errors.New("invalid progress")
	// ErrMalformedRecord is returned when a stored status record can't be parsed.
	ErrMalformedRecord = errors.New("malformed record")
)
