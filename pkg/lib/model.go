package lib

import "github.com/slok/spy/internal/model"

// Field is a single key/value pair of a status record.
type Field = model.Field

// Record is the status snapshot of a single job, an ordered sequence of
// key/value fields. The canonical fields written by [Client.Report] are
// name, time, complete and eta.
type Record = model.Record

// Errors the SDK can return, inspectable with errors.Is.
var (
	// ErrNotFound is returned when a job has no status record.
	ErrNotFound = model.ErrNotFound
	// ErrNotValid is returned on invalid input.
	ErrNotValid = model.ErrNotValid
	// ErrInvalidProgress is returned when reporting a zero completion fraction.
	ErrInvalidProgress = model.ErrInvalidProgress
	// ErrMalformedRecord is returned when a stored record can't be parsed.
	ErrMalformedRecord = model.ErrMalformedRecord
)
