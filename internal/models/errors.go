package models

import "errors"

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyUpdate is returned when an update payload has no effective
	// (non-null) fields.
	ErrEmptyUpdate = errors.New("no update data provided")
)

// ValidationError reports a create payload failing schema constraints.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}
