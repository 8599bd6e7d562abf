package walker

import (
	"errors"
	"fmt"
)

// ErrMissingField is matched by every *MissingFieldError.
var ErrMissingField = errors.New("walker: record is missing a required field")

// Field names reported by MissingFieldError.
const (
	FieldID     = "id"
	FieldParent = "parent"
)

// MissingFieldError reports a record whose id or parent id could not be read.
// Traversal cannot group records without both, so the walk is aborted.
type MissingFieldError struct {
	// Field is FieldID or FieldParent.
	Field string

	// Index is the position of the offending record in the input slice.
	Index int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("walker: record %d is missing field %q", e.Index, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
