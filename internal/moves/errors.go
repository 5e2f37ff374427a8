package moves

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing field")

// MissingFieldError reports a required field absent from the raw move data.
// Field is the JSON path of the absent field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField.Error(), e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func missing(format string, args ...any) error {
	return &MissingFieldError{Field: fmt.Sprintf(format, args...)}
}
