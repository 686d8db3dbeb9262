package knowledgerepo

import (
	"errors"
)

const (
	// NoMatchError is returned by FindMatch when no stored question contains the fragment.
	NoMatchError = constError("no matching knowledge entry")
	// ValidationError is returned when a write is missing a required field.
	ValidationError = constError("invalid request")
)

// IsNoMatchError checks if the error is a no match error.
func IsNoMatchError(err error) bool {
	return errors.Is(err, NoMatchError)
}

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ValidationError)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
