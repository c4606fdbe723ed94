package services

import "errors"

// ValidationError reports input rejected before reaching the store.
// Message is safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	errInvalidEmail    = newValidationError("Invalid email")
	errInvalidDocument = newValidationError("Invalid document")
	errEmptyUpdate     = newValidationError("No fields to update")
)
