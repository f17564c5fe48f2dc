package core

import "errors"

// ErrOrderNotFound reports that the requested order does not exist. Absence
// is a distinct outcome from a storage failure: callers map it to a 404 or a
// "not updated" result, never to a server error.
var ErrOrderNotFound = errors.New("order not found")

// ValidationError reports that caller-supplied input referenced an entity
// that does not exist, or an argument outside its valid range. It is always
// recoverable by the caller and is raised before any mutation runs.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
