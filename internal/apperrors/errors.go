package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// Handlers report it as a conflict.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the user is not allowed to act on the workplace.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected infrastructure failure.
var ErrInternal = errors.New("internal error")

// AppError wraps an infrastructure error with an HTTP-ish status code and a message
// that is safe to log.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap lets errors.Is see the sentinel wrapped by the repository layer.
func (e *AppError) Unwrap() error {
	return e.Err
}
