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
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidInput indicates a missing or negative amount, an unknown tag, or an
// empty line set where lines are required.
var ErrInvalidInput = fmt.Errorf("%w: invalid input", ErrValidation)

// ErrImbalancedEntry indicates that debit and credit sums differ when posting.
var ErrImbalancedEntry = errors.New("journal entry is not balanced")

// ErrIllegalTransition indicates a status change not allowed from the entry's current state.
var ErrIllegalTransition = errors.New("illegal journal entry status transition")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
