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

// ErrForbidden indicates the authenticated actor may not perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// Processing preconditions. These are rejected operations, not system faults;
// the caller fixes the state (or data) and retries manually.
var (
	// ErrAlreadyRun is returned when Run is attempted on an already-processed center.
	ErrAlreadyRun = errors.New("period has already been run for this cost center")

	// ErrNotRun is returned when Refresh/Close is attempted before Run.
	ErrNotRun = errors.New("period has not been run for this cost center")

	// ErrAlreadyClosed is returned when Run/Refresh/Close is attempted after Close.
	ErrAlreadyClosed = errors.New("period is already closed for this cost center")

	// ErrNotClosed is returned when Reopen is attempted on a non-closed center.
	ErrNotClosed = errors.New("period is not closed for this cost center")

	// ErrNoEligibleEmployees is returned when a run finds no active employees.
	ErrNoEligibleEmployees = errors.New("no eligible employees for this cost center")

	// ErrNoExchangeRate is returned when no direct or inverse rate exists for a pair.
	ErrNoExchangeRate = errors.New("no exchange rate available for currency pair")
)

// AppError carries an HTTP-ish status code alongside a message and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches errors.Is(err, ErrValidation).
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
