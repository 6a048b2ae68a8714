package models

import (
	"errors"
	"fmt"
)

// Common error types
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrConflict      = errors.New("operation conflicts with current state")
)

// ErrQueueUnavailable is returned when background work is requested but no
// queue is configured
var ErrQueueUnavailable = &AppError{
	Code:    "QUEUE_UNAVAILABLE",
	Message: "background exports are not configured",
}

// AppError represents an application-level error with context
type AppError struct {
	Code    string
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

// InvalidDateError reports a date that is not a real DD/MM/YYYY calendar date
type InvalidDateError struct {
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

// DomainError reports inputs for which no meaningful expiry exists
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return e.Reason
}

// ErrInvalidInput creates a validation error
func ErrInvalidInput(message string) error {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
	}
}

// ErrNotFoundWithMsg creates a not found error with custom message
func ErrNotFoundWithMsg(message string) error {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: message,
		Err:     ErrNotFound,
	}
}

// ErrConflictWithMsg creates a conflict error with custom message
func ErrConflictWithMsg(message string) error {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
		Err:     ErrConflict,
	}
}

// ErrUnprocessable wraps an InvalidDateError or DomainError so the HTTP layer
// can report it. Any other error is returned unchanged.
func ErrUnprocessable(err error) error {
	var dateErr *InvalidDateError
	if errors.As(err, &dateErr) {
		return &AppError{Code: "INVALID_DATE", Message: dateErr.Error(), Err: err}
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return &AppError{Code: "DOMAIN_ERROR", Message: domainErr.Error(), Err: err}
	}
	return err
}
