// Package errors provides structured error types for windbarb.
//
// Every failure the library raises is a precondition failure: it is reported
// synchronously before any shape is produced, so callers never observe
// partial output. Errors carry a machine-readable [Code] so the CLI and the
// HTTP service can map them consistently.
//
// # Error Codes
//
//   - INVALID_SPEED: negative, NaN or infinite wind speed
//   - INVALID_CONFIGURATION: non-positive canvas, radius, bar width, etc.
//   - INVALID_*: other input validation failures
//   - NOT_FOUND, NETWORK_ERROR: cache and service plumbing
//   - INTERNAL_ERROR, UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSpeed, "speed must be finite, got %v", v)
//	if errors.Is(err, errors.ErrCodeInvalidSpeed) {
//	    // reject the request
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Precondition failures of the render operation
	ErrCodeInvalidSpeed         Code = "INVALID_SPEED"
	ErrCodeInvalidConfiguration Code = "INVALID_CONFIGURATION"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeNetwork  Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsPrecondition reports whether err is one of the two render precondition
// failures (invalid speed or invalid configuration).
func IsPrecondition(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidSpeed, ErrCodeInvalidConfiguration:
		return true
	}
	return false
}
