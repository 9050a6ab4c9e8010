// Package errors provides structured error types for the Warevis application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The layout engine surfaces three deterministic error kinds:
//   - UNSUPPORTED_UNIT: a length/weight unit string is outside the conversion table
//   - INSUFFICIENT_SPACE: a computed slot size is zero or negative
//   - MALFORMED_CONFIG: a structural mismatch in the warehouse configuration
//
// None of these are retryable - they are pure functions of the input, so the
// only remedy is a corrected configuration.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsupportedUnit, "unknown unit: %q", unit)
//	if errors.Is(err, errors.ErrCodeUnsupportedUnit) {
//	    // Handle unit error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "store warehouse %s", id)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Layout engine errors
	ErrCodeUnsupportedUnit   Code = "UNSUPPORTED_UNIT"
	ErrCodeInsufficientSpace Code = "INSUFFICIENT_SPACE"
	ErrCodeMalformedConfig   Code = "MALFORMED_CONFIG"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound          Code = "NOT_FOUND"
	ErrCodeWarehouseNotFound Code = "WAREHOUSE_NOT_FOUND"

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

// IsLayoutError reports whether err is one of the three deterministic error
// kinds the layout engine surfaces. ValidateLayout converts exactly these
// into a {valid:false, message} result instead of propagating.
func IsLayoutError(err error) bool {
	switch GetCode(err) {
	case ErrCodeUnsupportedUnit, ErrCodeInsufficientSpace, ErrCodeMalformedConfig:
		return true
	}
	return false
}
