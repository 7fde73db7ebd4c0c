package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig     = "CONFIG"
	ErrTransport  = "TRANSPORT"  // request never completed (network unreachable, timeout)
	ErrStatus     = "STATUS"     // request completed with a non-2xx status
	ErrNotImpl    = "NOTIMPL"    // operation deliberately unsupported
	ErrValidation = "VALIDATION" // bad user input, caught before any network call
)

// Error represents a structured error with code, message, suggestion, and optional cause.
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrTransport code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrTransport,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewNotImplemented creates an error for operations the health API does not support.
func NewNotImplemented(operation string) *Error {
	return &Error{
		Code:       ErrNotImpl,
		Message:    fmt.Sprintf("'%s' is not supported by the health API", operation),
		Suggestion: "Delete and recreate the record instead",
	}
}

// NewValidation creates an error for a missing or malformed user-input field.
func NewValidation(field, reason string) *Error {
	return &Error{
		Code:       ErrValidation,
		Message:    fmt.Sprintf("%s %s", field, reason),
		Suggestion: "Fix the field and try again",
	}
}

// Error implements the error interface with formatted output.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var adErr *Error
	if errors.As(err, &adErr) {
		return adErr.Code == code
	}
	return false
}

// Summary returns a single-line form of the error without the symbol or
// suggestion, suitable for the dashboard banner and form-local display.
func Summary(err error) string {
	if err == nil {
		return ""
	}
	var adErr *Error
	if errors.As(err, &adErr) {
		if adErr.Cause != nil {
			return fmt.Sprintf("%s: %s", adErr.Message, adErr.Cause.Error())
		}
		return adErr.Message
	}
	return err.Error()
}
