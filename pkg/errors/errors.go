// Package errors provides structured error types for dot2pst.
//
// Every failure of a conversion run is reported as an [*Error] carrying a
// machine-readable [Code]. Errors raised while reading the input also carry
// the 1-based line number and the raw line text, so the CLI can point the
// user at the offending input.
//
// # Error Codes
//
//   - INVALID_FORMAT: a line does not have the expected token layout
//   - INVALID_VALUE: an identifier or coordinate token is not a valid value
//   - UNKNOWN_REFERENCE: an edge names a node that was never declared
//   - DUPLICATE_NODE: two node lines declare the same id
//   - IO_ERROR: a file cannot be opened, created, or written
//   - INVALID_CONFIG / INVALID_INPUT: bad configuration or CLI arguments
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidValue, "bad node id %q", tok).At(12, line)
//	if errors.Is(err, errors.ErrCodeInvalidValue) {
//	    // Handle value error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input format errors
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidValue     Code = "INVALID_VALUE"
	ErrCodeUnknownReference Code = "UNKNOWN_REFERENCE"
	ErrCodeDuplicateNode    Code = "DUPLICATE_NODE"

	// Environment errors
	ErrCodeIO Code = "IO_ERROR"

	// Usage errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code, optional input position and cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Line    int    // 1-based input line, 0 when not tied to a line
	Text    string // Raw input line (only meaningful when Line > 0)
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Line > 0 {
		msg = fmt.Sprintf("%s: line %d: %s (%q)", e.Code, e.Line, e.Message, e.Text)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// At records the input line the error was raised on and returns e.
func (e *Error) At(line int, text string) *Error {
	e.Line = line
	e.Text = text
	return e
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
// For *Error types, returns the message prefixed with the input line when
// one is known. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		msg := e.Message
		if e.Cause != nil {
			msg += ": " + e.Cause.Error()
		}
		if e.Line > 0 {
			return fmt.Sprintf("line %d: %s", e.Line, msg)
		}
		return msg
	}
	return err.Error()
}
