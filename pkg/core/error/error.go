// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with code, severity, and
//              contextual details. The type keeps compatibility with Go's
//              standard error interface (Error, Unwrap) so it composes with
//              errors.Is/errors.As throughout the codebase.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation with contextual errors

package error

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"
)

// Error represents a structured error with code, severity, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve code and severity of an already-structured cause
	if matErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     matErr,
			code:      matErr.code,
			severity:  matErr.severity,
			timestamp: time.Now(),
			details:   make(map[string]interface{}),
		}
		for k, v := range matErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and returns the error for chaining
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithSeverity sets the severity and returns the error for chaining
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a contextual detail and returns the error for chaining
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Detail returns a contextual detail by key
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Timestamp returns the creation time of the error
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// MarshalJSON renders the error as a structured JSON object
func (e *Error) MarshalJSON() ([]byte, error) {
	payload := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
	}
	if len(e.details) > 0 {
		payload["details"] = e.details
	}
	if e.cause != nil {
		payload["cause"] = e.cause.Error()
	}
	return json.Marshal(payload)
}

// GetCode extracts the error code from any error in the chain.
// Returns CodeUnknown for plain errors and nil errors.
func GetCode(err error) Code {
	var matErr *Error
	if stderrors.As(err, &matErr) {
		return matErr.code
	}
	return CodeUnknown
}

// HasCode checks whether any error in the chain carries the given code
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}
