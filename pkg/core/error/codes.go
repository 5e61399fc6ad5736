// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across mAT. The codes separate the three
//              caller-visible outcomes of the domain boundary (unknown domain,
//              parse failure, internal defect) from infrastructure errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the mAT platform
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Domain dispatch
	CodeUnknownDomain Code = "UNKNOWN_DOMAIN"

	// Algebra core
	CodeParseFailure       Code = "PARSE_FAILURE"
	CodeInvariantViolation Code = "INVARIANT_VIOLATION"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Configuration
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsValid checks whether the code is one of the defined mAT codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeUnknownDomain, CodeParseFailure, CodeInvariantViolation,
		CodeDatabaseError, CodeConfigError:
		return true
	default:
		return false
	}
}
