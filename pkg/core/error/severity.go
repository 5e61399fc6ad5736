// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so the CLI and logs can
//              prioritize what to surface. Caller mistakes (bad input, unknown
//              domain) stay low, internal invariant violations are critical.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed equation text, unknown domain name
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: problem bank unavailable, config file unreadable
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: storage corruption, failed schema migration
	SeverityHigh

	// SeverityCritical indicates a defect in mAT itself
	// Examples: a rewrite rule produced an invalid tree, canonical round trip failed
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
