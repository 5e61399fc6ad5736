// ============================================================================
// meinALGEBRATRAINER (mAT) - Deterministischer Algebra-Tutor
// ============================================================================
//
// Package:     version
// Description: Central version management for the mAT platform
// Author:      Mike Stoffels
// Created:     2025-11-02
// License:     MIT
// ============================================================================

package version

// Version constants for the mAT platform
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Core = "0.1.0"
	CLI  = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "core":
		return Core
	case "cli":
		return CLI
	default:
		return Platform
	}
}
