// ============================================================================
// Pascal - Rechenservice
// ============================================================================
//
// Package:     version
// Description: Central version management for the service and its tools
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Pascal  = "1.0.0"
	Gateway = "1.0.0"
	CLI     = "1.0.0"
)

// Build information, set via -ldflags
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ServiceVersion returns the version for a given component name
func ServiceVersion(name string) string {
	switch name {
	case "pascal":
		return Pascal
	case "gateway":
		return Gateway
	case "pcalc":
		return CLI
	default:
		return Platform
	}
}
