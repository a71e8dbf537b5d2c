// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification used to pick log levels and alerting
//              behaviour for structured errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers expected, user-driven conditions such as bad input
	SeverityLow Severity = iota

	// SeverityMedium covers errors that affect a request but not the service
	SeverityMedium

	// SeverityHigh covers failures of a dependency or of initialization
	SeverityHigh

	// SeverityCritical makes the service unusable
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

// ShouldAlert reports whether an operator should be notified
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode returns the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeServiceUnavailable:
		return SeverityCritical
	case CodeServiceInitialization, CodeNetworkError, CodeConfigError,
		CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeInvalidOperand, CodeMissingOperator, CodeDivisionByZero:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
