// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify errors across the
//              Pascal service: generic infrastructure codes plus the
//              calculator codes returned by expression evaluation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Calculator codes, trimmed platform codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Service and network
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"
	CodeNetworkError          Code = "NETWORK_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Calculator
	CodeInvalidOperand  Code = "INVALID_OPERAND"
	CodeMissingOperator Code = "MISSING_OPERATOR"
	CodeDivisionByZero  Code = "DIVISION_BY_ZERO"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeServiceUnavailable, CodeServiceInitialization, CodeNetworkError:
		return "service"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidOperand, CodeMissingOperator, CodeDivisionByZero:
		return "calculation"
	default:
		return "generic"
	}
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidInput:
		return 400
	case CodeInvalidOperand, CodeMissingOperator, CodeDivisionByZero:
		return 422
	case CodeTimeout:
		return 408
	case CodeServiceUnavailable, CodeNetworkError:
		return 503
	default:
		return 500
	}
}
