package calculator

import (
	"errors"

	mdwerror "github.com/msto63/pascal/foundation/core/error"
)

// ErrorKind classifies why an evaluation failed
type ErrorKind int

const (
	// InvalidOperand: an operand is empty, non-numeric, or not finite
	InvalidOperand ErrorKind = iota + 1
	// MissingOperator: no operator, or a symbol outside + - * /
	MissingOperator
	// DivisionByZero: operator / with a divisor equal to 0
	DivisionByZero
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case InvalidOperand:
		return "InvalidOperand"
	case MissingOperator:
		return "MissingOperator"
	case DivisionByZero:
		return "DivisionByZero"
	default:
		return "Unknown"
	}
}

// Code returns the error code carried by errors of this kind
func (k ErrorKind) Code() mdwerror.Code {
	switch k {
	case InvalidOperand:
		return mdwerror.CodeInvalidOperand
	case MissingOperator:
		return mdwerror.CodeMissingOperator
	case DivisionByZero:
		return mdwerror.CodeDivisionByZero
	default:
		return mdwerror.CodeUnknown
	}
}

// KindFromCode maps an error code back to its kind
func KindFromCode(code mdwerror.Code) (ErrorKind, bool) {
	switch code {
	case mdwerror.CodeInvalidOperand:
		return InvalidOperand, true
	case mdwerror.CodeMissingOperator:
		return MissingOperator, true
	case mdwerror.CodeDivisionByZero:
		return DivisionByZero, true
	default:
		return 0, false
	}
}

// KindOf returns the kind of an error returned by Evaluate. ok is false for
// nil and for errors that did not originate from evaluation.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		return 0, false
	}
	return KindFromCode(mdwErr.Code())
}

// IsKind reports whether err is an evaluation error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}

func newError(kind ErrorKind, message string) *mdwerror.Error {
	return mdwerror.New(message).
		WithCode(kind.Code()).
		WithSeverity(mdwerror.SeverityLow).
		WithOperation("calculator.Evaluate")
}
