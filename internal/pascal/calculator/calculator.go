package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Result is a successful evaluation
type Result struct {
	Operator Operator
	Value    float64
	Display  string
}

// ValidateOperand reports whether text is a non-empty, finite float64
func ValidateOperand(text string) bool {
	_, ok := parseOperand(text)
	return ok
}

func parseOperand(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	// ParseFloat accepts Go digit separators; plain decimal input does not
	if strings.Contains(text, "_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Evaluate applies symbol to the two operands.
//
// Checks run in order: both operands must be valid (InvalidOperand), the
// symbol must be one of + - * / (MissingOperator), and a division needs a
// non-zero divisor (DivisionByZero).
func Evaluate(first, second, symbol string) (Result, error) {
	a, okA := parseOperand(first)
	b, okB := parseOperand(second)
	if !okA || !okB {
		err := newError(InvalidOperand, "operands must be finite numbers")
		if !okA {
			err.WithDetail("first", first)
		}
		if !okB {
			err.WithDetail("second", second)
		}
		return Result{}, err
	}

	op, ok := ParseOperator(symbol)
	if !ok {
		return Result{}, newError(MissingOperator, "no operator selected").
			WithDetail("operator", symbol)
	}

	if op == Divide && b == 0 {
		return Result{}, newError(DivisionByZero, "cannot divide by zero").
			WithDetail("second", second)
	}

	value := op.Apply(a, b)
	return Result{
		Operator: op,
		Value:    value,
		Display:  FormatResult(value),
	}, nil
}
