// Package calculator evaluates a single binary arithmetic operation given as
// raw operand text and an operator symbol, and formats the result for display.
//
// Evaluation is pure: operands are validated, the operator is resolved, the
// divisor is checked, and the float64 result is rendered with at most ten
// fractional digits. Failures are returned as errors carrying an ErrorKind;
// presenting them is left to the caller.
//
//	res, err := calculator.Evaluate("6", "3", "/")
//	if kind, ok := calculator.KindOf(err); ok {
//		// show alert for kind
//	}
//	fmt.Println(res.Display) // "2"
package calculator
