package calculator

// Operator is one of the four supported arithmetic operator symbols
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

var operators = []Operator{Add, Subtract, Multiply, Divide}

// Operators returns the supported operators in display order
func Operators() []Operator {
	out := make([]Operator, len(operators))
	copy(out, operators)
	return out
}

// ParseOperator resolves a symbol to an Operator
func ParseOperator(symbol string) (Operator, bool) {
	switch op := Operator(symbol); op {
	case Add, Subtract, Multiply, Divide:
		return op, true
	default:
		return "", false
	}
}

// Symbol returns the operator symbol
func (o Operator) Symbol() string {
	return string(o)
}

// Name returns the spoken name of the operator
func (o Operator) Name() string {
	switch o {
	case Add:
		return "plus"
	case Subtract:
		return "minus"
	case Multiply:
		return "times"
	case Divide:
		return "divided by"
	default:
		return "unknown"
	}
}

// Apply computes a <o> b. Division by zero must be rejected by the caller.
func (o Operator) Apply(a, b float64) float64 {
	switch o {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	default:
		panic("calculator: apply on unknown operator " + string(o))
	}
}
