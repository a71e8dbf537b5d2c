package calculator

import (
	"errors"
	"math"
	"strconv"
	"testing"

	mdwerror "github.com/msto63/pascal/foundation/core/error"
)

func TestValidateOperand(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"5", true},
		{"-3.25", true},
		{"0", true},
		{"1e3", true},
		{".5", true},
		{"", false},
		{"abc", false},
		{"1,5", false},
		{" 5", false},
		{"5 ", false},
		{"1.2.3", false},
		{"Inf", false},
		{"-inf", false},
		{"NaN", false},
		{"1e400", false},
		{"+", false},
		{"1_000", false},
		{"0x_1p0", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidateOperand(tt.input); got != tt.want {
				t.Errorf("ValidateOperand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluate_ExactArithmetic(t *testing.T) {
	operands := []string{"0", "1", "-7", "0.1", "0.2", "3.75", "1e10", "-2.5e-3", "123456789"}
	ops := []Operator{Add, Subtract, Multiply}

	for _, first := range operands {
		for _, second := range operands {
			for _, op := range ops {
				a, _ := strconv.ParseFloat(first, 64)
				b, _ := strconv.ParseFloat(second, 64)

				var want float64
				switch op {
				case Add:
					want = a + b
				case Subtract:
					want = a - b
				case Multiply:
					want = a * b
				}

				res, err := Evaluate(first, second, string(op))
				if err != nil {
					t.Fatalf("Evaluate(%q, %q, %q) error = %v", first, second, op, err)
				}
				if res.Value != want {
					t.Errorf("Evaluate(%q, %q, %q) = %v, want %v", first, second, op, res.Value, want)
				}
				if res.Display != FormatResult(want) {
					t.Errorf("Display = %q, want %q", res.Display, FormatResult(want))
				}
				if res.Operator != op {
					t.Errorf("Operator = %q, want %q", res.Operator, op)
				}
			}
		}
	}
}

func TestEvaluate_Division(t *testing.T) {
	tests := []struct {
		first, second string
		wantValue     float64
		wantDisplay   string
	}{
		{"6", "3", 2, "2"},
		{"1", "4", 0.25, "0.2500000000"},
		{"1", "3", 1.0 / 3.0, "0.3333333333..."},
		{"-6", "4", -1.5, "-1.5000000000"},
		{"0", "5", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.first+"/"+tt.second, func(t *testing.T) {
			res, err := Evaluate(tt.first, tt.second, "/")
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if res.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", res.Value, tt.wantValue)
			}
			if res.Display != tt.wantDisplay {
				t.Errorf("Display = %q, want %q", res.Display, tt.wantDisplay)
			}
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name                  string
		first, second, symbol string
		want                  ErrorKind
	}{
		{"non numeric first", "abc", "3", "+", InvalidOperand},
		{"empty second", "6", "", "-", InvalidOperand},
		{"both empty", "", "", "", InvalidOperand},
		{"infinite operand", "inf", "1", "*", InvalidOperand},
		{"digit separator", "1_000", "1", "+", InvalidOperand},
		// operand validation runs before operator resolution
		{"bad operand and operator", "x", "1", "%", InvalidOperand},
		{"bad operand and zero divisor", "x", "0", "/", InvalidOperand},
		{"no operator", "6", "3", "", MissingOperator},
		{"unknown operator", "6", "3", "%", MissingOperator},
		{"word operator", "6", "3", "plus", MissingOperator},
		{"operator with spaces", "6", "3", " + ", MissingOperator},
		// operator resolution runs before the divisor check
		{"missing operator zero divisor", "6", "0", "", MissingOperator},
		{"division by zero", "6", "0", "/", DivisionByZero},
		{"division by negative zero", "6", "-0", "/", DivisionByZero},
		{"division by zero float", "1.5", "0.0", "/", DivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.first, tt.second, tt.symbol)
			if err == nil {
				t.Fatalf("Evaluate() = %+v, want error", res)
			}
			kind, ok := KindOf(err)
			if !ok {
				t.Fatalf("KindOf(%v) not ok", err)
			}
			if kind != tt.want {
				t.Errorf("kind = %v, want %v", kind, tt.want)
			}
			if !IsKind(err, tt.want) {
				t.Errorf("IsKind(err, %v) = false", tt.want)
			}
			if mdwerror.GetSeverity(err) != mdwerror.SeverityLow {
				t.Errorf("severity = %v, want low", mdwerror.GetSeverity(err))
			}
			if res != (Result{}) {
				t.Errorf("result should be zero on error, got %+v", res)
			}
		})
	}
}

func TestEvaluate_ZeroDividendByNonZero(t *testing.T) {
	// only the divisor is guarded
	if _, err := Evaluate("0", "2", "/"); err != nil {
		t.Errorf("Evaluate(0, 2, /) error = %v", err)
	}
	// zero divisor is fine for other operators
	for _, op := range []string{"+", "-", "*"} {
		if _, err := Evaluate("6", "0", op); err != nil {
			t.Errorf("Evaluate(6, 0, %s) error = %v", op, err)
		}
	}
}

func TestEvaluate_Overflow(t *testing.T) {
	res, err := Evaluate("1e308", "10", "*")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !math.IsInf(res.Value, 1) {
		t.Errorf("Value = %v, want +Inf", res.Value)
	}
	if res.Display != "+Inf" {
		t.Errorf("Display = %q, want +Inf", res.Display)
	}
}

func TestEvaluate_EndToEnd(t *testing.T) {
	res, err := Evaluate("6", "3", "/")
	if err != nil {
		t.Fatalf("Evaluate(6, 3, /) error = %v", err)
	}
	if res.Value != 2 || FormatResult(res.Value) != "2" {
		t.Errorf("Evaluate(6, 3, /) = %+v, want 2", res)
	}

	if _, err := Evaluate("6", "0", "/"); !IsKind(err, DivisionByZero) {
		t.Errorf("Evaluate(6, 0, /) error = %v, want DivisionByZero", err)
	}
	if _, err := Evaluate("abc", "3", "+"); !IsKind(err, InvalidOperand) {
		t.Errorf("Evaluate(abc, 3, +) error = %v, want InvalidOperand", err)
	}
}

func TestEvaluate_RejectionAllocations(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = Evaluate("6", "0", "/")
	})
	// rejections are user input; building the error must stay cheap
	if allocs > 6 {
		t.Errorf("Evaluate(6, 0, /) allocations = %v, want at most 6", allocs)
	}
}

func TestKindOf_ForeignErrors(t *testing.T) {
	if _, ok := KindOf(nil); ok {
		t.Error("KindOf(nil) should not be ok")
	}
	if _, ok := KindOf(errors.New("other")); ok {
		t.Error("KindOf(plain error) should not be ok")
	}
	if _, ok := KindOf(mdwerror.New("x").WithCode(mdwerror.CodeInternal)); ok {
		t.Error("KindOf(internal error) should not be ok")
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	_, err := Evaluate("6", "0", "/")
	wrapped := mdwerror.Wrap(err, "gateway")

	if !IsKind(wrapped, DivisionByZero) {
		t.Error("kind should survive wrapping")
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
		code mdwerror.Code
	}{
		{InvalidOperand, "InvalidOperand", mdwerror.CodeInvalidOperand},
		{MissingOperator, "MissingOperator", mdwerror.CodeMissingOperator},
		{DivisionByZero, "DivisionByZero", mdwerror.CodeDivisionByZero},
		{ErrorKind(0), "Unknown", mdwerror.CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if tt.kind.String() != tt.want {
				t.Errorf("String() = %v, want %v", tt.kind.String(), tt.want)
			}
			if tt.kind.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.kind.Code(), tt.code)
			}
		})
	}
}
