// Package presenter turns evaluation failures into user-facing alerts.
package presenter

import "github.com/msto63/pascal/internal/pascal/calculator"

// Alert is the title and message pair shown for a failed evaluation
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// String renders the alert as "Title: Message"
func (a Alert) String() string {
	return a.Title + ": " + a.Message
}

var alerts = map[calculator.ErrorKind]Alert{
	calculator.InvalidOperand:  {Title: "Input Error", Message: "Enter valid numbers."},
	calculator.MissingOperator: {Title: "Operator Error", Message: "Select an operator."},
	calculator.DivisionByZero:  {Title: "Operation Error", Message: "Cannot divide by zero."},
}

// AlertFor returns the alert for kind. Unknown kinds get a generic alert.
func AlertFor(kind calculator.ErrorKind) Alert {
	if alert, ok := alerts[kind]; ok {
		return alert
	}
	return Alert{Title: "Error", Message: "Calculation failed."}
}

// AlertForError returns the alert for an error returned by calculator.Evaluate.
// ok is false if err does not carry an evaluation error kind.
func AlertForError(err error) (Alert, bool) {
	kind, ok := calculator.KindOf(err)
	if !ok {
		return Alert{}, false
	}
	return AlertFor(kind), true
}
