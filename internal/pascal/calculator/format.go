package calculator

import (
	"math"
	"strconv"
	"strings"
)

const (
	// renderDigits is the precision inspected before truncation
	renderDigits = 15
	// MaxFractionDigits is the longest fractional part shown
	MaxFractionDigits = 10
	// TruncationMarker is appended when fractional digits were dropped
	TruncationMarker = "..."
)

// FormatResult renders value for display.
//
// Integral values have no decimals. Otherwise the value is rendered with 15
// fractional digits; if more than ten significant ones remain the first ten
// are kept followed by "...", else the value is shown with exactly ten.
func FormatResult(value float64) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	if math.Mod(value, 1) == 0 {
		if value == 0 {
			// avoid "-0"
			return "0"
		}
		return strconv.FormatFloat(value, 'f', 0, 64)
	}

	rendered := strconv.FormatFloat(value, 'f', renderDigits, 64)
	intPart, fraction, _ := strings.Cut(rendered, ".")
	fraction = strings.TrimRight(fraction, "0")

	if len(fraction) > MaxFractionDigits {
		return intPart + "." + fraction[:MaxFractionDigits] + TruncationMarker
	}
	return strconv.FormatFloat(value, 'f', MaxFractionDigits, 64)
}
