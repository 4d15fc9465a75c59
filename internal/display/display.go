// Package display renders evaluation results the way the calculator
// display shows them.
package display

import (
	"math"
	"strconv"
	"strings"
)

// Result formats an evaluation result. Integral values render without a
// decimal point; fractional values render with six decimals and trailing
// zeros trimmed.
func Result(x float64) string {
	if x == 0 {
		// Avoid rendering negative zero.
		return "0"
	}
	if x == math.Trunc(x) {
		return strconv.FormatFloat(x, 'f', 0, 64)
	}
	s := strconv.FormatFloat(x, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
