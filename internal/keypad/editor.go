package keypad

import (
	"strconv"
	"strings"

	"github.com/procalc/procalc/internal/display"
)

// operators are the runes the editor treats as binary operators when
// deciding whether to replace a trailing operator or to refuse a leading
// one. The editor only ever inserts ASCII spellings; the evaluator maps
// them to operations.
const operators = "+-*/%^"

func isDigit(r byte) bool {
	return '0' <= r && r <= '9'
}

// appendChar appends a digit or decimal point to the expression. A second
// point within the same number is ignored.
func appendChar(expr string, ch byte) string {
	if ch == '.' {
		for i := len(expr) - 1; i >= 0; i-- {
			if expr[i] == '.' {
				return expr
			}
			if !isDigit(expr[i]) {
				break
			}
		}
	}
	return expr + string(ch)
}

// appendOperator appends a binary operator. A trailing operator is replaced
// rather than stacked, and only - may start an expression (as a sign).
func appendOperator(expr string, op byte) string {
	if expr == "" && op != '-' {
		return expr
	}
	if expr != "" && strings.IndexByte(operators, expr[len(expr)-1]) >= 0 {
		expr = expr[:len(expr)-1]
		if expr == "" && op != '-' {
			return expr
		}
	}
	return expr + string(op)
}

// backspace removes the last character of the expression.
func backspace(expr string) string {
	if expr == "" {
		return ""
	}
	return expr[:len(expr)-1]
}

// trailingNumber finds the start of the number the expression ends with,
// including a sign that isn't a binary operator. It returns len(expr) when
// the expression does not end with a number.
func trailingNumber(expr string) int {
	i := len(expr)
	for i > 0 && (isDigit(expr[i-1]) || expr[i-1] == '.') {
		i--
	}
	if i == len(expr) {
		return i
	}
	// A - directly before the number is a sign when it starts the
	// expression or follows another operator or an open bracket.
	if i > 0 && expr[i-1] == '-' {
		if i == 1 || strings.IndexByte(operators+"([{", expr[i-2]) >= 0 {
			i--
		}
	}
	return i
}

// toggleSign negates the number the expression ends with.
func toggleSign(expr string) string {
	i := trailingNumber(expr)
	if i == len(expr) {
		return expr
	}
	if expr[i] == '-' {
		return expr[:i] + expr[i+1:]
	}
	return expr[:i] + "-" + expr[i:]
}

// percent divides the number the expression ends with by 100.
func percent(expr string) string {
	i := trailingNumber(expr)
	if i == len(expr) {
		return expr
	}
	v, err := strconv.ParseFloat(expr[i:], 64)
	if err != nil {
		return expr
	}
	return expr[:i] + display.Result(v/100)
}
