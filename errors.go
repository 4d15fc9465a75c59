package procalc

import "strconv"

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "identifier", or the empty string (if a token kind hadn't been decided).
	// Identifiers are always invalid; the grammar has no names.
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// DisallowedOperatorError is an error indicating an operator that is outside
// the fixed allow-list. The parser produces it for operator tokens with no
// arithmetic meaning, and the reducer produces it for any node kind it has no
// operation for. It implements InputError.
type DisallowedOperatorError struct {
	// Col is the position of the operator. It is zero when the operator was
	// rejected during reduction rather than parsing.
	Col int
	// Operator is the operator spelling.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *DisallowedOperatorError) Error() string {
	s := "operator " + strconv.Quote(err.Operator) + " not allowed"
	if err.Unary {
		s = "unary " + s
	}
	if err.Col <= 0 {
		return s
	}
	return errpos(err.Col, s)
}

func (err *DisallowedOperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the bracket.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression, e.g.
// an expression that ends just after an operator. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// EmptyInputError is an error indicating input with no tokens at all. It is
// distinct from EmptyExpressionError so that callers can tell "the user
// hasn't typed anything" from "the expression ends too early". It implements
// InputError.
type EmptyInputError struct{}

func (err *EmptyInputError) Error() string {
	return "empty expression"
}

func (err *EmptyInputError) Pos() int {
	return 1
}

// NumericFaultError is an error indicating an arithmetic fault: division or
// modulus by zero, overflow, or an operation outside its domain.
type NumericFaultError struct {
	// Op is the operator spelling. It is empty for a literal that overflows
	// float64.
	Op string
	// X and Y are the operand values. Y is meaningful only for binary
	// operators.
	X, Y float64
}

func (err *NumericFaultError) Error() string {
	g := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	switch {
	case err.Op == "/" && err.Y == 0:
		return "division by zero"
	case err.Op == "%" && err.Y == 0:
		return "modulus by zero"
	case err.Op == "":
		return "value out of range: " + g(err.X)
	default:
		return "numeric fault: " + g(err.X) + " " + err.Op + " " + g(err.Y) + " is not finite"
	}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*DisallowedOperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*EmptyInputError)(nil)
)
