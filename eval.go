package procalc

import (
	"io"
	"math"
	"strings"
)

// binops and unops are the allow-lists of executable operations. The reducer
// dispatches exclusively through them, so a node kind that is absent here is
// rejected rather than executed, no matter what the parser produced. This is
// deliberately a second gate on top of the grammar: extending the parser with
// a new operator does not make that operator executable.
var (
	binops = map[nodeKind]func(l, r float64) float64{
		nodeAdd: func(l, r float64) float64 { return l + r },
		nodeSub: func(l, r float64) float64 { return l - r },
		nodeMul: func(l, r float64) float64 { return l * r },
		nodeDiv: func(l, r float64) float64 { return l / r },
		nodeMod: math.Mod,
		nodePow: math.Pow,
	}
	unops = map[nodeKind]func(x float64) float64{
		nodeNeg: func(x float64) float64 { return -x },
		nodeNop: func(x float64) float64 { return x },
	}
)

// eval reduces the tree rooted at n to a value.
func (n *node) eval() (float64, error) {
	if n.kind == nodeNum {
		// A literal like 1e999 parses but overflows float64.
		if math.IsInf(n.val, 0) || math.IsNaN(n.val) {
			return 0, &NumericFaultError{X: n.val}
		}
		return n.val, nil
	}
	if fn, ok := binops[n.kind]; ok {
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		if (n.kind == nodeDiv || n.kind == nodeMod) && r == 0 {
			return 0, &NumericFaultError{Op: n.kind.symbol(), X: l, Y: r}
		}
		v := fn(l, r)
		// Operands are finite here, so a non-finite result means overflow
		// or an operation outside its domain, e.g. (-2)^0.5.
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, &NumericFaultError{Op: n.kind.symbol(), X: l, Y: r}
		}
		return v, nil
	}
	if fn, ok := unops[n.kind]; ok {
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return fn(x), nil
	}
	return 0, &DisallowedOperatorError{Operator: n.kind.symbol()}
}

// Eval evaluates the parsed expression and returns the result. Evaluation is
// pure; it is safe to evaluate the same Expr any number of times, from any
// number of goroutines.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// Eval is a shortcut to parse an expression and evaluate it.
func Eval(src io.RuneScanner, opts ...ParseOption) (float64, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
