// Package procalc implements a restricted arithmetic-expression evaluator.
//
// An expression is parsed into a tree whose nodes are number literals,
// binary operators, and unary signs, then reduced bottom-up through a fixed
// allow-list of float64 operations. Nothing in the package evaluates input
// as code, and a node kind outside the allow-list is rejected rather than
// executed, so adversarial input can at worst produce an error.
//
// The grammar covers numbers, the operators + - * / % ^ (with ** accepted
// for ^, and × ÷ − accepted as aliases), unary +/-, and matched brackets.
// Precedence is the usual one: ^ binds tightest and is right-associative,
// then unary sign, then * / %, then + -.
//
// Errors are typed. Callers that need to distinguish failure modes check
// for *EmptyInputError, *DisallowedOperatorError, *NumericFaultError, and
// treat the remaining InputError implementations as syntax errors.
package procalc
