// Package expr: sentinel error set.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context (offset, offending token) with %w.

package expr

import "errors"

// ErrSyntax indicates that the input text is not a well-formed algebraic
// expression (unexpected token, unbalanced parenthesis, dangling operator).
// The wrapped message carries the byte offset of the failure.
// Usage: if errors.Is(err, ErrSyntax) { /* reject the input string */ }.
var ErrSyntax = errors.New("expr: syntax error")

// ErrDivisionByZero indicates a literal division by zero ("1/0") or a
// zero denominator produced while folding numeric factors.
var ErrDivisionByZero = errors.New("expr: division by zero")

// ErrNonNumericDivisor indicates a division whose right-hand side is not
// a numeric literal. Polynomials are closed under +, -, * and integer
// powers only; dividing by a variable leaves the polynomial ring.
var ErrNonNumericDivisor = errors.New("expr: divisor must be numeric")

// ErrBadExponent indicates an exponent that is not a non-negative
// integer literal.
var ErrBadExponent = errors.New("expr: exponent must be a non-negative integer")
