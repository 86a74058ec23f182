package polytope

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lattix/expr"
)

// relational operators, in detection priority order. Two-character
// operators come first so "x >= 1" is never mistaken for "x = 1".
var relOps = []string{" >= ", " <= ", " == ", " = "}

// ParsedConstraint is one interpreted symbolic constraint: a linear
// expression understood to mean "Expr <= 0" (or "= 0" when Equality is
// set).
type ParsedConstraint struct {
	Expr     *expr.Poly
	Equality bool
}

// System is an ordered sequence of parsed constraints. Row order is
// significant: the 1-based linearity indices reference it.
type System struct {
	Rows []ParsedConstraint
}

// Linearity returns the 1-based indices of equality rows, in row order.
func (s *System) Linearity() []int {
	var idx []int
	for i, r := range s.Rows {
		if r.Equality {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// ParseConstraints interprets each string as a single linear
// (in)equality over named variables and rewrites it into "expr <= 0"
// form:
//
//	"L >= R"          → R - L <= 0
//	"L <= R"          → L - R <= 0
//	"L == R", "L = R" → L - R <= 0, row recorded as an equality
//
// A string with zero or more than one relational operator fails with
// ErrMalformedInequality. Side expressions are parsed by expr.Parse;
// linearity is enforced later by BuildMatrix so that the non-linear
// error can name the offending row.
func ParseConstraints(exprs []string) (*System, error) {
	if len(exprs) == 0 {
		return nil, fmt.Errorf("ParseConstraints: %w", ErrEmptySpecification)
	}

	sys := &System{Rows: make([]ParsedConstraint, 0, len(exprs))}
	for i, raw := range exprs {
		pc, err := parseOne(raw)
		if err != nil {
			return nil, fmt.Errorf("constraint %d (%q): %w", i+1, raw, err)
		}
		sys.Rows = append(sys.Rows, pc)
	}
	return sys, nil
}

// parseOne splits a single constraint string and rewrites its sides.
func parseOne(raw string) (ParsedConstraint, error) {
	if n := countRelOps(raw); n != 1 {
		return ParsedConstraint{}, fmt.Errorf("%d relational operators: %w", n, ErrMalformedInequality)
	}

	for _, op := range relOps {
		if !strings.Contains(raw, op) {
			continue
		}
		parts := strings.SplitN(raw, op, 2)
		left, err := expr.Parse(parts[0])
		if err != nil {
			return ParsedConstraint{}, fmt.Errorf("left side: %w", err)
		}
		right, err := expr.Parse(parts[1])
		if err != nil {
			return ParsedConstraint{}, fmt.Errorf("right side: %w", err)
		}

		switch op {
		case " >= ":
			// L >= R  ⇔  R - L <= 0
			return ParsedConstraint{Expr: expr.Sub(right, left)}, nil
		case " <= ":
			return ParsedConstraint{Expr: expr.Sub(left, right)}, nil
		default: // " == ", " = "
			return ParsedConstraint{Expr: expr.Sub(left, right), Equality: true}, nil
		}
	}
	return ParsedConstraint{}, ErrMalformedInequality // unreachable: countRelOps == 1
}

// countRelOps counts relational operator occurrences. The four patterns
// cannot overlap each other in well-formed text, so a plain sum is an
// exact count.
func countRelOps(s string) int {
	n := 0
	for _, op := range relOps {
		n += strings.Count(s, op)
	}
	return n
}
