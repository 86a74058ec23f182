package polytope

import (
	"fmt"

	"github.com/katalvlaran/lattix/expr"
)

// Kind discriminates the active variant of a Specification.
type Kind int

const (
	// KindRawCode is a single opaque code string passed to the tool
	// verbatim (after the header it already carries).
	KindRawCode Kind = iota + 1

	// KindVertexList is an ordered sequence of integer coordinate tuples
	// (V-representation). All tuples must share one dimension.
	KindVertexList

	// KindConstraints is an ordered sequence of raw inequality strings,
	// each linear over named variables.
	KindConstraints

	// KindLinearSystem is an already-parsed sequence of linear
	// expressions, each meaning "expression <= 0". It feeds the matrix
	// builder directly, bypassing string parsing.
	KindLinearSystem
)

// String returns the variant name, for logs and error context.
func (k Kind) String() string {
	switch k {
	case KindRawCode:
		return "raw-code"
	case KindVertexList:
		return "vertex-list"
	case KindConstraints:
		return "constraints"
	case KindLinearSystem:
		return "linear-system"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Specification is a tagged union over the accepted polytope input
// forms. Exactly one variant is active; construct values only through
// RawCode, Vertices, Halfspaces, Constraints or LinearSystem.
type Specification struct {
	kind     Kind
	code     string       // KindRawCode
	vertices [][]int64    // KindVertexList
	exprs    []string     // KindConstraints
	rows     []*expr.Poly // KindLinearSystem
}

// RawCode wraps an already-formatted code string. The text is passed to
// the external tool verbatim; no validation is performed here.
func RawCode(text string) Specification {
	return Specification{kind: KindRawCode, code: text}
}

// Vertices wraps an ordered vertex list. Dimension consistency is
// validated later by VertexMatrix, before any matrix is built.
func Vertices(points [][]int64) Specification {
	return Specification{kind: KindVertexList, vertices: points}
}

// Constraints wraps raw symbolic inequality strings, e.g.
//
//	polytope.Constraints("x + y <= 10", "x >= 1", "y >= 1")
func Constraints(exprs ...string) Specification {
	return Specification{kind: KindConstraints, exprs: exprs}
}

// LinearSystem wraps already-parsed linear expressions, each understood
// as "expression <= 0". Equality rows are not expressible through this
// constructor; use Constraints with "==" for those.
func LinearSystem(rows ...*expr.Poly) Specification {
	return Specification{kind: KindLinearSystem, rows: rows}
}

// Halfspaces encodes the H-representation A·x <= b directly into tool
// code, row i = [b_i, -A_i], and returns it as a raw-code
// specification. Classification steps after the A/b form never see it
// again, matching the documented decision order.
func Halfspaces(a [][]int64, b []int64) (Specification, error) {
	if len(a) == 0 {
		return Specification{}, fmt.Errorf("Halfspaces: empty matrix: %w", ErrEmptySpecification)
	}
	if len(a) != len(b) {
		return Specification{}, fmt.Errorf("Halfspaces: %d rows vs %d bounds: %w", len(a), len(b), ErrShapeMismatch)
	}
	cols := len(a[0])
	rows := make([][]expr.Rational, len(a))
	for i, ai := range a {
		if len(ai) != cols {
			return Specification{}, fmt.Errorf("Halfspaces: row %d has %d columns, want %d: %w", i, len(ai), cols, ErrShapeMismatch)
		}
		row := make([]expr.Rational, 0, cols+1)
		row = append(row, expr.NewInt(b[i]))
		for _, v := range ai {
			row = append(row, expr.NewInt(-v))
		}
		rows[i] = row
	}
	m := &Matrix{rows: rows}
	return RawCode(m.Code()), nil
}

// Kind returns the active variant.
func (s Specification) Kind() Kind { return s.kind }

// Code returns the raw code text (KindRawCode only; empty otherwise).
func (s Specification) Code() string { return s.code }

// Vertices returns the vertex list (KindVertexList only; nil otherwise).
func (s Specification) Vertices() [][]int64 { return s.vertices }

// ConstraintStrings returns the raw inequality strings (KindConstraints
// only; nil otherwise).
func (s Specification) ConstraintStrings() []string { return s.exprs }

// Rows returns the parsed linear expressions (KindLinearSystem only).
func (s Specification) Rows() []*expr.Poly { return s.rows }
