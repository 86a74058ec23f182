package polytope

import (
	"fmt"

	"github.com/katalvlaran/lattix/expr"
)

// Matrix is the canonical coefficient matrix consumed by the code
// emitter: one row per constraint (or vertex), one column for the
// constant/homogenizing term followed by one column per variable.
//
// Column order is the constant first, then variables in first-seen
// order across all constraints. Row order preserves input order, which
// matters because linearity indices are 1-based row references.
type Matrix struct {
	rows      [][]expr.Rational
	vars      []string // column order after the constant column
	linearity []int    // 1-based equality row indices, ascending
}

// RowCount returns the number of rows.
func (m *Matrix) RowCount() int { return len(m.rows) }

// ColCount returns the number of columns (constant column included).
func (m *Matrix) ColCount() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}

// At returns the entry at (i, j). Panics on out-of-range indices
// (programmer error; the builder never produces ragged rows).
func (m *Matrix) At(i, j int) expr.Rational { return m.rows[i][j] }

// Vars returns the variable column order (constant column excluded).
func (m *Matrix) Vars() []string {
	out := make([]string, len(m.vars))
	copy(out, m.vars)
	return out
}

// Linearity returns the 1-based equality row indices.
func (m *Matrix) Linearity() []int {
	out := make([]int, len(m.linearity))
	copy(out, m.linearity)
	return out
}

// BuildMatrix converts a parsed constraint system into the tool's
// numeric form.
//
// The tool expects a system A·x <= b as rows [b_i, -A_i]. Internally
// each row is stored as "expr <= 0", i.e. A_i·x - b_i <= 0, so the
// emitted row is the negation of the stored coefficients:
//
//	row_i = [-const_i, -coeff_i(v_1), …, -coeff_i(v_n)]
//
// Any row of degree > 1 fails with ErrNonLinearConstraint before any
// output is produced.
func BuildMatrix(sys *System) (*Matrix, error) {
	if sys == nil || len(sys.Rows) == 0 {
		return nil, fmt.Errorf("BuildMatrix: %w", ErrEmptySpecification)
	}

	// Fix the deterministic column order: variables in first-seen order
	// across the whole sequence.
	var vars []string
	seen := make(map[string]bool)
	for _, r := range sys.Rows {
		for _, v := range r.Expr.Vars() {
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
	}

	rows := make([][]expr.Rational, 0, len(sys.Rows))
	for i, r := range sys.Rows {
		if !r.Expr.IsLinear() {
			return nil, fmt.Errorf("BuildMatrix: row %d (%s): %w", i+1, r.Expr, ErrNonLinearConstraint)
		}
		row := make([]expr.Rational, 0, len(vars)+1)
		row = append(row, r.Expr.Constant().Neg())
		for _, v := range vars {
			row = append(row, r.Expr.Coeff(v).Neg())
		}
		rows = append(rows, row)
	}

	return &Matrix{rows: rows, vars: vars, linearity: sys.Linearity()}, nil
}

// BuildFromRows wraps bare linear expressions (each meaning
// "expr <= 0") and builds the matrix; this is the classifier's
// step-six path for already-parsed systems.
func BuildFromRows(rows []*expr.Poly) (*Matrix, error) {
	sys := &System{Rows: make([]ParsedConstraint, len(rows))}
	for i, r := range rows {
		sys.Rows[i] = ParsedConstraint{Expr: r}
	}
	return BuildMatrix(sys)
}

// VertexMatrix builds the V-representation matrix directly by
// homogenizing coordinates: row_i = [1, p_i1, …, p_id]. No linearity
// directive applies to vertex input.
//
// Dimension consistency is validated before any row is constructed;
// mismatching tuples fail with ErrInconsistentVertexDimension.
func VertexMatrix(points [][]int64) (*Matrix, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("VertexMatrix: %w", ErrEmptySpecification)
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("VertexMatrix: vertex %d has %d coordinates, want %d: %w",
				i+1, len(p), dim, ErrInconsistentVertexDimension)
		}
	}

	rows := make([][]expr.Rational, len(points))
	for i, p := range points {
		row := make([]expr.Rational, 0, dim+1)
		row = append(row, expr.One())
		for _, c := range p {
			row = append(row, expr.NewInt(c))
		}
		rows[i] = row
	}
	return &Matrix{rows: rows}, nil
}
