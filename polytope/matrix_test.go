package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattix/expr"
	"github.com/katalvlaran/lattix/polytope"
)

// buildFrom parses constraints and builds the matrix, failing the test
// on any error.
func buildFrom(t *testing.T, exprs ...string) *polytope.Matrix {
	t.Helper()
	sys, err := polytope.ParseConstraints(exprs)
	require.NoError(t, err)
	m, err := polytope.BuildMatrix(sys)
	require.NoError(t, err)
	return m
}

// row collects one matrix row as strings for compact assertions.
func row(m *polytope.Matrix, i int) []string {
	out := make([]string, m.ColCount())
	for j := range out {
		out[j] = m.At(i, j).String()
	}
	return out
}

// TestBuildMatrix_SignConvention: internal "A·x - b <= 0" rows must be
// emitted as [b, -A].
func TestBuildMatrix_SignConvention(t *testing.T) {
	m := buildFrom(t, "x + y <= 10", "x >= 1", "y >= 1")

	require.Equal(t, 3, m.RowCount())
	require.Equal(t, 3, m.ColCount(), "constant column + two variables")
	assert.Equal(t, []string{"x", "y"}, m.Vars(), "first-seen variable order")

	assert.Equal(t, []string{"10", "-1", "-1"}, row(m, 0))
	assert.Equal(t, []string{"-1", "1", "0"}, row(m, 1))
	assert.Equal(t, []string{"-1", "0", "1"}, row(m, 2))
}

// TestBuildMatrix_OperatorSymmetry: splitting via the opposite operator
// direction is consistent. "x >= 1" and "-x <= -1" describe the same
// halfspace and must yield identical rows; flipping only the operator
// ("x >= 1" vs "x <= 1") must yield exact negations.
func TestBuildMatrix_OperatorSymmetry(t *testing.T) {
	a := buildFrom(t, "x >= 1")
	b := buildFrom(t, "-x <= -1")
	flipped := buildFrom(t, "x <= 1")

	require.Equal(t, a.ColCount(), b.ColCount())
	for j := 0; j < a.ColCount(); j++ {
		assert.Zero(t, a.At(0, j).Cmp(b.At(0, j)),
			"column %d: %s vs %s", j, a.At(0, j), b.At(0, j))
		assert.Zero(t, a.At(0, j).Cmp(flipped.At(0, j).Neg()),
			"column %d must negate under operator flip", j)
	}
}

// TestBuildMatrix_AbsentVariableIsZero: a variable missing from one
// constraint contributes a zero entry.
func TestBuildMatrix_AbsentVariableIsZero(t *testing.T) {
	m := buildFrom(t, "x <= 2", "y <= 3")
	assert.Equal(t, []string{"2", "-1", "0"}, row(m, 0))
	assert.Equal(t, []string{"3", "0", "-1"}, row(m, 1))
}

// TestBuildMatrix_NonLinear rejects degree>1 rows with the row index in
// the message.
func TestBuildMatrix_NonLinear(t *testing.T) {
	sys, err := polytope.ParseConstraints([]string{"x <= 1", "x^2 <= 4"})
	require.NoError(t, err)

	_, err = polytope.BuildMatrix(sys)
	assert.ErrorIs(t, err, polytope.ErrNonLinearConstraint)
	assert.Contains(t, err.Error(), "row 2")
}

// TestBuildFromRows covers the already-parsed expression path.
func TestBuildFromRows(t *testing.T) {
	rows := []*expr.Poly{
		expr.MustParse("x - 5"), // x <= 5
		expr.MustParse("-x"),    // x >= 0
	}
	m, err := polytope.BuildFromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "-1"}, row(m, 0))
	assert.Equal(t, []string{"0", "1"}, row(m, 1))
	assert.Empty(t, m.Linearity())
}

// TestVertexMatrix_HeaderProperty: rows = number of vertices and
// cols = dimension + 1, for any uniform-dimension vertex list.
func TestVertexMatrix_HeaderProperty(t *testing.T) {
	points := [][]int64{{1, 1}, {10, 1}, {1, 10}, {10, 10}}
	m, err := polytope.VertexMatrix(points)
	require.NoError(t, err)

	assert.Equal(t, len(points), m.RowCount())
	assert.Equal(t, len(points[0])+1, m.ColCount())
	assert.Equal(t, []string{"1", "1", "1"}, row(m, 0), "homogenizing 1 prefixes each vertex")
	assert.Equal(t, []string{"1", "10", "10"}, row(m, 3))
}

// TestVertexMatrix_DimensionMismatch fails before construction.
func TestVertexMatrix_DimensionMismatch(t *testing.T) {
	_, err := polytope.VertexMatrix([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, polytope.ErrInconsistentVertexDimension)
	assert.Contains(t, err.Error(), "vertex 2")
}

// TestVertexMatrix_Empty rejects an empty vertex list.
func TestVertexMatrix_Empty(t *testing.T) {
	_, err := polytope.VertexMatrix(nil)
	assert.ErrorIs(t, err, polytope.ErrEmptySpecification)
}
