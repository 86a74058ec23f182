package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattix/polytope"
)

// TestParseConstraints_Rewriting checks the operator split directions:
// ">=" flips sides, "<=" keeps them, "=" marks an equality row.
func TestParseConstraints_Rewriting(t *testing.T) {
	sys, err := polytope.ParseConstraints([]string{
		"x + y <= 10",
		"x >= 1",
		"x + y == 4",
	})
	require.NoError(t, err)
	require.Len(t, sys.Rows, 3)

	// "x + y <= 10" → x + y - 10 <= 0
	assert.Equal(t, "1", sys.Rows[0].Expr.Coeff("x").String())
	assert.Equal(t, "-10", sys.Rows[0].Expr.Constant().String())
	assert.False(t, sys.Rows[0].Equality)

	// "x >= 1" → 1 - x <= 0
	assert.Equal(t, "-1", sys.Rows[1].Expr.Coeff("x").String())
	assert.Equal(t, "1", sys.Rows[1].Expr.Constant().String())

	// "x + y == 4" → equality row
	assert.True(t, sys.Rows[2].Equality)
	assert.Equal(t, []int{3}, sys.Linearity(), "linearity indices are 1-based")
}

// TestParseConstraints_SingleEquals verifies the single "=" form is
// treated like "==".
func TestParseConstraints_SingleEquals(t *testing.T) {
	sys, err := polytope.ParseConstraints([]string{"x = 3"})
	require.NoError(t, err)
	assert.True(t, sys.Rows[0].Equality)
	assert.Equal(t, "-3", sys.Rows[0].Expr.Constant().String())
}

// TestParseConstraints_Malformed covers zero and multiple operators.
func TestParseConstraints_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"no operator", "x + y"},
		{"two operators", "1 <= x <= 10"},
		{"mixed operators", "x >= 1 = 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := polytope.ParseConstraints([]string{tc.in})
			assert.ErrorIs(t, err, polytope.ErrMalformedInequality)
		})
	}
}

// TestParseConstraints_BadSide ensures expression syntax errors surface
// with the constraint index attached.
func TestParseConstraints_BadSide(t *testing.T) {
	_, err := polytope.ParseConstraints([]string{"x + <= 10"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constraint 1")
}

// TestParseConstraints_Empty rejects an empty constraint set.
func TestParseConstraints_Empty(t *testing.T) {
	_, err := polytope.ParseConstraints(nil)
	assert.ErrorIs(t, err, polytope.ErrEmptySpecification)
}

// TestLinearity_BoundsProperty: equality indices are always 1-based and
// strictly within [1, row_count].
func TestLinearity_BoundsProperty(t *testing.T) {
	sys, err := polytope.ParseConstraints([]string{
		"x == 0",
		"y <= 5",
		"x + y = 3",
		"y >= -5",
	})
	require.NoError(t, err)

	lin := sys.Linearity()
	require.NotEmpty(t, lin)
	for _, idx := range lin {
		assert.GreaterOrEqual(t, idx, 1)
		assert.LessOrEqual(t, idx, len(sys.Rows))
	}
	assert.Equal(t, []int{1, 3}, lin)
}
