package expr_test

import (
	"testing"

	"github.com/katalvlaran/lattix/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_LinearBasics verifies coefficients and the constant term of
// a plain linear expression.
func TestParse_LinearBasics(t *testing.T) {
	p, err := expr.Parse("x + 2*y - 3")
	require.NoError(t, err, "well-formed linear expression must parse")

	assert.True(t, p.IsLinear(), "degree-1 expression must be linear")
	assert.Equal(t, []string{"x", "y"}, p.Vars(), "variables keep first-seen order")
	assert.Equal(t, "1", p.Coeff("x").String())
	assert.Equal(t, "2", p.Coeff("y").String())
	assert.Equal(t, "-3", p.Constant().String())
}

// TestParse_RationalCoefficients verifies exact fraction handling, the
// typical shape of an Ehrhart polynomial.
func TestParse_RationalCoefficients(t *testing.T) {
	p, err := expr.Parse("1/2*t^2 + 3/2*t + 1")
	require.NoError(t, err)

	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, "1/2", p.CoeffOf("t", 2).String())
	assert.Equal(t, "3/2", p.CoeffOf("t", 1).String())
	assert.Equal(t, "1", p.Constant().String())
}

// TestParse_Juxtaposition verifies that adjacency multiplies: the
// counting tool's stdout is decoded with " * " tokens stripped, so
// "45 t^2" must mean 45*t^2.
func TestParse_Juxtaposition(t *testing.T) {
	a, err := expr.Parse("1 + 10 t + 45 t^2")
	require.NoError(t, err)
	b := expr.MustParse("45*t^2 + 10*t + 1")
	assert.True(t, a.Equal(b), "juxtaposition and explicit * must agree")
}

// TestParse_IndexedVariable verifies that x[0]-style tokens are opaque
// variable names (the generating-function output uses them).
func TestParse_IndexedVariable(t *testing.T) {
	p, err := expr.Parse("x[0] + 2*x[1]")
	require.NoError(t, err)
	assert.Equal(t, []string{"x[0]", "x[1]"}, p.Vars())
	assert.Equal(t, "2", p.Coeff("x[1]").String())
}

// TestParse_UnaryMinusAndParens exercises sign handling and grouping.
func TestParse_UnaryMinusAndParens(t *testing.T) {
	p, err := expr.Parse("-(x - 2)*3")
	require.NoError(t, err)
	assert.Equal(t, "-3", p.Coeff("x").String())
	assert.Equal(t, "6", p.Constant().String())
}

// TestParse_Errors covers the sentinel taxonomy.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"dangling operator", "x +", expr.ErrSyntax},
		{"unbalanced paren", "(x + 1", expr.ErrSyntax},
		{"stray character", "x $ y", expr.ErrSyntax},
		{"empty input", "", expr.ErrSyntax},
		{"division by zero", "1/0", expr.ErrDivisionByZero},
		{"variable divisor", "1/x", expr.ErrNonNumericDivisor},
		{"negative exponent", "x^-2", expr.ErrBadExponent},
		{"symbolic exponent", "x^y", expr.ErrBadExponent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := expr.Parse(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_StringRoundTrip verifies Parse(String(p)) == p.
func TestParse_StringRoundTrip(t *testing.T) {
	inputs := []string{
		"x + 2*y - 3",
		"1/2*t^2 + 3/2*t + 1",
		"-x",
		"7",
		"x*y + y^2 - 1/3",
	}
	for _, in := range inputs {
		p := expr.MustParse(in)
		back, err := expr.Parse(p.String())
		require.NoError(t, err, "canonical rendering of %q must reparse", in)
		assert.True(t, p.Equal(back), "round-trip of %q", in)
	}
}
