// Package expr provides exact-rational symbolic expressions for the
// lattix pipeline.
//
// The expr package provides:
//
//   - Parse for turning algebraic text ("x + 2*y - 3", "1/2*t^2 + 1/2*t + 1")
//     into a normalized multivariate polynomial with rational coefficients.
//   - Poly with degree inspection, per-variable coefficient extraction,
//     the constant term, and deterministic variable ordering (first-seen).
//   - Sub for forming the difference of two expressions, which is how
//     inequality sides are rewritten into "expr <= 0" form.
//   - A canonical String rendering that round-trips through Parse.
//
// All arithmetic is exact over math/big rationals; there is no floating
// point anywhere in this package. Expressions are immutable after
// construction; every operation returns a fresh value.
package expr
