// Package lattix translates high-level polytope descriptions into the
// input format of the LattE lattice-point-counting executable and decodes
// LattE's textual outputs back into structured values.
//
// 🚀 What is lattix?
//
//	A small, deterministic translation layer that brings together:
//		• Specification forms: raw LattE code, vertex lists, halfspace
//		  systems (A·x <= b), and symbolic inequality strings
//		• Normalization: one canonical coefficient matrix + code format
//		• Decoding: plain counts, big-integer counts, Ehrhart polynomials,
//		  Ehrhart series, multivariate generating functions, Taylor series
//
// ✨ Why choose lattix?
//
//   - Exact arithmetic – rational coefficients over math/big, no float drift
//   - Fail fast – every input error is raised before a subprocess starts
//   - Testable – the external engine is an interface; the filesystem is
//     an afero.Fs; everything runs against in-memory fakes
//
// Under the hood, everything is organized under three subpackages:
//
//	expr/     - exact-rational expressions: parse, degree, coefficients, render
//	polytope/ - specification union, classifier, inequality parser,
//	            coefficient matrix builder, code emitter
//	latte/    - option surface, engine runner, output decoder, memoizing client
//
// Quick example:
//
//	c := latte.NewClient(latte.WithEngine(eng))
//	res, err := c.Count(ctx, polytope.Constraints("x + y <= 10", "x >= 1", "y >= 1"))
//	// res.Count() == 45
//
//	go get github.com/katalvlaran/lattix
package lattix
