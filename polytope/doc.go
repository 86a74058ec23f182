// Package polytope normalizes heterogeneous polytope descriptions into
// the canonical matrix/code format consumed by the LattE counting
// executable.
//
// The polytope package provides:
//
//   - Specification, a tagged union over the four accepted input forms:
//     raw LattE code, vertex lists (V-representation), halfspace systems
//     A·x <= b (H-representation), and symbolic inequality strings.
//   - Classify, the shape-based adapter that maps loosely-typed input
//     onto the union with a fixed, documented priority order.
//   - ParseConstraints, which splits each inequality string on its
//     relational operator and rewrites it as "expression <= 0",
//     tracking equality rows for the linearity directive.
//   - BuildMatrix / VertexMatrix, which produce the exact-rational
//     coefficient matrix in the tool's sign convention, and Code, which
//     serializes it with the required header and optional linearity line.
//
// All validation is fail-fast: every error below is raised before any
// file or subprocess work happens in the latte package.
package polytope
