// Package polytope: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// polytope package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package polytope

import "errors"

var (
	// ErrNonLinearConstraint is returned when a supplied constraint has
	// degree > 1 in some variable. The external tool only accepts linear
	// systems, so this is fatal and raised before any file is written.
	ErrNonLinearConstraint = errors.New("polytope: non-linear constraint")

	// ErrMalformedInequality indicates a symbolic constraint string with
	// zero or multiple relational operators (" >= ", " <= ", " == ", " = ").
	ErrMalformedInequality = errors.New("polytope: malformed inequality")

	// ErrInconsistentVertexDimension indicates vertex list entries that
	// disagree in coordinate count. Checked before matrix construction.
	ErrInconsistentVertexDimension = errors.New("polytope: inconsistent vertex dimension")

	// ErrUnclassifiable indicates a specification value that matches none
	// of the recognized representations. This is a usage error.
	ErrUnclassifiable = errors.New("polytope: unclassifiable specification")

	// ErrEmptySpecification indicates an empty vertex list or constraint
	// set; a polytope needs at least one row.
	ErrEmptySpecification = errors.New("polytope: empty specification")

	// ErrShapeMismatch indicates a halfspace system whose matrix and
	// vector shapes disagree (len(b) != rows(A), or ragged A).
	ErrShapeMismatch = errors.New("polytope: halfspace shape mismatch")
)
