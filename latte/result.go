package latte

import (
	"fmt"

	"github.com/katalvlaran/lattix/expr"
)

// ResultKind discriminates the active variant of a Result.
type ResultKind int

const (
	// KindCount is a plain lattice-point count small enough for int64
	// (fewer than 10 decimal digits).
	KindCount ResultKind = iota + 1

	// KindBigCount is an exact decimal count of 10 digits or more,
	// kept as text so magnitude is never silently truncated.
	KindBigCount

	// KindPolynomial is a parsed Ehrhart polynomial.
	KindPolynomial

	// KindRationalSeries is the Ehrhart series as raw rational-function
	// text (never parsed; it may not be a polynomial).
	KindRationalSeries

	// KindGeneratingFunction is the multivariate generating function as
	// raw text, with internal variable tokens substituted when parsing
	// was requested.
	KindGeneratingFunction

	// KindTaylorSeries is the truncated Taylor expansion, parsed unless
	// raw output was requested.
	KindTaylorSeries
)

// String returns the variant name.
func (k ResultKind) String() string {
	switch k {
	case KindCount:
		return "count"
	case KindBigCount:
		return "big-count"
	case KindPolynomial:
		return "polynomial"
	case KindRationalSeries:
		return "rational-series"
	case KindGeneratingFunction:
		return "generating-function"
	case KindTaylorSeries:
		return "taylor-series"
	}
	return fmt.Sprintf("ResultKind(%d)", int(k))
}

// Result is the decoded outcome of one invocation. Exactly one variant
// is populated, determined by which option flag was active.
type Result struct {
	kind  ResultKind
	count int64
	text  string     // big count, raw series/function/polynomial text
	poly  *expr.Poly // parsed polynomial variants
}

// Kind returns the active variant.
func (r Result) Kind() ResultKind { return r.kind }

// Count returns the plain count (KindCount only; 0 otherwise).
func (r Result) Count() int64 { return r.count }

// BigCount returns the exact decimal text of a large count
// (KindBigCount only; empty otherwise).
func (r Result) BigCount() string { return r.text }

// Polynomial returns the parsed polynomial (KindPolynomial and parsed
// KindTaylorSeries; nil otherwise).
func (r Result) Polynomial() *expr.Poly { return r.poly }

// Raw returns the raw text of series, generating-function and raw-mode
// variants (empty otherwise).
func (r Result) Raw() string { return r.text }

// String renders whichever variant is populated, for logs and CLIs.
func (r Result) String() string {
	switch r.kind {
	case KindCount:
		return fmt.Sprintf("%d", r.count)
	case KindPolynomial, KindTaylorSeries:
		if r.poly != nil {
			return r.poly.String()
		}
		return r.text
	default:
		return r.text
	}
}
