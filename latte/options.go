// Package latte: structured option surface for the counting tool.
// This file defines:
//   - the enumerated table of known tool options (name + type + rule),
//   - CountOption functional setters with strict validation (panic on
//     nonsensical values, programmer error),
//   - countOptions, the resolved internal state,
//   - deterministic flag serialization (Flags).
//
// Design goals:
//   - No string munging: every known option has a declared type
//     (boolean | integer) and one serialization rule.
//   - Unknown options pass through generically with underscore→hyphen
//     transliteration, so the convenience surface stays open.
//   - Deterministic flag order: known options in table order, then
//     passthrough options in insertion order.

package latte

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRawOutput controls whether decodable outputs (Ehrhart
	// polynomial, Taylor series) are returned as raw text instead of
	// parsed polynomials.
	DefaultRawOutput = false

	// DefaultVerbose controls whether the tool's standard error is
	// attached to failures and progress is logged.
	DefaultVerbose = false

	// DefaultDilation is the unset marker; the flag is emitted only for
	// explicit positive values.
	DefaultDilation = 0

	// DefaultTaylorOrder is the unset marker for ehrhart-taylor.
	DefaultTaylorOrder = 0
)

// Internal panic messages (no magic strings).
const (
	panicTaylorOrderInvalid = "latte: WithEhrhartTaylor: order must be >= 1"
	panicDilationInvalid    = "latte: WithDilation: factor must be >= 1"
	panicOptionNameEmpty    = "latte: WithOption: name must be non-empty"
)

// OptionType declares how a known option value serializes.
type OptionType int

const (
	// BoolOption serializes as a bare "--flag" when true, nothing when
	// false.
	BoolOption OptionType = iota + 1

	// IntOption serializes as "--flag=<n>".
	IntOption
)

// optionSpec is one row of the known-option table.
type optionSpec struct {
	name string
	typ  OptionType
}

// knownOptions enumerates the semantically recognized tool flags, in
// emission order. simplified-ehrhart-polynomial is listed for
// completeness but rejected before invocation.
var knownOptions = []optionSpec{
	{"vrep", BoolOption},
	{"ehrhart-polynomial", BoolOption},
	{"ehrhart-series", BoolOption},
	{"simplified-ehrhart-polynomial", BoolOption},
	{"multivariate-generating-function", BoolOption},
	{"ehrhart-taylor", IntOption},
	{"dilation", IntOption},
	{"homog", BoolOption},
}

// extraOption is a generic passthrough flag; Name keeps the caller's
// underscore form, transliteration happens at serialization.
type extraOption struct {
	name  string
	value any
}

// countOptions stores the effective configuration after applying
// CountOption setters. Unexported to prevent external mutation; public
// entry points accept ...CountOption.
type countOptions struct {
	// forwarded tool flags
	vrep           bool
	ehrhartPoly    bool
	ehrhartSeries  bool
	simplifiedPoly bool
	multivariateGF bool
	taylorOrder    int
	dilation       int
	homog          bool
	extras         []extraOption

	// local toggles (never forwarded)
	rawOutput bool
	verbose   bool
}

// CountOption mutates the resolved option state. Safe to apply
// repeatedly; last writer wins.
type CountOption func(*countOptions)

// WithVrep declares the specification a vertex list (V-representation).
// The classifier also auto-enables this for generic sequences.
func WithVrep() CountOption {
	return func(o *countOptions) { o.vrep = true }
}

// WithEhrhartPolynomial requests the Ehrhart polynomial instead of a
// plain count.
func WithEhrhartPolynomial() CountOption {
	return func(o *countOptions) { o.ehrhartPoly = true }
}

// WithEhrhartSeries requests the Ehrhart series as a rational function.
// The result is always raw text: a rational function is not generally a
// polynomial, so combining this with parsed output degrades to raw
// (with an informational notice).
func WithEhrhartSeries() CountOption {
	return func(o *countOptions) { o.ehrhartSeries = true }
}

// WithSimplifiedEhrhartPolynomial requests the simplified Ehrhart
// polynomial. The option is recognized but unsupported; Count fails
// with ErrUnsupportedOption before any subprocess work.
func WithSimplifiedEhrhartPolynomial() CountOption {
	return func(o *countOptions) { o.simplifiedPoly = true }
}

// WithMultivariateGeneratingFunction requests the multivariate
// generating function of the polytope's lattice points.
func WithMultivariateGeneratingFunction() CountOption {
	return func(o *countOptions) { o.multivariateGF = true }
}

// WithEhrhartTaylor requests the Taylor expansion of the Ehrhart series
// up to the given order. Panics if order < 1 (programmer error).
func WithEhrhartTaylor(order int) CountOption {
	if order < 1 {
		panic(panicTaylorOrderInvalid)
	}
	return func(o *countOptions) { o.taylorOrder = order }
}

// WithDilation scales the polytope by an integer factor before
// counting. Panics if factor < 1 (programmer error).
func WithDilation(factor int) CountOption {
	if factor < 1 {
		panic(panicDilationInvalid)
	}
	return func(o *countOptions) { o.dilation = factor }
}

// WithHomogenized passes the homog flag (homogenized input cone).
func WithHomogenized() CountOption {
	return func(o *countOptions) { o.homog = true }
}

// WithRawOutput returns decodable results as raw text instead of
// parsed polynomials. Local toggle; never forwarded to the tool.
func WithRawOutput() CountOption {
	return func(o *countOptions) { o.rawOutput = true }
}

// WithVerbose attaches the tool's standard error to failures and logs
// the invocation. Local toggle; never forwarded to the tool.
func WithVerbose() CountOption {
	return func(o *countOptions) { o.verbose = true }
}

// WithOption forwards an arbitrary named option. The name is given in
// underscore form ("max_determinant") and transliterated to hyphens at
// serialization; boolean true values emit as bare flags, false values
// are omitted, anything else emits as "--name=value".
// Panics on an empty name (programmer error).
func WithOption(name string, value any) CountOption {
	if name == "" {
		panic(panicOptionNameEmpty)
	}
	return func(o *countOptions) {
		o.extras = append(o.extras, extraOption{name: name, value: value})
	}
}

// gatherCountOptions applies setters over documented defaults.
func gatherCountOptions(opts ...CountOption) countOptions {
	o := countOptions{
		taylorOrder: DefaultTaylorOrder,
		dilation:    DefaultDilation,
		rawOutput:   DefaultRawOutput,
		verbose:     DefaultVerbose,
	}
	for _, set := range opts {
		set(&o)
	}
	return o
}

// boolValue reads the known boolean toggles by table name.
func (o *countOptions) boolValue(name string) bool {
	switch name {
	case "vrep":
		return o.vrep
	case "ehrhart-polynomial":
		return o.ehrhartPoly
	case "ehrhart-series":
		return o.ehrhartSeries
	case "simplified-ehrhart-polynomial":
		return o.simplifiedPoly
	case "multivariate-generating-function":
		return o.multivariateGF
	case "homog":
		return o.homog
	}
	return false
}

// intValue reads the known integer options by table name; 0 means
// unset and emits nothing.
func (o *countOptions) intValue(name string) int {
	switch name {
	case "ehrhart-taylor":
		return o.taylorOrder
	case "dilation":
		return o.dilation
	}
	return 0
}

// Flags serializes the forwarded options into command-line arguments:
// known options in table order, passthrough options in insertion order.
// Local toggles (raw output, verbose) never appear.
func (o *countOptions) Flags() []string {
	var args []string
	for _, spec := range knownOptions {
		switch spec.typ {
		case BoolOption:
			if o.boolValue(spec.name) {
				args = append(args, "--"+spec.name)
			}
		case IntOption:
			if n := o.intValue(spec.name); n != 0 {
				args = append(args, fmt.Sprintf("--%s=%d", spec.name, n))
			}
		}
	}
	for _, e := range o.extras {
		name := strings.ReplaceAll(e.name, "_", "-")
		switch v := e.value.(type) {
		case bool:
			if v {
				args = append(args, "--"+name)
			}
		default:
			args = append(args, fmt.Sprintf("--%s=%v", name, v))
		}
	}
	return args
}

// CanonicalFlags returns the flag list sorted lexicographically; the
// caching layer uses it as part of the memoization key so that two
// equivalent invocations hit the same entry regardless of option order.
func (o *countOptions) CanonicalFlags() []string {
	args := o.Flags()
	sorted := make([]string, len(args))
	copy(sorted, args)
	sort.Strings(sorted)
	return sorted
}
