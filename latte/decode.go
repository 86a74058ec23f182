package latte

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lattix/expr"
)

// bigCountDigits is the decimal-digit threshold above which a count is
// kept as exact text instead of a native integer. A 9-digit value is an
// int64; a 10-digit value is returned verbatim, never truncated.
const bigCountDigits = 10

// ratPrefixLen is the length of the fixed "x := " assignment prefix the
// tool writes at the head of its rational-function file.
const ratPrefixLen = 5

// decodeResult dispatches on the single active option flag and reshapes
// the tool's output into the matching Result variant. vars is the
// original variable order, used to undo the tool's internal x[i] naming
// in generating-function output.
func decodeResult(o *countOptions, vars []string, run RunResult, log logr.Logger) (Result, error) {
	switch {
	case o.ehrhartPoly:
		return decodeEhrhartPolynomial(run.Stdout, o.rawOutput)
	case o.ehrhartSeries:
		if !o.rawOutput {
			// A rational function is not generally a polynomial; parsed
			// output silently degrades to raw text.
			log.Info("ehrhart-series output is returned raw; a rational function need not be a polynomial")
		}
		return decodeEhrhartSeries(run.RatFile)
	case o.multivariateGF:
		return decodeGeneratingFunction(run.RatFile, vars, o.rawOutput), nil
	case o.taylorOrder > 0:
		return decodeTaylorSeries(run.Stdout, o.rawOutput)
	default:
		return decodeCount(run.NumFile)
	}
}

// decodeCount reads the primary numeric result. Values under the digit
// threshold parse as native integers; anything larger stays exact
// decimal text.
func decodeCount(numFile string) (Result, error) {
	digits := strings.TrimSpace(numFile)
	if digits == "" {
		return Result{}, fmt.Errorf("missing %s output: %w", NumFileName, ErrExternalTool)
	}
	if i := strings.IndexAny(digits, " \t\n"); i >= 0 {
		digits = digits[:i]
	}

	if len(digits) < bigCountDigits {
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return Result{}, fmt.Errorf("unreadable count %q: %w", digits, ErrExternalTool)
		}
		return Result{kind: KindCount, count: n}, nil
	}
	return Result{kind: KindBigCount, text: digits}, nil
}

// decodeEhrhartPolynomial extracts the polynomial from the
// second-to-last line of standard output, strips multiplication tokens
// and the leading " + 1 " artifact, and parses unless raw output was
// requested.
func decodeEhrhartPolynomial(stdout string, raw bool) (Result, error) {
	lines := splitLines(stdout)
	if len(lines) < 2 {
		return Result{}, fmt.Errorf("ehrhart polynomial missing from output: %w", ErrExternalTool)
	}
	line := lines[len(lines)-2]
	line = strings.ReplaceAll(line, " * ", " ")
	line = strings.TrimPrefix(line, " + 1 ")
	line = strings.TrimSpace(line)

	if raw {
		return Result{kind: KindPolynomial, text: line}, nil
	}
	p, err := expr.Parse(line)
	if err != nil {
		return Result{}, fmt.Errorf("unparseable ehrhart polynomial %q: %w", line, ErrExternalTool)
	}
	return Result{kind: KindPolynomial, poly: p}, nil
}

// decodeEhrhartSeries strips the fixed assignment prefix and the
// trailing terminator character from the rational-function file and
// returns the remainder verbatim.
func decodeEhrhartSeries(ratFile string) (Result, error) {
	s := strings.TrimSpace(ratFile)
	if s == "" {
		return Result{}, fmt.Errorf("missing %s output: %w", RatFileName, ErrExternalTool)
	}
	if len(s) > ratPrefixLen {
		s = s[ratPrefixLen:]
	}
	s = strings.TrimSuffix(s, ";")
	return Result{kind: KindRationalSeries, text: s}, nil
}

// decodeGeneratingFunction concatenates the rational-function file into
// one line and, unless raw output was requested, substitutes each
// internal variable token x[i] (0-indexed) with the i+1-th original
// variable name.
func decodeGeneratingFunction(ratFile string, vars []string, raw bool) Result {
	s := strings.Join(splitLines(ratFile), "")
	if !raw {
		for i, v := range vars {
			s = strings.ReplaceAll(s, fmt.Sprintf("x[%d]", i), v)
		}
	}
	return Result{kind: KindGeneratingFunction, text: s}
}

// decodeTaylorSeries joins the standard-output lines with " + ",
// re-spaces the formal variable, and parses unless raw output was
// requested.
func decodeTaylorSeries(stdout string, raw bool) (Result, error) {
	lines := splitLines(stdout)
	if len(lines) == 0 {
		return Result{}, fmt.Errorf("taylor series missing from output: %w", ErrExternalTool)
	}
	s := strings.Join(lines, " + ")
	s = strings.ReplaceAll(s, "t", " t")

	if raw {
		return Result{kind: KindTaylorSeries, text: strings.TrimSpace(s)}, nil
	}
	p, err := expr.Parse(s)
	if err != nil {
		return Result{}, fmt.Errorf("unparseable taylor series %q: %w", s, ErrExternalTool)
	}
	return Result{kind: KindTaylorSeries, poly: p}, nil
}

// splitLines splits text into non-empty trimmed-newline lines.
func splitLines(s string) []string {
	raw := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	var out []string
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
