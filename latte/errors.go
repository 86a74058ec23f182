// Package latte: sentinel error set.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Validation sentinels are raised before any subprocess work begins;
//     ErrExternalTool is the only post-invocation failure class.

package latte

import "errors"

var (
	// ErrUnsupportedOption indicates a known-but-unimplemented tool flag
	// (currently only simplified-ehrhart-polynomial). Raised before the
	// working directory is created or the subprocess is invoked.
	ErrUnsupportedOption = errors.New("latte: unsupported option")

	// ErrExternalTool indicates that the subprocess exited non-zero or a
	// required output file is missing. The captured standard-error text
	// is attached to the message when verbose mode is enabled. The
	// working directory is left intact for post-mortem inspection.
	ErrExternalTool = errors.New("latte: external tool failure")
)
