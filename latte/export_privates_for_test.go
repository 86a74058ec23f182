package latte

// Test-bridge (white-box) for the option resolver and decoder.
//
// Purpose:
//   - Expose the unexported option resolution and output decoding to
//     latte_test without widening the production API.
//   - Keep all test-only bridges co-located in one file.

import "github.com/go-logr/logr"

// Flags_TestOnly resolves setters and serializes the forwarded flags.
func Flags_TestOnly(opts ...CountOption) []string {
	o := gatherCountOptions(opts...)
	return o.Flags()
}

// CanonicalFlags_TestOnly resolves setters and returns the sorted flag
// list used in memoization keys.
func CanonicalFlags_TestOnly(opts ...CountOption) []string {
	o := gatherCountOptions(opts...)
	return o.CanonicalFlags()
}

// Decode_TestOnly runs the output decoder against a canned RunResult.
func Decode_TestOnly(run RunResult, vars []string, log logr.Logger, opts ...CountOption) (Result, error) {
	o := gatherCountOptions(opts...)
	return decodeResult(&o, vars, run, log)
}
