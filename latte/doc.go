// Package latte drives the external LattE counting executable: it
// serializes option flags, runs the tool inside an isolated working
// directory, and decodes its textual outputs into structured results.
//
// The latte package provides:
//
//   - Client, the facade tying the pipeline together: classify the
//     specification, normalize it to tool code, invoke the engine, and
//     decode the requested output format.
//   - A structured option surface (functional CountOption setters over
//     an enumerated table of known tool flags) instead of ad hoc string
//     munging; unknown options pass through with underscore→hyphen
//     transliteration.
//   - Result, a sum type over the decoded output variants: plain
//     counts, big-integer counts, Ehrhart polynomials, Ehrhart series,
//     multivariate generating functions, and truncated Taylor series.
//   - Engine, the subprocess boundary as an interface, with ExecEngine
//     for real invocations and room for stubs in tests.
//   - CachingClient, an optional memoizing decorator keyed by the
//     canonicalized (code, flags) tuple; unbounded by default.
//
// All input validation happens before any file or subprocess work.
// External tool failures are not retried and the working directory is
// kept intact for post-mortem inspection.
package latte
