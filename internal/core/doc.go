// Package core provides the record consolidation engine.
//
// This package is the heart of the tool, containing all merge logic
// independent of any CLI or transport layer. It can be used by the command
// line front end, the web server, or tests without modification.
//
// # Model
//
// Two or more inputs ("sheets") describe overlapping sets of records. The
// caller designates key columns whose values jointly identify a record; the
// engine groups rows across sheets by key, merges each group into output
// rows, and pads missing sides with a filler value.
//
// The flow is strictly top to bottom:
//
//  1. Key column specs are resolved per sheet (signed, 1-based; see
//     [NewSheet]).
//  2. Every row of every sheet is scanned once and grouped by its [Key].
//  3. Groups are consumed in first-encountered-key order; each group is
//     checked for ambiguity, merged, and then compared against the groups
//     still pending for near-duplicate diagnostics.
//
// # Errors and diagnostics
//
// Hard failures (out-of-bounds columns, ragged inputs, ambiguous merges)
// are returned as typed errors; see [ColumnOutOfBoundsError],
// [IrregularShapeError], [AmbiguousMergeError]. Advisory findings
// (unmatched records, suspiciously similar keys) never fail the run: they
// are delivered through the injected [DiagnosticSink].
package core
