// Package tabio reads and writes tabular inputs for the consolidation
// engine: delimited text (CSV/TSV) and xlsx workbooks.
//
// Cell values are opaque text; no type coercion happens here. The package
// enforces nothing about row shapes either — rectangularity is the
// engine's concern, which reports it with row-level context.
//
// Delimited input is wrapped for real-world files before parsing: a UTF-8
// byte order mark is skipped and invalid UTF-8 bytes are replaced, so
// exports from spreadsheet tools on Windows load without manual cleanup.
package tabio
