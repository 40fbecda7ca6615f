// Package logging assembles the structured slog loggers used by jellyname.
//
// It owns the console and JSON handlers, level parsing and output plumbing,
// and exposes context-aware helpers so traversal code can tag log lines with
// the run identifier without threading it through every call. A no-op logger
// is provided for tests and wiring code that cannot fail.
package logging
