// Package logging assembles structured slog loggers for rowgroup.
//
// It owns the console and JSON handlers, level parsing and output plumbing,
// plus small attribute helpers so call sites stay terse. Standard output is
// reserved for CSV data, so the default destination is stderr. A no-op logger
// is provided for tests and for wiring code that runs without configuration.
package logging
