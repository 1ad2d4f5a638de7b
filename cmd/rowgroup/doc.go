// Package main hosts the rowgroup command.
//
// rowgroup reads a CSV file, clusters rows that share an email address or a
// phone number (directly or through a chain of other rows) and writes the
// rows back to stdout with a cluster identifier in a new leading ID column.
//
// The command validates its two positional arguments before anything else is
// touched, so usage mistakes never produce partial output. Configuration,
// logging setup and summary rendering live here; the clustering itself is in
// internal/matching and internal/annotate.
package main
