// Package annotate drives one clustering pass over a table and emits every row
// with its cluster identifier prepended.
//
// The default mode streams: each row's identifier is read right after the row
// is mapped, so a later row that merges two clusters does not rewrite what was
// already emitted. Settled mode maps every row first and reads identifiers
// afterwards, giving every member of a final cluster the same identifier.
package annotate
