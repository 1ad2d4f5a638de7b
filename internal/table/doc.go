// Package table reads and writes the CSV files rowgroup operates on.
//
// Read loads a whole file into memory: the first record supplies the headers
// and every following record becomes a Row whose fields are addressed by
// header name. A leading UTF-8 byte order mark is dropped so spreadsheet
// exports still match header names exactly. Writer emits rows with standard
// CSV quoting and writes the header line lazily, so a run with no rows
// produces no output at all.
package table
