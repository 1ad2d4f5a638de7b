// Package textutil provides the value normalizers used when comparing identity
// fields across rows.
//
// The primary use cases are:
//   - Folding email addresses to a canonical lowercase form
//   - Reducing phone numbers to their ASCII digits
//
// Normalizers never fail. A value that normalizes to the empty string carries
// no identity and callers are expected to discard it.
package textutil
