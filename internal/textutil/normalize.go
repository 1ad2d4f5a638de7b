package textutil

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases the whole value.
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// DigitsOnly removes every character that is not an ASCII digit 0-9.
// Non-ASCII digits (Arabic-Indic, fullwidth) are removed as well.
func DigitsOnly(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
