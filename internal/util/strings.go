package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsAlphanumeric returns true when r is a letter or a digit
func IsAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsAlphanumericString returns true when s is non-empty and consists only of letters and digits
func IsAlphanumericString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsAlphanumeric(r) {
			return false
		}
	}

	return true
}

// HasText returns true when s contains at least one non-whitespace character
func HasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// RuneLen returns the number of runes in s
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// PadRight pads s with spaces up to width runes. Strings already at or beyond width are returned unchanged.
func PadRight(s string, width int) string {
	n := width - RuneLen(s)
	if n <= 0 {
		return s
	}

	return s + strings.Repeat(" ", n)
}
