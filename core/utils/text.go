package utils

import (
	"strings"
	"unicode/utf8"
)

// Norm trims surrounding whitespace. A nil-ish empty value stays empty.
func Norm(s string) string {
	return strings.TrimSpace(s)
}

// CollapseSpace trims s and replaces every run of whitespace with a single space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RuneLen returns the number of characters (not bytes) in the trimmed string.
func RuneLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
