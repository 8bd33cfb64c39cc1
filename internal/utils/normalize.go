package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord trims surrounding whitespace and converts s to Unicode NFC so
// that composed and decomposed spellings share one trie path.
func NormalizeWord(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// RuneLen returns the number of characters in s.
func RuneLen(s string) int {
	return len([]rune(s))
}
