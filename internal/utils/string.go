package utils

import (
	"unicode"
)

// IsSeparator reports characters that may appear inside dictionary words.
func IsSeparator(r rune) bool {
	return r == '\'' || r == '-' || r == '.'
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars checks if a string contains characters other than
// letters, digits and in-word separators.
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !IsSeparator(r) {
			return true
		}
	}
	return false
}

// IsValidInput reports whether a typed prefix is worth a prediction.
// Empty strings, bare numbers and strings with special characters are
// rejected.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	return !ContainsSpecialChars(s)
}
