package utils

import (
	"strings"
	"unicode"
)

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

// IsRepetitive checks for a single character repeated 3+ times, e.g. "aaa".
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}

// IsValidWord checks if s can be a single token of the normalized stream:
// non-empty, no whitespace, and letters, digits or hyphens only.
func IsValidWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

// IsValidPrefix rejects empty prefixes and repetitive noise such as "zzzz"
// for word completion. Sentence prefixes are not filtered.
func IsValidPrefix(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsFunc(s, unicode.IsSpace) {
		return false
	}
	return !IsRepetitive(strings.ToLower(s))
}
