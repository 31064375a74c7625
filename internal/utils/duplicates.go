package utils

import "strings"

// SuggestionFilter drops case-insensitive duplicates and the typed input
// itself from a stream of suggestions. Not safe for concurrent use.
type SuggestionFilter struct {
	seenWords map[string]bool
}

// NewSuggestionFilter creates a filter that already excludes input.
func NewSuggestionFilter(input string) *SuggestionFilter {
	return &SuggestionFilter{
		seenWords: map[string]bool{strings.ToLower(input): true},
	}
}

// ShouldInclude reports whether word is new, and marks it seen.
func (f *SuggestionFilter) ShouldInclude(word string) bool {
	lowerWord := strings.ToLower(word)
	if f.seenWords[lowerWord] {
		return false
	}
	f.seenWords[lowerWord] = true
	return true
}
