package utils

import "unicode"

// CapitalPositions records which rune positions of s are upper-case.
func CapitalPositions(s string) []bool {
	runes := []rune(s)
	positions := make([]bool, len(runes))
	for i, r := range runes {
		positions[i] = unicode.IsUpper(r)
	}
	return positions
}

// HasCapitals reports whether any position is set.
func HasCapitals(positions []bool) bool {
	for _, p := range positions {
		if p {
			return true
		}
	}
	return false
}

// ApplyCapitals upper-cases the runes of word at every position that was
// capital in the typed prefix. Runes past the prefix keep their case.
func ApplyCapitals(word string, positions []bool) string {
	if !HasCapitals(positions) {
		return word
	}
	runes := []rune(word)
	for i := 0; i < len(runes) && i < len(positions); i++ {
		if positions[i] {
			runes[i] = unicode.ToUpper(runes[i])
		}
	}
	return string(runes)
}
