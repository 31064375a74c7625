// Package fuzzy suggests the intended spelling of a query word that does
// not occur in the text.
//
// preference: `exact match > case-insensitive match > most frequent word > levenshtein distance`
package fuzzy

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// MaxEditDistance bounds how far a correction may be from the input.
	MaxEditDistance = 2
	// minCorrectable is the shortest input worth correcting.
	minCorrectable = 3
)

// Matcher handles approximate matching against a word frequency map.
type Matcher struct {
	words    []string
	wordFreq map[string]int
}

// NewMatcher creates a matcher over words and their counts.
func NewMatcher(words map[string]int) *Matcher {
	wordList := make([]string, 0, len(words))
	for word := range words {
		wordList = append(wordList, word)
	}
	sort.Strings(wordList)
	return &Matcher{words: wordList, wordFreq: words}
}

type candidate struct {
	word     string
	freq     int
	distance int
}

// SuggestCorrection returns the most likely spelling for input and whether
// it differs from input. Inputs that occur verbatim, or are shorter than
// three runes, are returned unchanged.
func (m *Matcher) SuggestCorrection(input string) (string, bool) {
	if _, ok := m.wordFreq[input]; ok {
		return input, false
	}
	if utf8.RuneCountInString(input) < minCorrectable {
		return input, false
	}

	lowerInput := strings.ToLower(input)
	first, _ := utf8.DecodeRuneInString(lowerInput)

	var exact, near []candidate
	for _, word := range m.words {
		lowerWord := strings.ToLower(word)
		if lowerWord == lowerInput {
			exact = append(exact, candidate{word, m.wordFreq[word], 0})
			continue
		}
		// first letter heuristic
		if r, _ := utf8.DecodeRuneInString(lowerWord); r != first {
			continue
		}
		if abs(utf8.RuneCountInString(lowerWord)-utf8.RuneCountInString(lowerInput)) > MaxEditDistance {
			continue
		}
		if d := levenshteinDistance(lowerInput, lowerWord); d <= MaxEditDistance {
			near = append(near, candidate{word, m.wordFreq[word], d})
		}
	}

	pool := exact
	if len(pool) == 0 {
		pool = near
	}
	if len(pool) == 0 {
		return input, false
	}
	sort.Slice(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if a.freq != b.freq {
			return a.freq > b.freq
		}
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		return a.word < b.word
	})
	return pool[0].word, true
}

// levenshteinDistance counts single-rune insertions, deletions and
// substitutions between a and b.
func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
