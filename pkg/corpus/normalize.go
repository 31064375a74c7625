package corpus

import "strings"

// asciiPunctuation is the ASCII punctuation class. The hyphen is kept out of
// strippedRunes so hyphenated compounds stay one token.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// typographic quotes found in Gutenberg UTF-8 dumps
const curlyQuotes = "‘’“”"

var strippedRunes = func() map[rune]bool {
	set := make(map[rune]bool, len(asciiPunctuation)+len(curlyQuotes))
	for _, r := range asciiPunctuation + curlyQuotes {
		set[r] = true
	}
	delete(set, '-')
	return set
}()

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// IsPunctuation reports whether r is ASCII punctuation or a typographic quote.
func IsPunctuation(r rune) bool {
	return r == '-' || strippedRunes[r]
}

// Normalize turns an extracted body into its two streams.
// punctuated keeps the original spacing and punctuation with line breaks
// collapsed to spaces, normalized additionally treats "--" as a word
// separator and drops every punctuation rune except the hyphen.
// Case is preserved in both.
func Normalize(body string) (normalized, punctuated string) {
	punctuated = newlineReplacer.Replace(body)
	normalized = StripPunctuation(strings.ReplaceAll(punctuated, "--", " "))
	return normalized, punctuated
}

// StripPunctuation removes punctuation runes other than '-' from s.
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strippedRunes[r] {
			return -1
		}
		return r
	}, s)
}
