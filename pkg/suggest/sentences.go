package suggest

import (
	"strings"
	"unicode/utf8"
)

// closers may trail a sentence-final mark, as in `said.”` or `(see above.)`.
const closers = "\"'”’)]"

// abbreviations end in a period without ending the sentence.
var abbreviations = map[string]bool{
	"Mr.": true, "Mrs.": true, "Ms.": true, "Dr.": true, "St.": true,
	"Messrs.": true, "Col.": true, "Capt.": true, "Rev.": true,
}

// endsSentence reports whether tok closes a sentence.
func endsSentence(tok string) bool {
	if abbreviations[tok] {
		return false
	}
	trimmed := strings.TrimRight(tok, closers)
	if trimmed == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	return last == '.' || last == '!' || last == '?'
}

// SplitSentences splits punctuated text into sentences at tokens ending in
// '.', '!' or '?', optionally followed by closing quotes. Spacing is
// normalized to single spaces. Trailing text without a final mark becomes
// the last sentence.
func SplitSentences(text string) []string {
	var sentences []string
	var current []string
	for _, tok := range strings.Fields(text) {
		current = append(current, tok)
		if endsSentence(tok) {
			sentences = append(sentences, strings.Join(current, " "))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, strings.Join(current, " "))
	}
	return sentences
}
