package suggest

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// separator terminates every token edge. Tokens never contain whitespace,
// so a key prefix ending in separator is exactly a token-path prefix and
// "He" never matches "Hey".
const separator = " "

// SentenceTrie stores sentences token by token. A stored item marks that a
// sentence ends at that node; its value counts how often it was inserted.
type SentenceTrie struct {
	trie      *patricia.Trie
	sentences int
}

func NewSentenceTrie() *SentenceTrie {
	return &SentenceTrie{trie: patricia.NewTrie()}
}

// edgeKey joins tokens, each followed by the separator.
func edgeKey(tokens []string) patricia.Prefix {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok)
		b.WriteString(separator)
	}
	return patricia.Prefix(b.String())
}

// Insert adds a sentence and reports whether it was new. Blank input is
// ignored.
func (s *SentenceTrie) Insert(sentence string) bool {
	tokens := strings.Fields(sentence)
	if len(tokens) == 0 {
		return false
	}
	key := edgeKey(tokens)
	if item := s.trie.Get(key); item != nil {
		s.trie.Set(key, item.(int)+1)
		return false
	}
	s.trie.Insert(key, 1)
	s.sentences++
	return true
}

// Len returns the number of distinct sentences.
func (s *SentenceTrie) Len() int {
	return s.sentences
}

// Autocomplete returns every stored sentence whose leading tokens equal the
// tokens of prefix, sorted ascending. A prefix with no path yields an empty
// result. The last prefix token must match a whole token.
func (s *SentenceTrie) Autocomplete(prefix string) []string {
	results := []string{}
	collect := func(p patricia.Prefix, item patricia.Item) error {
		results = append(results, completeSentence(string(p)))
		return nil
	}

	var err error
	if tokens := strings.Fields(prefix); len(tokens) == 0 {
		err = s.trie.Visit(collect)
	} else {
		err = s.trie.VisitSubtree(edgeKey(tokens), collect)
	}
	if err != nil {
		log.Errorf("Error visiting sentence trie: %v", err)
		return []string{}
	}
	sort.Strings(results)
	return results
}

// completeSentence drops the trailing separator and closes the sentence
// with a period unless it already ends in punctuation.
func completeSentence(key string) string {
	sentence := strings.TrimSuffix(key, separator)
	last, _ := utf8.DecodeLastRuneInString(sentence)
	if unicode.IsPunct(last) {
		return sentence
	}
	return sentence + "."
}
