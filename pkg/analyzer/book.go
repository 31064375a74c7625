/*
Package analyzer answers every query wordlore supports about one book.

A Book is assembled once from a parsed Corpus and the common words list, and
is read-only afterwards:

	c, err := source.LoadBook(path, markers)
	book := analyzer.New(c, commonWords, cfg.Analysis, nil)
	top := book.TopWords()

Construction reconciles the frequency table, fills the sentence trie chapter
by chapter, indexes word successors for generation, and loads the word
completer and spelling matcher. Queries do not modify any of them, except
that sentence generation advances the random source.
*/
package analyzer

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordlore/pkg/config"
	"github.com/bastiangx/wordlore/pkg/corpus"
	"github.com/bastiangx/wordlore/pkg/freq"
	"github.com/bastiangx/wordlore/pkg/fuzzy"
	"github.com/bastiangx/wordlore/pkg/markov"
	"github.com/bastiangx/wordlore/pkg/rank"
	"github.com/bastiangx/wordlore/pkg/suggest"
	"github.com/charmbracelet/log"
)

var wordPattern = regexp.MustCompile(`\w+`)

// Book is an analyzed book.
type Book struct {
	corpus      *corpus.Corpus
	table       freq.Table
	commonWords []string
	numerals    rank.Set

	sentences suggest.IAutocompleter
	completer suggest.ICompleter
	matcher   *fuzzy.Matcher
	generator *markov.Generator

	cfg         config.AnalysisConfig
	wordCount   int
	uniqueCount int
}

// Stats summarizes a Book.
type Stats struct {
	Chapters     int `msgpack:"chapters"`
	Words        int `msgpack:"words"`
	UniqueWords  int `msgpack:"unique_words"`
	TableEntries int `msgpack:"table_entries"`
	Sentences    int `msgpack:"sentences"`
}

// New analyzes c. commonWords is the ordered list interesting-word queries
// draw their exclusions from. A nil src seeds generation from cfg.Seed, or
// from the clock when the seed is zero.
func New(c *corpus.Corpus, commonWords []string, cfg config.AnalysisConfig, src rand.Source) *Book {
	if src == nil {
		seed := int64(cfg.Seed)
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		src = rand.NewSource(seed)
	}

	start := time.Now()
	table := freq.Build(c.Normalized())
	freq.Reconcile(table)

	b := &Book{
		corpus:      c,
		table:       table,
		commonWords: commonWords,
		numerals:    rank.NewSet(freq.ChapterNumberTokens(c.Chapters())),
		sentences:   buildSentences(c),
		completer:   suggest.NewCompleterFromTable(table, cfg.MinFrequency),
		matcher:     fuzzy.NewMatcher(table),
		generator:   markov.New(c.PunctuatedTokens(), src),
		cfg:         cfg,
		wordCount:   len(wordPattern.FindAllStringIndex(c.Normalized(), -1)),
		uniqueCount: countUnique(c.Normalized()),
	}
	log.Debugf("Analyzed book in %v: %d entries, %d sentences", time.Since(start), len(table), b.sentences.Len())
	return b
}

// buildSentences inserts the sentences of every chapter, heading excluded.
func buildSentences(c *corpus.Corpus) *suggest.SentenceTrie {
	trie := suggest.NewSentenceTrie()
	prefix := c.Markers().ChapterPrefix
	for n := 1; n <= c.Chapters(); n++ {
		text, ok := c.ChapterText(n, true)
		if !ok {
			continue
		}
		text = strings.TrimPrefix(text, prefix+strconv.Itoa(n))
		for _, s := range suggest.SplitSentences(text) {
			trie.Insert(s)
		}
	}
	return trie
}

func countUnique(normalized string) int {
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(normalized) {
		seen[strings.ToLower(tok)] = struct{}{}
	}
	return len(seen)
}

func (b *Book) TotalChapters() int { return b.corpus.Chapters() }

// TotalWordCount counts runs of word characters in the normalized text, so
// a hyphenated compound counts once per part.
func (b *Book) TotalWordCount() int { return b.wordCount }

// TotalUniqueWordCount counts case-insensitively distinct tokens.
func (b *Book) TotalUniqueWordCount() int { return b.uniqueCount }

// Count returns the reconciled count of word.
func (b *Book) Count(word string) int { return b.table[word] }

// TopWords returns the most frequent words.
func (b *Book) TopWords() []rank.Entry {
	return rank.TopK(b.table, b.cfg.RankLimit)
}

// InterestingWords returns the most frequent words outside the n most
// common English words. n must lie in [0, MaxCommonWords]; a list shorter
// than n is used whole.
func (b *Book) InterestingWords(n int) ([]rank.Entry, error) {
	if n < 0 || n > b.cfg.MaxCommonWords {
		return nil, fmt.Errorf("%w: common word count %d outside [0, %d]", ErrInvalidParameter, n, b.cfg.MaxCommonWords)
	}
	if n > len(b.commonWords) {
		log.Warnf("Only %d common words loaded, using all of them instead of %d", len(b.commonWords), n)
		n = len(b.commonWords)
	}
	return rank.TopKExcluding(b.table, b.cfg.RankLimit, rank.NewCommonWords(b.commonWords[:n])), nil
}

// RareWords returns the least frequent words, chapter numerals excluded.
func (b *Book) RareWords() []rank.Entry {
	return rank.BottomKExcluding(b.table, b.cfg.RankLimit, b.numerals)
}

// FrequencyByChapter returns the occurrences of word in each chapter.
func (b *Book) FrequencyByChapter(word string) []int {
	return b.corpus.FrequencyByChapter(word)
}

// ChapterOf returns the first chapter containing quote verbatim.
func (b *Book) ChapterOf(quote string) (int, error) {
	n, ok := b.corpus.ChapterOf(quote)
	if !ok {
		return 0, fmt.Errorf("%w: quote %q", ErrNotFound, quote)
	}
	return n, nil
}

// GenerateSentence imitates the author with a sentence of the configured
// length, starting from the configured start word.
func (b *Book) GenerateSentence() (string, error) {
	sentence, err := b.generator.Sentence(b.cfg.StartWord, b.cfg.SentenceBudget)
	switch {
	case errors.Is(err, markov.ErrNoSuccessor):
		return "", fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, markov.ErrBadBudget):
		return "", fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	case err != nil:
		return "", err
	}
	return sentence, nil
}

// Autocomplete returns every sentence of the book that starts with the
// tokens of prefix, sorted. It is empty when no sentence matches.
func (b *Book) Autocomplete(prefix string) []string {
	return b.sentences.Autocomplete(prefix)
}

// CompleteWord returns up to limit words beginning with prefix, most
// frequent first.
func (b *Book) CompleteWord(prefix string, limit int) []suggest.Suggestion {
	return b.completer.Complete(prefix, limit)
}

// Suggest returns the likely intended spelling of a word absent from the
// book, and whether one was found.
func (b *Book) Suggest(word string) (string, bool) {
	return b.matcher.SuggestCorrection(word)
}

func (b *Book) Stats() Stats {
	return Stats{
		Chapters:     b.corpus.Chapters(),
		Words:        b.wordCount,
		UniqueWords:  b.uniqueCount,
		TableEntries: len(b.table),
		Sentences:    b.sentences.Len(),
	}
}
