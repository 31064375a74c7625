/*
Package corpus holds the two text streams a book is analyzed through and the
chapter index over each of them.

A Corpus is built once from the extracted body text:

	body, chapters, err := corpus.Extract(file, corpus.DefaultMarkers())
	c, err := corpus.New(body, chapters, corpus.DefaultMarkers())

The normalized stream has punctuation stripped (hyphens kept) and backs every
frequency query. The punctuated stream keeps the author's punctuation and
backs quote search, sentence splitting and generation. Neither changes after
construction.
*/
package corpus

import (
	"fmt"
	"io"
	"strings"
)

// Corpus is the immutable, analyzed form of one book.
type Corpus struct {
	normalized string
	punctuated string
	chapters   int
	markers    Markers

	normalizedIdx []Chapter
	punctuatedIdx []Chapter
}

// New normalizes body and indexes its chapters in both streams.
// It fails with ErrSourceFormat when a chapter heading cannot be found.
func New(body string, chapters int, m Markers) (*Corpus, error) {
	normalized, punctuated := Normalize(body)

	normIdx, err := Boundaries(normalized, chapters, m.ChapterPrefix, m.End)
	if err != nil {
		return nil, fmt.Errorf("indexing normalized text: %w", err)
	}
	puncIdx, err := Boundaries(punctuated, chapters, m.ChapterPrefix, m.End)
	if err != nil {
		return nil, fmt.Errorf("indexing punctuated text: %w", err)
	}

	return &Corpus{
		normalized:    normalized,
		punctuated:    punctuated,
		chapters:      chapters,
		markers:       m,
		normalizedIdx: normIdx,
		punctuatedIdx: puncIdx,
	}, nil
}

// Parse extracts the body from r and builds a Corpus from it.
func Parse(r io.Reader, m Markers) (*Corpus, error) {
	body, chapters, err := Extract(r, m)
	if err != nil {
		return nil, err
	}
	return New(body, chapters, m)
}

func (c *Corpus) Normalized() string { return c.normalized }
func (c *Corpus) Punctuated() string { return c.punctuated }
func (c *Corpus) Chapters() int      { return c.chapters }
func (c *Corpus) Markers() Markers   { return c.markers }

// Tokens splits the normalized stream on whitespace.
func (c *Corpus) Tokens() []string {
	return strings.Fields(c.normalized)
}

// PunctuatedTokens splits the punctuated stream on whitespace.
func (c *Corpus) PunctuatedTokens() []string {
	return strings.Fields(c.punctuated)
}

// Boundaries returns a copy of the chapter index of one stream.
func (c *Corpus) Boundaries(punctuated bool) []Chapter {
	idx := c.normalizedIdx
	if punctuated {
		idx = c.punctuatedIdx
	}
	out := make([]Chapter, len(idx))
	copy(out, idx)
	return out
}

// ChapterText returns chapter n (1-based) of the chosen stream.
func (c *Corpus) ChapterText(n int, punctuated bool) (string, bool) {
	if n < 1 || n > c.chapters {
		return "", false
	}
	if punctuated {
		return c.punctuatedIdx[n-1].span(c.punctuated), true
	}
	return c.normalizedIdx[n-1].span(c.normalized), true
}

// FrequencyByChapter counts exact, case-sensitive occurrences of word in
// each chapter of the normalized stream. The result has one entry per chapter.
func (c *Corpus) FrequencyByChapter(word string) []int {
	counts := make([]int, len(c.normalizedIdx))
	for i, ch := range c.normalizedIdx {
		counts[i] = countToken(ch.span(c.normalized), word)
	}
	return counts
}

// ChapterOf returns the first chapter whose punctuated text contains quote
// verbatim. Matching is case-sensitive and includes the corpus' own quote
// characters. An empty quote is never found.
func (c *Corpus) ChapterOf(quote string) (int, bool) {
	if strings.TrimSpace(quote) == "" {
		return 0, false
	}
	for _, ch := range c.punctuatedIdx {
		if strings.Contains(ch.span(c.punctuated), quote) {
			return ch.Number, true
		}
	}
	return 0, false
}
