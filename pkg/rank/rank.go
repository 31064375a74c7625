// Package rank selects the most and least frequent words of a frequency
// table with a deterministic tie-break on the word itself.
package rank

import (
	"container/heap"
	"strings"

	"github.com/bastiangx/wordlore/pkg/freq"
)

// Entry is one ranked word.
type Entry struct {
	Word  string `msgpack:"w"`
	Count int    `msgpack:"n"`
}

// Excluder decides whether a word is skipped during selection.
type Excluder interface {
	Excludes(word string) bool
}

// Set excludes its exact members.
type Set map[string]struct{}

// NewSet builds a Set from words.
func NewSet(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s Set) Excludes(word string) bool {
	_, ok := s[word]
	return ok
}

// CommonWords excludes a word when it, or its upper-cased form, is listed.
// The upper-case check catches entries such as "I".
type CommonWords Set

// NewCommonWords builds the exclusion from an ordered common-word list.
func NewCommonWords(list []string) CommonWords {
	return CommonWords(NewSet(list))
}

func (c CommonWords) Excludes(word string) bool {
	if _, ok := c[word]; ok {
		return true
	}
	_, ok := c[strings.ToUpper(word)]
	return ok
}

// entryHeap orders entries by count (descending when desc is set) then by
// word ascending.
type entryHeap struct {
	entries []Entry
	desc    bool
}

func (h *entryHeap) Len() int { return len(h.entries) }

func (h *entryHeap) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.Count != b.Count {
		if h.desc {
			return a.Count > b.Count
		}
		return a.Count < b.Count
	}
	return a.Word < b.Word
}

func (h *entryHeap) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *entryHeap) Push(x any) { h.entries = append(h.entries, x.(Entry)) }

func (h *entryHeap) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	h.entries = old[:n-1]
	return e
}

// selectK pops entries off a heap of t until k survive ex.
func selectK(t freq.Table, k int, desc bool, ex Excluder) []Entry {
	if k <= 0 {
		return []Entry{}
	}
	h := &entryHeap{entries: make([]Entry, 0, len(t)), desc: desc}
	for w, c := range t {
		h.entries = append(h.entries, Entry{Word: w, Count: c})
	}
	heap.Init(h)

	out := make([]Entry, 0, min(k, len(t)))
	for h.Len() > 0 && len(out) < k {
		e := heap.Pop(h).(Entry)
		if ex != nil && ex.Excludes(e.Word) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// TopK returns up to k entries by count descending, ties by word ascending.
func TopK(t freq.Table, k int) []Entry {
	return selectK(t, k, true, nil)
}

// TopKExcluding is TopK skipping every word ex excludes.
func TopKExcluding(t freq.Table, k int, ex Excluder) []Entry {
	return selectK(t, k, true, ex)
}

// BottomKExcluding returns up to k entries by count ascending, ties by word
// ascending, skipping every word ex excludes.
func BottomKExcluding(t freq.Table, k int, ex Excluder) []Entry {
	return selectK(t, k, false, ex)
}
