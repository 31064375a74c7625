// Package freq counts word occurrences and reconciles case variants of the
// same word into one entry.
package freq

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Table maps a case-sensitive token to its occurrence count.
type Table map[string]int

// Build counts whitespace-delimited tokens of normalized text.
func Build(normalized string) Table {
	t := make(Table)
	for _, tok := range strings.Fields(normalized) {
		t[tok]++
	}
	return t
}

// Total returns the sum of all counts.
func (t Table) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for w, c := range t {
		out[w] = c
	}
	return out
}

// merge moves from's count onto into and removes from.
func (t Table) merge(from, into string) {
	t[into] += t[from]
	delete(t, from)
}

// Reconcile runs both case passes on t in place. Total count is unchanged
// and a second call has no effect.
func Reconcile(t Table) {
	before := len(t)
	MergeSentenceCase(t)
	MergeAllCaps(t)
	log.Debugf("Reconciled frequency table: %d -> %d entries", before, len(t))
}

// MergeSentenceCase folds a capitalized word into its lowercase-initial twin
// when both spellings occur. Seeing both means the capital came from
// sentence position, not from a proper noun. Words with only one spelling
// ("Darcy") are left alone.
func MergeSentenceCase(t Table) {
	for _, w := range keys(t) {
		lower, upper, ok := flipFirst(w)
		if !ok {
			continue
		}
		_, hasLower := t[lower]
		_, hasUpper := t[upper]
		if hasLower && hasUpper {
			t.merge(upper, lower)
		}
	}
}

// MergeAllCaps folds emphatic all-caps spellings (at least two runes) into
// the capitalized form when it exists, else into the all-lowercase form.
// An all-caps word with neither counterpart, such as an acronym, stays.
func MergeAllCaps(t Table) {
	for _, w := range keys(t) {
		if _, ok := t[w]; !ok || !isAllCaps(w) {
			continue
		}
		lower := strings.ToLower(w)
		capitalized := capitalize(lower)
		if _, ok := t[capitalized]; ok && capitalized != w {
			t.merge(w, capitalized)
		} else if _, ok := t[lower]; ok && lower != w {
			t.merge(w, lower)
		}
	}
}

// ChapterNumberTokens returns "1".."n", the heading numerals that end up as
// tokens in the normalized stream.
func ChapterNumberTokens(n int) []string {
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, strconv.Itoa(i))
	}
	return out
}

// keys snapshots the key set so passes can delete while iterating.
func keys(t Table) []string {
	out := make([]string, 0, len(t))
	for w := range t {
		out = append(out, w)
	}
	return out
}

// flipFirst returns w with its first rune lowered and raised. ok is false
// when the first rune has no case.
func flipFirst(w string) (lower, upper string, ok bool) {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return "", "", false
	}
	lr, ur := unicode.ToLower(r), unicode.ToUpper(r)
	if lr == ur {
		return "", "", false
	}
	rest := w[size:]
	return string(lr) + rest, string(ur) + rest, true
}

func isAllCaps(w string) bool {
	if utf8.RuneCountInString(w) < 2 {
		return false
	}
	hasUpper := false
	for _, r := range w {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
