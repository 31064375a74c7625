package suggest

import (
	"sort"
	"strings"

	"github.com/bastiangx/wordlore/internal/utils"
	"github.com/bastiangx/wordlore/pkg/freq"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

type Suggestion struct {
	Word      string
	Frequency int
}

// Completer completes single words from a frequency table. Lookup is
// case-insensitive: case variants share one lowercase key holding their
// combined count, and are shown in their most frequent spelling.
type Completer struct {
	trie         *patricia.Trie
	spellings    map[string]string
	spellingFreq map[string]int
	totalWords   int
	maxFrequency int
	minFrequency int
}

// NewCompleter creates an empty completer. Words below minFrequency are
// never suggested.
func NewCompleter(minFrequency int) *Completer {
	return &Completer{
		trie:         patricia.NewTrie(),
		spellings:    make(map[string]string),
		spellingFreq: make(map[string]int),
		minFrequency: minFrequency,
	}
}

// NewCompleterFromTable loads every entry of a reconciled table.
func NewCompleterFromTable(t freq.Table, minFrequency int) *Completer {
	c := NewCompleter(minFrequency)
	for word, count := range t {
		c.AddWord(word, count)
	}
	log.Debugf("Word completer loaded %d words (%d keys)", c.totalWords, len(c.spellings))
	return c
}

func (c *Completer) AddWord(word string, frequency int) {
	if word == "" || frequency <= 0 {
		return
	}
	key := strings.ToLower(word)
	combined := frequency
	if item := c.trie.Get(patricia.Prefix(key)); item != nil {
		combined += item.(int)
	}
	c.trie.Set(patricia.Prefix(key), combined)

	best, seen := c.spellings[key]
	if !seen || frequency > c.spellingFreq[key] || (frequency == c.spellingFreq[key] && word < best) {
		c.spellings[key] = word
		c.spellingFreq[key] = frequency
	}

	c.totalWords++
	if combined > c.maxFrequency {
		c.maxFrequency = combined
	}
}

// Complete returns up to limit words starting with prefix, most frequent
// first and ties alphabetical. The prefix itself is not suggested. Capitals
// typed in the prefix are kept in the suggestion.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	lowerPrefix := strings.ToLower(prefix)
	if lowerPrefix == "" {
		return []Suggestion{}
	}
	capitalPositions := utils.CapitalPositions(prefix)
	filter := utils.NewSuggestionFilter(prefix)

	var suggestions []Suggestion
	err := c.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		key := string(p)
		count := item.(int)
		if count < c.minFrequency || !filter.ShouldInclude(key) {
			return nil
		}
		suggestions = append(suggestions, Suggestion{
			Word:      utils.ApplyCapitals(c.spellings[key], capitalPositions),
			Frequency: count,
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Word < suggestions[j].Word
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func (c *Completer) Stats() map[string]int {
	return map[string]int{
		"totalWords":   c.totalWords,
		"uniqueKeys":   len(c.spellings),
		"maxFrequency": c.maxFrequency,
	}
}
