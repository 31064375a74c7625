// Package suggest provides the prefix structures of wordlore: a sentence
// trie for autocompleting from the first words of a sentence, and a
// frequency-ranked word completer over the reconciled frequency table.
// Both are built on patricia tries.
package suggest

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns suggestions for a given prefix with a limit
	Complete(prefix string, limit int) []Suggestion

	// AddWord adds a word with its frequency to the completer
	AddWord(word string, frequency int)

	// Stats returns statistics about the loaded words
	Stats() map[string]int
}

// IAutocompleter completes whole sentences from their leading tokens.
type IAutocompleter interface {
	Insert(sentence string) bool
	Autocomplete(prefix string) []string
	Len() int
}

var (
	_ ICompleter     = (*Completer)(nil)
	_ IAutocompleter = (*SentenceTrie)(nil)
)
