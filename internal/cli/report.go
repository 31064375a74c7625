package cli

import (
	"fmt"
	"io"

	"github.com/bastiangx/wordlore/pkg/analyzer"
)

// Report prints the standard summary of a book: totals, the most and least
// frequent words, and the most frequent words outside the n most common.
func Report(w io.Writer, book *analyzer.Book, n int) error {
	interesting, err := book.InterestingWords(n)
	if err != nil {
		return err
	}
	lines := []string{
		fmt.Sprintf("Total number of words: %s", formatWithCommas(book.TotalWordCount())),
		fmt.Sprintf("Total number of unique words: %s", formatWithCommas(book.TotalUniqueWordCount())),
		fmt.Sprintf("Most frequent words: %s", FormatEntries(book.TopWords())),
		fmt.Sprintf("Most frequent interesting words: %s", FormatEntries(interesting)),
		fmt.Sprintf("Least frequent words: %s", FormatEntries(book.RareWords())),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s\n\n", line); err != nil {
			return err
		}
	}
	return nil
}
