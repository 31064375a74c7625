/*
Package source reads the files wordlore analyzes: the book itself and the
ordered list of the most common English words.

Both are read once, validated, and handed to the analyzer as in-memory
values. Nothing here is re-read or written after startup.
*/
package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/wordlore/pkg/corpus"
	"github.com/charmbracelet/log"
)

// LoadBook reads a book and builds its Corpus. A file that lacks the start
// or end marker, or a chapter heading, fails with corpus.ErrSourceFormat.
func LoadBook(path string, m corpus.Markers) (*corpus.Corpus, error) {
	if err := ValidateFileFormat(path, FormatBook); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open book %s: %w", path, err)
	}
	defer file.Close()

	c, err := corpus.Parse(file, m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse book %s: %w", path, err)
	}
	log.Debugf("Loaded book %s: %d chapters", path, c.Chapters())
	return c, nil
}

// LoadCommonWords reads one word per line, keeping file order. Blank lines
// are skipped and surrounding whitespace trimmed.
func LoadCommonWords(path string) ([]string, error) {
	if err := ValidateFileFormat(path, FormatWordList); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: word list %s is empty", corpus.ErrSourceFormat, path)
	}
	log.Debugf("Loaded %d common words from %s", len(words), path)
	return words, nil
}
