package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Markers are the literal strings the body extraction and chapter index
// search for.
type Markers struct {
	Start         string
	End           string
	ChapterPrefix string
}

// DefaultMarkers matches Project Gutenberg plain-text releases.
func DefaultMarkers() Markers {
	return Markers{
		Start:         "Chapter 1",
		End:           "End of the Project Gutenberg EBook",
		ChapterPrefix: "Chapter ",
	}
}

const maxLineSize = 1 << 20

// Extract reads raw book text and returns the body between the start line
// and the end-of-book line. The start line itself is kept so the first
// chapter can be located. Every line containing the chapter prefix counts
// as one chapter. Lines are joined with single spaces.
func Extract(r io.Reader, m Markers) (string, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	started := false
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == m.Start {
			started = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return "", 0, fmt.Errorf("reading source: %w", err)
	}
	if !started {
		return "", 0, fmt.Errorf("%w: start marker %q not found", ErrSourceFormat, m.Start)
	}

	var body strings.Builder
	body.WriteString(m.Start)
	body.WriteByte(' ')
	chapters := 1
	ended := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.Contains(line, m.End) {
			ended = true
			break
		}
		if strings.Contains(line, m.ChapterPrefix) {
			chapters++
		}
		body.WriteString(line)
		body.WriteByte(' ')
	}
	if err := scanner.Err(); err != nil {
		return "", 0, fmt.Errorf("reading source: %w", err)
	}
	if !ended {
		return "", 0, fmt.Errorf("%w: end marker %q not found", ErrSourceFormat, m.End)
	}

	log.Debugf("Extracted body: %d bytes, %d chapters", body.Len(), chapters)
	return body.String(), chapters, nil
}
