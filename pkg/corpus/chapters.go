package corpus

import (
	"fmt"
	"strconv"
	"strings"
)

// Chapter is one chapter's byte span inside a text stream.
type Chapter struct {
	Number int
	Start  int
	End    int
}

// Boundaries locates chapters 1..total in text by literal search for
// prefix+N. A chapter ends where the next heading starts; the last one ends
// at endMarker when present, otherwise at the end of text.
//
// The search is a plain substring match, so the word "Chapter" followed by
// a number inside narrative prose can shift a boundary. That is accepted.
func Boundaries(text string, total int, prefix, endMarker string) ([]Chapter, error) {
	if total < 1 {
		return nil, fmt.Errorf("%w: no chapters", ErrSourceFormat)
	}

	chapters := make([]Chapter, 0, total)
	start := strings.Index(text, prefix+"1")
	if start < 0 {
		return nil, fmt.Errorf("%w: heading %q not found", ErrSourceFormat, prefix+"1")
	}

	for i := 1; i <= total; i++ {
		var end int
		if i == total {
			end = len(text)
			if endMarker != "" {
				if off := strings.Index(text[start:], endMarker); off >= 0 {
					end = start + off
				}
			}
		} else {
			heading := prefix + strconv.Itoa(i+1)
			off := strings.Index(text[start:], heading)
			if off < 0 {
				return nil, fmt.Errorf("%w: heading %q not found", ErrSourceFormat, heading)
			}
			end = start + off
		}
		chapters = append(chapters, Chapter{Number: i, Start: start, End: end})
		start = end
	}
	return chapters, nil
}

// span returns the chapter's substring of text.
func (c Chapter) span(text string) string {
	return text[c.Start:c.End]
}

// countToken counts exact whitespace-delimited occurrences of word in s.
func countToken(s, word string) int {
	n := 0
	for _, tok := range strings.Fields(s) {
		if tok == word {
			n++
		}
	}
	return n
}
