package corpus

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleBook = `The Project Gutenberg EBook of a Sample
Some front matter.

Chapter 1

It is a truth universally acknowledged, that a single man
in possession of a good fortune--must be in want of a wife.

Chapter 2

“My dear Mr. Bennet,” said his lady to him one day, “have you
heard that Netherfield Park is let at last?” The man was a well-to-do man.

Chapter 3

Not all that Mrs. Bennet could ask was sufficient. The END.

End of the Project Gutenberg EBook of a Sample
License text.
`

func parseSample(t *testing.T) *Corpus {
	t.Helper()
	c, err := Parse(strings.NewReader(sampleBook), DefaultMarkers())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return c
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		normalized string
		punctuated string
	}{
		{"double hyphen splits", "fortune--must", "fortune must", "fortune--must"},
		{"hyphen kept", "well-to-do man.", "well-to-do man", "well-to-do man."},
		{"curly quotes stripped", "“My dear,” she said", "My dear she said", "“My dear,” she said"},
		{"apostrophe stripped", "Darcy's", "Darcys", "Darcy's"},
		{"newlines collapse", "one\ntwo\r\nthree", "one two three", "one two three"},
		{"case kept", "The THE the", "The THE the", "The THE the"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, p := Normalize(tt.body)
			if n != tt.normalized {
				t.Errorf("normalized = %q, want %q", n, tt.normalized)
			}
			if p != tt.punctuated {
				t.Errorf("punctuated = %q, want %q", p, tt.punctuated)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	body, chapters, err := Extract(strings.NewReader(sampleBook), DefaultMarkers())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if chapters != 3 {
		t.Errorf("chapters = %d, want 3", chapters)
	}
	if !strings.HasPrefix(body, "Chapter 1 ") {
		t.Errorf("body should start at the first heading, got %q", body[:20])
	}
	if strings.Contains(body, "front matter") || strings.Contains(body, "License") {
		t.Error("body contains front or back matter")
	}
	if strings.Contains(body, "\n") {
		t.Error("body contains line breaks")
	}
}

func TestExtractMissingMarkers(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no start", "Preface\nsome text\nEnd of the Project Gutenberg EBook\n"},
		{"no end", "Chapter 1\nsome text\nChapter 2\nmore\n"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Extract(strings.NewReader(tt.text), DefaultMarkers())
			if !errors.Is(err, ErrSourceFormat) {
				t.Errorf("err = %v, want ErrSourceFormat", err)
			}
		})
	}
}

func TestBoundaries(t *testing.T) {
	text := "Chapter 1 aaa Chapter 2 bb Chapter 3 c END"
	got, err := Boundaries(text, 3, "Chapter ", "END")
	if err != nil {
		t.Fatalf("Boundaries: %v", err)
	}
	want := []Chapter{
		{Number: 1, Start: 0, End: 14},
		{Number: 2, Start: 14, End: 27},
		{Number: 3, Start: 27, End: 39},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Boundaries mismatch (-want +got):\n%s", diff)
	}

	if _, err := Boundaries(text, 4, "Chapter ", "END"); !errors.Is(err, ErrSourceFormat) {
		t.Errorf("missing heading: err = %v, want ErrSourceFormat", err)
	}
	if _, err := Boundaries(text, 0, "Chapter ", "END"); !errors.Is(err, ErrSourceFormat) {
		t.Errorf("zero chapters: err = %v, want ErrSourceFormat", err)
	}
}

func TestBoundariesWithoutEndMarker(t *testing.T) {
	text := "Chapter 1 x Chapter 2 y"
	got, err := Boundaries(text, 2, "Chapter ", "END")
	if err != nil {
		t.Fatalf("Boundaries: %v", err)
	}
	if last := got[len(got)-1]; last.End != len(text) {
		t.Errorf("last chapter end = %d, want %d", last.End, len(text))
	}
}

func TestFrequencyByChapter(t *testing.T) {
	c := parseSample(t)

	got := c.FrequencyByChapter("man")
	if diff := cmp.Diff([]int{1, 2, 0}, got); diff != "" {
		t.Errorf("man (-want +got):\n%s", diff)
	}

	// case-sensitive
	if got := c.FrequencyByChapter("Man"); !cmp.Equal([]int{0, 0, 0}, got) {
		t.Errorf("Man = %v, want all zero", got)
	}
}

func TestFrequencyByChapterCoversText(t *testing.T) {
	c := parseSample(t)
	for _, word := range []string{"a", "The", "Bennet", "Chapter", "of"} {
		counts := c.FrequencyByChapter(word)
		if len(counts) != c.Chapters() {
			t.Fatalf("%s: %d entries, want %d", word, len(counts), c.Chapters())
		}
		sum := 0
		for _, n := range counts {
			sum += n
		}
		if want := countToken(c.Normalized(), word); sum != want {
			t.Errorf("%s: chapter sum %d, want %d", word, sum, want)
		}
	}
}

func TestChapterOf(t *testing.T) {
	c := parseSample(t)
	tests := []struct {
		quote   string
		chapter int
		found   bool
	}{
		{"a single man", 1, true},
		{"“My dear Mr. Bennet,”", 2, true},
		{"Netherfield Park is let", 2, true},
		{"could ask was sufficient.", 3, true},
		{"netherfield park", 0, false},
		{"xyz-not-present", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.quote, func(t *testing.T) {
			n, ok := c.ChapterOf(tt.quote)
			if n != tt.chapter || ok != tt.found {
				t.Errorf("ChapterOf(%q) = %d, %v; want %d, %v", tt.quote, n, ok, tt.chapter, tt.found)
			}
		})
	}
}

func TestChapterText(t *testing.T) {
	c := parseSample(t)
	text, ok := c.ChapterText(2, true)
	if !ok || !strings.HasPrefix(text, "Chapter 2") {
		t.Errorf("ChapterText(2) = %q, %v", text, ok)
	}
	if _, ok := c.ChapterText(4, false); ok {
		t.Error("ChapterText(4) should not exist")
	}
	if _, ok := c.ChapterText(0, false); ok {
		t.Error("ChapterText(0) should not exist")
	}
}
