package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/wordlore/pkg/corpus"
	"github.com/google/go-cmp/cmp"
)

const book = `The Project Gutenberg EBook of Two Chapters

Chapter 1

It is a truth universally acknowledged.

Chapter 2

Mr. Bennet was among the earliest.

End of the Project Gutenberg EBook of Two Chapters
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadBook(t *testing.T) {
	path := writeFile(t, "book.txt", book)
	c, err := LoadBook(path, corpus.DefaultMarkers())
	if err != nil {
		t.Fatalf("LoadBook failed: %v", err)
	}
	if c.Chapters() != 2 {
		t.Errorf("Expected 2 chapters, got %d", c.Chapters())
	}
	if n, ok := c.ChapterOf("Mr. Bennet"); !ok || n != 2 {
		t.Errorf("ChapterOf(Mr. Bennet) = %d, %v; want 2, true", n, ok)
	}
}

func TestLoadBookErrors(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		content      string
		sourceFormat bool
	}{
		{"missing end marker", "book.txt", "Chapter 1\nsome text\n", true},
		{"missing start marker", "book.txt", "Preface only\n", true},
		{"wrong extension", "book.pdf", book, false},
		{"empty file", "book.txt", "", false},
		{"binary content", "book.txt", "\xff\xfe\xfd\xfc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadBook(path, corpus.DefaultMarkers())
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if got := errors.Is(err, corpus.ErrSourceFormat); got != tt.sourceFormat {
				t.Errorf("errors.Is(err, ErrSourceFormat) = %v, want %v (err: %v)", got, tt.sourceFormat, err)
			}
		})
	}
}

func TestLoadBookMissingFile(t *testing.T) {
	_, err := LoadBook(filepath.Join(t.TempDir(), "nope.txt"), corpus.DefaultMarkers())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestLoadCommonWords(t *testing.T) {
	path := writeFile(t, "1-1000.txt", "the\nof\n\n  and \nto\n")
	words, err := LoadCommonWords(path)
	if err != nil {
		t.Fatalf("LoadCommonWords failed: %v", err)
	}
	if diff := cmp.Diff([]string{"the", "of", "and", "to"}, words); diff != "" {
		t.Errorf("LoadCommonWords mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCommonWordsBlank(t *testing.T) {
	path := writeFile(t, "1-1000.txt", "\n \n")
	if _, err := LoadCommonWords(path); !errors.Is(err, corpus.ErrSourceFormat) {
		t.Errorf("Expected ErrSourceFormat, got %v", err)
	}
}
