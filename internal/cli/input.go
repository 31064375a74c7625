// Package cli is an interactive line interface over an analyzed book, for
// exploring a text and for debugging queries before using the server.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordlore/internal/logger"
	"github.com/bastiangx/wordlore/internal/utils"
	"github.com/bastiangx/wordlore/pkg/analyzer"
	"github.com/bastiangx/wordlore/pkg/config"
	"github.com/bastiangx/wordlore/pkg/rank"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

const help = `commands:
  <prefix>            complete a word
  :stats              chapter and word totals
  :top                most frequent words
  :interesting [n]    most frequent words outside the n most common
  :rare               least frequent words
  :freq <word>        occurrences per chapter
  :quote <text>       chapter containing a quote
  :auto <prefix>      sentences starting with prefix
  :gen                generate a sentence
  :help               this text
  :quit               exit`

// InputHandler reads commands line by line and prints the answers.
type InputHandler struct {
	book            *analyzer.Book
	suggestLimit    int
	commonWordCount int
	showCorrections bool
	in              io.Reader
	out             *log.Logger
}

// NewInputHandler creates a handler reading from in and printing to out.
func NewInputHandler(book *analyzer.Book, cfg *config.Config, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		book:            book,
		suggestLimit:    cfg.CLI.DefaultLimit,
		commonWordCount: cfg.Analysis.CommonWordCount,
		showCorrections: cfg.CLI.ShowCorrections,
		in:              in,
		out:             logger.NewWithConfig("", out, log.InfoLevel, false, false, log.TextFormatter),
	}
}

// Start begins the interface loop. It returns nil at end of input or on
// :quit, and the read error otherwise.
func (h *InputHandler) Start() error {
	h.out.Print("wordlore CLI")
	h.out.Print("type a prefix or a command and press Enter (:help for commands, Ctrl+C to exit):")

	reader := bufio.NewReader(h.in)
	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			if quit := h.handleInput(line); quit {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput runs one line and reports whether the session should end.
func (h *InputHandler) handleInput(line string) bool {
	if !strings.HasPrefix(line, ":") {
		h.complete(line)
		return false
	}

	command, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	start := time.Now()
	switch command {
	case "quit", "q", "exit":
		return true
	case "help", "h":
		h.out.Print(help)
	case "stats":
		stats := h.book.Stats()
		h.out.Printf("Chapters: %d", stats.Chapters)
		h.out.Printf("Total number of words: %s", formatWithCommas(stats.Words))
		h.out.Printf("Total number of unique words: %s", formatWithCommas(stats.UniqueWords))
		h.out.Printf("Sentences indexed: %s", formatWithCommas(stats.Sentences))
	case "top":
		h.printEntries("Most frequent words", h.book.TopWords())
	case "interesting":
		h.interesting(arg)
	case "rare":
		h.printEntries("Least frequent words", h.book.RareWords())
	case "freq":
		h.frequency(arg)
	case "quote":
		h.quote(arg)
	case "auto":
		h.autocomplete(arg)
	case "gen":
		sentence, err := h.book.GenerateSentence()
		if err != nil {
			h.out.Errorf("Could not generate a sentence: %v", err)
			break
		}
		h.out.Printf("Generated sentence: %s", sentence)
	default:
		h.out.Errorf("Unknown command %q, try :help", command)
	}
	log.Debugf("Took %v for %q", time.Since(start), line)
	return false
}

func (h *InputHandler) complete(prefix string) {
	if !utils.IsValidPrefix(prefix) || utils.IsOnlyNumbers(prefix) {
		h.out.Warnf("No suggestions found for prefix: '%s' (filtered out)", prefix)
		return
	}
	suggestions := h.book.CompleteWord(prefix, h.suggestLimit)
	if len(suggestions) == 0 {
		h.out.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}
	h.out.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		h.out.Printf("%2d. %-30s (freq: %8s)", i+1, wordStyle.Render(s.Word), formatWithCommas(s.Frequency))
	}
}

func (h *InputHandler) interesting(arg string) {
	n := h.commonWordCount
	if arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil {
			h.out.Errorf("Not a number: %q", arg)
			return
		}
		n = parsed
	}
	entries, err := h.book.InterestingWords(n)
	if err != nil {
		h.out.Errorf("Error: %v", err)
		return
	}
	h.printEntries(fmt.Sprintf("Most frequent words outside the %d most common", n), entries)
}

func (h *InputHandler) frequency(word string) {
	if !utils.IsValidWord(word) {
		h.out.Errorf("Give a single word, e.g. :freq Darcy")
		return
	}
	counts := h.book.FrequencyByChapter(word)
	h.out.Printf("Frequency of the word %q by chapter: %v", word, counts)

	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 && h.showCorrections {
		if suggestion, ok := h.book.Suggest(word); ok {
			h.out.Printf("Did you mean %s?", wordStyle.Render(suggestion))
		}
	}
}

func (h *InputHandler) quote(text string) {
	chapter, err := h.book.ChapterOf(text)
	if err != nil {
		h.out.Errorf("Quote %q cannot be found.", text)
		return
	}
	h.out.Printf("Quote %q appears in: Chapter %d", text, chapter)
}

func (h *InputHandler) autocomplete(prefix string) {
	sentences := h.book.Autocomplete(prefix)
	if len(sentences) == 0 {
		h.out.Warnf("No sentences start with %q", prefix)
		return
	}
	limit := len(sentences)
	if h.suggestLimit > 0 && limit > h.suggestLimit {
		limit = h.suggestLimit
	}
	h.out.Printf("%d sentences start with %q:", len(sentences), prefix)
	for i, s := range sentences[:limit] {
		h.out.Printf("%2d. %s", i+1, s)
	}
	if limit < len(sentences) {
		h.out.Printf("... and %d more", len(sentences)-limit)
	}
}

func (h *InputHandler) printEntries(title string, entries []rank.Entry) {
	h.out.Printf("%s: %s", title, FormatEntries(entries))
}

// FormatEntries renders entries as "word (count)" pairs in rank order.
func FormatEntries(entries []rank.Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s (%s)", e.Word, formatWithCommas(e.Count))
	}
	return strings.Join(parts, ", ")
}

// formatWithCommas formats an integer with comma separators
func formatWithCommas(n int) string {
	str := strconv.Itoa(n)
	if n < 1000 && n > -1000 {
		return str
	}
	sign := ""
	if n < 0 {
		sign, str = "-", str[1:]
	}
	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return sign + b.String()
}
