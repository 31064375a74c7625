package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordlore/internal/logger"
	"github.com/bastiangx/wordlore/internal/utils"
	"github.com/bastiangx/wordlore/pkg/analyzer"
	"github.com/bastiangx/wordlore/pkg/config"
	"github.com/bastiangx/wordlore/pkg/rank"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	codeBadRequest = 400
	codeNotFound   = 404
	codeInternal   = 500
)

// Server answers msgpack requests about one book
type Server struct {
	book       *analyzer.Book
	config     *config.Config
	configPath string
	decoder    *msgpack.Decoder
	encoder    *msgpack.Encoder
	logger     *log.Logger
	requests   int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(book *analyzer.Book, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(book, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over any reader and writer.
func NewServerWithIO(book *analyzer.Book, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		book:       book,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
		logger:     logger.New("server"),
	}
}

// Start signals readiness and serves requests until the input ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			return fmt.Errorf("reading request: %w", err)
		}
		s.requests++
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes one message and dispatches on its action.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.logger.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid request", codeBadRequest)
	}
	s.logger.Debug("Request", "id", req.ID, "action", req.Action)

	start := time.Now()
	switch req.Action {
	case "", "complete":
		return s.handleComplete(req, start)
	case "stats":
		return s.send(StatsResponse{ID: req.ID, Stats: s.book.Stats()})
	case "top":
		return s.sendRank(req.ID, s.book.TopWords(), start)
	case "interesting":
		n := s.config.Analysis.CommonWordCount
		if req.Count != nil {
			n = *req.Count
		}
		entries, err := s.book.InterestingWords(n)
		if err != nil {
			return s.sendQueryError(req.ID, err)
		}
		return s.sendRank(req.ID, entries, start)
	case "rare":
		return s.sendRank(req.ID, s.book.RareWords(), start)
	case "chapter_freq":
		return s.handleChapterFrequency(req, start)
	case "quote":
		chapter, err := s.book.ChapterOf(req.Text)
		if err != nil {
			return s.sendQueryError(req.ID, err)
		}
		return s.send(QuoteResponse{ID: req.ID, Chapter: chapter, TimeTaken: since(start)})
	case "generate":
		sentence, err := s.book.GenerateSentence()
		if err != nil {
			return s.sendQueryError(req.ID, err)
		}
		return s.sendSentences(req.ID, []string{sentence}, start)
	case "autocomplete":
		return s.sendSentences(req.ID, s.book.Autocomplete(req.Text), start)
	case "suggest":
		word, corrected := s.book.Suggest(req.Word)
		return s.send(SuggestResponse{ID: req.ID, Word: word, Corrected: corrected})
	case "config":
		return s.handleConfig(req)
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), codeBadRequest)
	}
}

// handleComplete validates the prefix against the server limits and returns
// ranked word completions.
func (s *Server) handleComplete(req Request, start time.Time) error {
	prefix := strings.TrimSpace(req.Prefix)
	opts := s.config.Server

	length := utf8.RuneCountInString(prefix)
	if length < max(opts.MinPrefix, 1) {
		return s.sendError(req.ID, fmt.Sprintf("prefix must be at least %d characters", max(opts.MinPrefix, 1)), codeBadRequest)
	}
	if length > opts.MaxPrefix {
		return s.sendError(req.ID, fmt.Sprintf("prefix exceeds maximum length of %d characters", opts.MaxPrefix), codeBadRequest)
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.config.CLI.DefaultLimit
	}
	if limit > opts.MaxLimit {
		limit = opts.MaxLimit
	}

	suggestions := []CompletionSuggestion{}
	if !opts.EnableFilter || (utils.IsValidPrefix(prefix) && !utils.IsOnlyNumbers(prefix)) {
		results := s.book.CompleteWord(prefix, limit)
		ranks := utils.CreateRankList(len(results))
		for i, r := range results {
			suggestions = append(suggestions, CompletionSuggestion{Word: r.Word, Rank: ranks[i], Frequency: r.Frequency})
		}
	}

	return s.send(CompletionResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   since(start),
	})
}

// handleChapterFrequency counts word per chapter. A word that never occurs
// gets a spelling suggestion when one exists.
func (s *Server) handleChapterFrequency(req Request, start time.Time) error {
	if !utils.IsValidWord(req.Word) {
		return s.sendError(req.ID, fmt.Sprintf("invalid word: %q", req.Word), codeBadRequest)
	}
	counts := s.book.FrequencyByChapter(req.Word)
	resp := ChapterFrequencyResponse{ID: req.ID, Word: req.Word, Counts: counts}
	for _, n := range counts {
		resp.Total += n
	}
	if resp.Total == 0 {
		if word, ok := s.book.Suggest(req.Word); ok {
			resp.Suggestion = word
		}
	}
	resp.TimeTaken = since(start)
	return s.send(resp)
}

// handleConfig applies server limits and saves them to the config file.
func (s *Server) handleConfig(req Request) error {
	if req.MaxLimit != nil && *req.MaxLimit < 1 {
		return s.sendError(req.ID, "max_limit must be positive", codeBadRequest)
	}
	if req.MinPrefix != nil && req.MaxPrefix != nil && *req.MinPrefix > *req.MaxPrefix {
		return s.sendError(req.ID, "min_prefix exceeds max_prefix", codeBadRequest)
	}
	if err := s.config.Update(s.configPath, req.MaxLimit, req.MinPrefix, req.MaxPrefix, req.EnableFilter); err != nil {
		s.logger.Errorf("Saving config: %v", err)
		return s.sendError(req.ID, "failed to save config", codeInternal)
	}
	s.logger.Debug("Config updated", "server", s.config.Server)
	return s.send(StatusResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) sendRank(id string, entries []rank.Entry, start time.Time) error {
	return s.send(RankResponse{ID: id, Entries: entries, Count: len(entries), TimeTaken: since(start)})
}

func (s *Server) sendSentences(id string, sentences []string, start time.Time) error {
	return s.send(SentenceResponse{ID: id, Sentences: sentences, Count: len(sentences), TimeTaken: since(start)})
}

// sendQueryError maps analyzer errors to response codes.
func (s *Server) sendQueryError(id string, err error) error {
	switch {
	case errors.Is(err, analyzer.ErrInvalidParameter):
		return s.sendError(id, err.Error(), codeBadRequest)
	case errors.Is(err, analyzer.ErrNotFound):
		return s.sendError(id, err.Error(), codeNotFound)
	default:
		s.logger.Errorf("Query %s failed: %v", id, err)
		return s.sendError(id, "internal error", codeInternal)
	}
}

func (s *Server) sendError(id, message string, code int) error {
	s.logger.Debug("Error response", "id", id, "code", code, "error", message)
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

// send encodes one response. A write failure ends the session.
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

// since returns the elapsed time in microseconds.
func since(start time.Time) int64 {
	return time.Since(start).Microseconds()
}
