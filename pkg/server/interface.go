/*
Package server implements msgpack IPC for book analysis queries.

Clients write msgpack maps to stdin and read one msgpack map per request from
stdout. Every message carries an ID that is echoed in its response. Requests
are processed one at a time, in order, with timing info in microseconds.

# IPC

A request without an action is a word completion, the smallest message:

	{"id": "req_001", "p": "eli", "l": 5}

and is answered with suggestions ranked by frequency:

	{"id": "req_001", "s": [{"w": "elizabeth", "r": 1, "f": 634}], "c": 1, "t": 41}

Every other query names its action:

	{"id": "q1", "action": "stats"}
	{"id": "q2", "action": "top"}
	{"id": "q3", "action": "interesting", "n": 300}
	{"id": "q4", "action": "rare"}
	{"id": "q5", "action": "chapter_freq", "w": "Darcy"}
	{"id": "q6", "action": "quote", "q": "It is a truth universally acknowledged"}
	{"id": "q7", "action": "generate"}
	{"id": "q8", "action": "autocomplete", "q": "It is a truth"}
	{"id": "q9", "action": "suggest", "w": "Elizbeth"}
	{"id": "q10", "action": "config", "max_limit": 32}

A failed request is answered with an ErrorResponse whose code follows HTTP:
400 for invalid parameters, 404 when the text holds no answer.

# Message Types

CompletionResponse carries word suggestions. RankResponse carries ordered
(word, count) entries for top, interesting and rare. ChapterFrequencyResponse
holds one count per chapter, plus a spelling suggestion when the word never
occurs. SentenceResponse answers both generate and autocomplete.
*/
package server

import (
	"github.com/bastiangx/wordlore/pkg/analyzer"
	"github.com/bastiangx/wordlore/pkg/rank"
)

// Request is any client message. Fields unused by an action are ignored.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Text   string `msgpack:"q,omitempty"`
	Count  *int   `msgpack:"n,omitempty"`

	// config action
	MaxLimit     *int  `msgpack:"max_limit,omitempty"`
	MinPrefix    *int  `msgpack:"min_prefix,omitempty"`
	MaxPrefix    *int  `msgpack:"max_prefix,omitempty"`
	EnableFilter *bool `msgpack:"enable_filter,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word      string `msgpack:"w"`
	Rank      uint16 `msgpack:"r"`
	Frequency int    `msgpack:"f"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// RankResponse - ordered word counts
type RankResponse struct {
	ID        string       `msgpack:"id"`
	Entries   []rank.Entry `msgpack:"e"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// ChapterFrequencyResponse - occurrences of a word per chapter
type ChapterFrequencyResponse struct {
	ID         string `msgpack:"id"`
	Word       string `msgpack:"w"`
	Counts     []int  `msgpack:"counts"`
	Total      int    `msgpack:"total"`
	Suggestion string `msgpack:"suggestion,omitempty"`
	TimeTaken  int64  `msgpack:"t"`
}

// QuoteResponse - chapter containing a quote
type QuoteResponse struct {
	ID        string `msgpack:"id"`
	Chapter   int    `msgpack:"chapter"`
	TimeTaken int64  `msgpack:"t"`
}

// SentenceResponse - generated or completed sentences
type SentenceResponse struct {
	ID        string   `msgpack:"id"`
	Sentences []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// SuggestResponse - spelling correction
type SuggestResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w"`
	Corrected bool   `msgpack:"corrected"`
}

// StatsResponse - book summary
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats analyzer.Stats `msgpack:"stats"`
}

// StatusResponse - readiness and config operation response
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for any request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
