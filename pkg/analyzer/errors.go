package analyzer

import (
	"errors"

	"github.com/bastiangx/wordlore/pkg/corpus"
)

var (
	// ErrInvalidParameter is returned for query arguments out of range. The
	// book is left untouched.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNotFound is returned when a query has no answer in the text.
	ErrNotFound = errors.New("not found")
	// ErrSourceFormat is returned when the source text lacks its markers.
	ErrSourceFormat = corpus.ErrSourceFormat
)
