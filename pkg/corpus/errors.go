package corpus

import "errors"

// ErrSourceFormat is returned when the raw text lacks the markers a corpus
// is built around. No partial corpus is ever produced alongside it.
var ErrSourceFormat = errors.New("source format error")
