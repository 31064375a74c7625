// Package markov generates text in an author's style from first-order word
// adjacency: the next word is drawn uniformly from every word that followed
// the current one in the source, so frequent successors win more often.
package markov

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordlore/pkg/corpus"
	"github.com/charmbracelet/log"
)

var (
	// ErrNoSuccessor means the word never occurs, or only as the final token.
	ErrNoSuccessor = errors.New("no successor")
	ErrBadBudget   = errors.New("token budget must be at least 1")
)

// Index maps a token to every token that immediately followed it, in text
// order and with repeats.
type Index map[string][]string

// BuildIndex records the successor of every token but the last.
func BuildIndex(tokens []string) Index {
	idx := make(Index)
	for i := 0; i+1 < len(tokens); i++ {
		idx[tokens[i]] = append(idx[tokens[i]], tokens[i+1])
	}
	return idx
}

// Generator samples from an Index with its own random source.
type Generator struct {
	index Index
	rng   *rand.Rand
}

// New indexes tokens once. src decides every draw, so a fixed seed gives
// reproducible output.
func New(tokens []string, src rand.Source) *Generator {
	idx := BuildIndex(tokens)
	log.Debugf("Markov index built: %d tokens, %d distinct predecessors", len(tokens), len(idx))
	return &Generator{index: idx, rng: rand.New(src)}
}

// NextWord draws a successor of word. Matching is exact and case-sensitive.
func (g *Generator) NextWord(word string) (string, error) {
	next := g.index[word]
	if len(next) == 0 {
		return "", fmt.Errorf("%w for %q", ErrNoSuccessor, word)
	}
	return next[g.rng.Intn(len(next))], nil
}

// Sentence starts with start and appends drawn words until it holds budget
// tokens. One trailing punctuation rune is dropped and a period appended.
func (g *Generator) Sentence(start string, budget int) (string, error) {
	if budget < 1 {
		return "", ErrBadBudget
	}
	words := make([]string, 1, budget)
	words[0] = start
	for len(words) < budget {
		next, err := g.NextWord(words[len(words)-1])
		if err != nil {
			return "", err
		}
		words = append(words, next)
	}

	sentence := strings.Join(words, " ")
	if last, size := utf8.DecodeLastRuneInString(sentence); corpus.IsPunctuation(last) {
		sentence = sentence[:len(sentence)-size]
	}
	return sentence + ".", nil
}
