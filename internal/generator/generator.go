// Package generator builds target texts for typing sessions.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/rbehjati/typr/internal/wordbank"
)

// ErrEmptyText reports literal or file text that is blank after trimming.
var ErrEmptyText = errors.New("text is empty")

// WordOptions controls word decoration for generated texts.
type WordOptions struct {
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Generator produces randomized typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Generator using the provided random source, so
// tests can fix the sequence.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Words draws count words from the list and joins them with single spaces.
// Words repeat only when the list is smaller than the request.
func (g *Generator) Words(words []string, count int, opts WordOptions) (string, error) {
	if len(words) == 0 {
		return "", fmt.Errorf("failed to generate words: %w", wordbank.ErrEmptySource)
	}
	if count <= 0 {
		return "", fmt.Errorf("word count must be > 0, got %d", count)
	}
	drawn := g.draw(words, count)
	for i, word := range drawn {
		word = g.applyCaps(word, opts.CapsPct)
		word = g.applyPunct(word, opts.PunctPct, opts.PunctSet)
		drawn[i] = word
	}
	return strings.Join(drawn, " "), nil
}

// Quote picks one quote uniformly from the bank.
func (g *Generator) Quote(quotes []wordbank.Quote) (wordbank.Quote, error) {
	if len(quotes) == 0 {
		return wordbank.Quote{}, fmt.Errorf("failed to pick quote: %w", wordbank.ErrEmptySource)
	}
	return quotes[g.rnd.Intn(len(quotes))], nil
}

// NormalizeText prepares literal or file text for a session: leading and
// trailing whitespace is trimmed and internal whitespace runs, newlines
// included, collapse to single spaces.
func NormalizeText(text string) (string, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", ErrEmptyText
	}
	return strings.Join(fields, " "), nil
}

// draw selects count words without replacement within each permutation
// pass, so repeats only appear when the list runs out.
func (g *Generator) draw(words []string, count int) []string {
	out := make([]string, 0, count)
	for len(out) < count {
		n := count - len(out)
		if n > len(words) {
			n = len(words)
		}
		for _, idx := range g.rnd.Perm(len(words))[:n] {
			out = append(out, words[idx])
		}
	}
	return out
}

func (g *Generator) applyCaps(word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if g.rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func (g *Generator) applyPunct(word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if g.rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[g.rnd.Intn(len(punctSet))]
	return word + string(punct)
}
