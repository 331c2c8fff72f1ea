package engine

import "time"

// CharState is the correctness state of one target position.
type CharState uint8

// Character states.
const (
	CharPending CharState = iota
	CharCorrect
	CharIncorrect
	CharSkipped
)

// WordRange marks one word in the target as a half-open rune index range.
type WordRange struct {
	Start int
	End   int
}

// Track is the per-character ledger for one target text: the state of each
// position, how many keystrokes touched it, and when it was first touched.
type Track struct {
	target     []rune
	states     []CharState
	touches    []int
	firstTouch []time.Time
	words      []WordRange
}

// NewTrack builds a track for the given target runes.
func NewTrack(target []rune) *Track {
	t := &Track{
		target:     target,
		states:     make([]CharState, len(target)),
		touches:    make([]int, len(target)),
		firstTouch: make([]time.Time, len(target)),
	}
	t.words = findWords(target)
	return t
}

// Len returns the target length in runes.
func (t *Track) Len() int {
	return len(t.target)
}

// Rune returns the target rune at position i.
func (t *Track) Rune(i int) rune {
	return t.target[i]
}

// State returns the state of position i.
func (t *Track) State(i int) CharState {
	return t.states[i]
}

// States returns the per-position states. Callers must not modify the slice.
func (t *Track) States() []CharState {
	return t.states
}

// Words returns the word ranges of the target.
func (t *Track) Words() []WordRange {
	return t.words
}

// WordAt returns the word containing position i, or the next word when i
// sits on separating whitespace. ok is false past the last word.
func (t *Track) WordAt(i int) (WordRange, bool) {
	for _, w := range t.words {
		if i < w.End {
			return w, true
		}
	}
	return WordRange{}, false
}

// Touches returns the keystroke count for position i.
func (t *Track) Touches(i int) int {
	return t.touches[i]
}

// FirstTouch returns the first-keystroke timestamp for position i, or the
// zero time when the position was never touched.
func (t *Track) FirstTouch(i int) time.Time {
	return t.firstTouch[i]
}

// Counts returns the number of correct, incorrect, and skipped positions.
func (t *Track) Counts() (correct, incorrect, skipped int) {
	for _, st := range t.states {
		switch st {
		case CharCorrect:
			correct++
		case CharIncorrect:
			incorrect++
		case CharSkipped:
			skipped++
		}
	}
	return correct, incorrect, skipped
}

// Touched returns the number of positions hit by at least one keystroke.
func (t *Track) Touched() int {
	n := 0
	for _, c := range t.touches {
		if c > 0 {
			n++
		}
	}
	return n
}

func (t *Track) setState(i int, st CharState) {
	t.states[i] = st
}

func (t *Track) touch(i int, now time.Time) {
	t.touches[i]++
	if t.firstTouch[i].IsZero() {
		t.firstTouch[i] = now
	}
}

func findWords(target []rune) []WordRange {
	words := []WordRange{}
	start := -1
	for i, r := range target {
		if r == ' ' {
			if start != -1 {
				words = append(words, WordRange{Start: start, End: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, WordRange{Start: start, End: len(target)})
	}
	return words
}
