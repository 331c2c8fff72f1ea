// Package engine implements the typing session core: the per-character
// track, the session clock, and the state machine that consumes keystrokes
// and produces a result.
package engine

import (
	"fmt"
	"time"
)

// ModeKind selects how a session's target text is produced and when the
// session completes.
type ModeKind int

// Session mode kinds.
const (
	ModeWords ModeKind = iota
	ModeQuote
	ModeText
	ModeDuration
)

// Mode describes one session's completion rule and its parameter.
type Mode struct {
	Kind      ModeKind
	WordCount int
	Duration  time.Duration
}

// WordsMode builds a word-count limited mode.
func WordsMode(count int) Mode {
	return Mode{Kind: ModeWords, WordCount: count}
}

// QuoteMode builds a single-quote mode.
func QuoteMode() Mode {
	return Mode{Kind: ModeQuote}
}

// TextMode builds a fixed-text mode for literal or file text.
func TextMode() Mode {
	return Mode{Kind: ModeText}
}

// DurationMode builds a time-limited mode.
func DurationMode(d time.Duration) Mode {
	return Mode{Kind: ModeDuration, Duration: d}
}

// Validate checks the mode parameter ranges.
func (m Mode) Validate() error {
	switch m.Kind {
	case ModeWords:
		if m.WordCount <= 0 {
			return fmt.Errorf("%w: word count must be > 0", ErrInvalidMode)
		}
	case ModeDuration:
		if m.Duration <= 0 {
			return fmt.Errorf("%w: duration must be > 0", ErrInvalidMode)
		}
	case ModeQuote, ModeText:
	default:
		return fmt.Errorf("%w: unknown mode kind %d", ErrInvalidMode, m.Kind)
	}
	return nil
}

// Timed reports whether the session ends on the clock rather than the cursor.
func (m Mode) Timed() bool {
	return m.Kind == ModeDuration
}

// String returns a short label for reports.
func (m Mode) String() string {
	switch m.Kind {
	case ModeWords:
		return fmt.Sprintf("words(%d)", m.WordCount)
	case ModeQuote:
		return "quote"
	case ModeText:
		return "text"
	case ModeDuration:
		return fmt.Sprintf("duration(%s)", m.Duration)
	}
	return "unknown"
}
