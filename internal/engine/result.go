package engine

import (
	"math"
	"time"
)

// Result is the immutable snapshot of a finished session.
type Result struct {
	Outcome    Outcome
	Mode       Mode
	Elapsed    time.Duration
	Keystrokes int
	Correct    int
	Incorrect  int
	Skipped    int
	NetWPM     float64
	RawWPM     float64
	Accuracy   float64
}

// Completed reports whether the session ran to its completion rule rather
// than being cancelled.
func (r Result) Completed() bool {
	return r.Outcome != OutcomeCancelled
}

func newResult(s *Session, outcome Outcome) Result {
	correct, incorrect, skipped := s.track.Counts()
	r := Result{
		Outcome:    outcome,
		Mode:       s.mode,
		Elapsed:    s.clock.Elapsed(),
		Keystrokes: s.keystrokes,
		Correct:    correct,
		Incorrect:  incorrect,
		Skipped:    skipped,
		Accuracy:   accuracyPct(correct, incorrect),
	}

	minutes := speedWindow(s, outcome).Minutes()
	if minutes > 0 {
		r.NetWPM = round1(float64(correct) / 5.0 / minutes)
		r.RawWPM = round1(float64(s.track.Touched()) / 5.0 / minutes)
	}
	return r
}

// speedWindow picks the WPM denominator: the configured duration for
// time-limited sessions that ran to the clock, otherwise the span between
// the first and last keystroke, so trailing idle time is not counted.
func speedWindow(s *Session, outcome Outcome) time.Duration {
	if s.mode.Timed() && outcome != OutcomeCancelled {
		return s.mode.Duration
	}
	if s.firstKeyAt.IsZero() {
		return 0
	}
	return s.lastKeyAt.Sub(s.firstKeyAt)
}

func accuracyPct(correct, incorrect int) float64 {
	den := correct + incorrect
	if den == 0 {
		return 100
	}
	return float64(correct) / float64(den) * 100
}

func round1(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}
