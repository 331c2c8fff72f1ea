package engine

import (
	"fmt"
	"time"
)

// State is the session lifecycle phase.
type State int

// Session states. Finished is terminal.
const (
	StateNotStarted State = iota
	StateRunning
	StateFinished
)

// Outcome records how a finished session ended.
type Outcome int

// Session outcomes.
const (
	// OutcomeCompleted means the cursor reached the end of the target.
	OutcomeCompleted Outcome = iota
	// OutcomeExpired means a time-limited session ran out of clock.
	OutcomeExpired
	// OutcomeCancelled means the user quit mid-session; the result carries
	// partial counts.
	OutcomeCancelled
)

// Session owns one typing attempt: the target text, the per-character
// track, the cursor, and the clock. Events after the session finishes are
// silently dropped.
type Session struct {
	mode   Mode
	track  *Track
	clock  *Clock
	cursor int
	state  State

	keystrokes int
	firstKeyAt time.Time
	lastKeyAt  time.Time

	result Result
	now    func() time.Time
}

// NewSession builds a session for the given mode and target text. The
// target is fixed for the session's lifetime.
func NewSession(mode Mode, target string) (*Session, error) {
	return newSession(mode, target, time.Now)
}

func newSession(mode Mode, target string, now func() time.Time) (*Session, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	runes := []rune(target)
	if len(runes) == 0 {
		return nil, fmt.Errorf("failed to build session: %w", ErrEmptyTarget)
	}
	return &Session{
		mode:  mode,
		track: NewTrack(runes),
		clock: newClock(mode.Duration, now),
		now:   now,
	}, nil
}

// Mode returns the session mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// State returns the lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Cursor returns the index of the next position awaiting input.
func (s *Session) Cursor() int {
	return s.cursor
}

// Track returns the session's character track for rendering.
func (s *Session) Track() *Track {
	return s.track
}

// Elapsed returns the clock's elapsed time.
func (s *Session) Elapsed() time.Duration {
	return s.clock.Elapsed()
}

// Remaining returns the time left on a time-limited session.
func (s *Session) Remaining() time.Duration {
	return s.clock.Remaining()
}

// Type applies one typed rune and reports whether the session finished.
func (s *Session) Type(r rune) bool {
	if s.state == StateFinished {
		return true
	}
	s.begin()
	if s.clock.Expired() {
		s.finish(OutcomeExpired)
		return true
	}
	i := s.cursor
	if i >= s.track.Len() {
		s.finish(OutcomeCompleted)
		return true
	}

	now := s.now()
	s.keystrokes++
	if s.firstKeyAt.IsZero() {
		s.firstKeyAt = now
	}
	s.lastKeyAt = now
	s.track.touch(i, now)

	switch {
	case r == s.track.Rune(i):
		s.track.setState(i, CharCorrect)
		s.cursor = i + 1
	case r == ' ' && s.midWord(i):
		s.skipWord(i)
	default:
		s.track.setState(i, CharIncorrect)
		s.cursor = i + 1
	}

	if s.cursor >= s.track.Len() {
		s.finish(OutcomeCompleted)
		return true
	}
	return false
}

// Backspace moves the cursor back one position and resets it to pending.
// It refuses to land on a skipped position, so a forfeited word stays
// forfeited.
func (s *Session) Backspace() {
	if s.state != StateRunning || s.cursor == 0 {
		return
	}
	if s.clock.Expired() {
		s.finish(OutcomeExpired)
		return
	}
	j := s.cursor - 1
	if s.track.State(j) == CharSkipped {
		return
	}
	now := s.now()
	s.keystrokes++
	s.lastKeyAt = now
	s.track.touch(j, now)
	s.track.setState(j, CharPending)
	s.cursor = j
}

// Tick checks clock expiry and reports whether the session is finished.
// The caller must tick time-limited sessions at a short interval so expiry
// fires even when no keystrokes arrive; ticking arms the clock of a
// time-limited session that has not seen input yet.
func (s *Session) Tick() bool {
	if s.state == StateFinished {
		return true
	}
	if s.mode.Timed() && s.state == StateNotStarted {
		s.begin()
	}
	if s.state == StateRunning && s.clock.Expired() {
		s.finish(OutcomeExpired)
		return true
	}
	return false
}

// Cancel ends the session immediately with a cancelled outcome. It is a
// no-op on a finished session.
func (s *Session) Cancel() {
	if s.state == StateFinished {
		return
	}
	s.finish(OutcomeCancelled)
}

// Result returns the cached result of a finished session. ok is false
// while the session is still running.
func (s *Session) Result() (Result, bool) {
	if s.state != StateFinished {
		return Result{}, false
	}
	return s.result, true
}

func (s *Session) begin() {
	if s.state != StateNotStarted {
		return
	}
	// The state check above guarantees a single Start.
	_ = s.clock.Start()
	s.state = StateRunning
}

func (s *Session) midWord(i int) bool {
	w, ok := s.track.WordAt(i)
	if !ok {
		return false
	}
	return i > w.Start && i < w.End
}

// skipWord forfeits the rest of the current word: the untyped remainder is
// marked skipped and the separating space, matched by the typed space, is
// marked correct.
func (s *Session) skipWord(i int) {
	w, ok := s.track.WordAt(i)
	if !ok {
		return
	}
	for j := i; j < w.End; j++ {
		s.track.setState(j, CharSkipped)
	}
	if w.End < s.track.Len() {
		s.track.setState(w.End, CharCorrect)
		s.cursor = w.End + 1
		return
	}
	s.cursor = w.End
}

func (s *Session) finish(outcome Outcome) {
	s.state = StateFinished
	s.result = newResult(s, outcome)
}
