package engine

import "time"

// Clock measures a session's elapsed time and, for time-limited sessions,
// signals expiry. The zero limit means no time limit.
type Clock struct {
	now       func() time.Time
	limit     time.Duration
	startedAt time.Time
	started   bool
}

// NewClock builds a wall-clock backed Clock with the given limit.
func NewClock(limit time.Duration) *Clock {
	return newClock(limit, time.Now)
}

func newClock(limit time.Duration, now func() time.Time) *Clock {
	return &Clock{now: now, limit: limit}
}

// Start records the start instant. A second call is a caller bug and
// returns ErrAlreadyStarted.
func (c *Clock) Start() error {
	if c.started {
		return ErrAlreadyStarted
	}
	c.started = true
	c.startedAt = c.now()
	return nil
}

// Started reports whether Start has been called.
func (c *Clock) Started() bool {
	return c.started
}

// Elapsed returns the time since Start, or zero before Start.
func (c *Clock) Elapsed() time.Duration {
	if !c.started {
		return 0
	}
	return c.now().Sub(c.startedAt)
}

// Remaining returns the time left until the limit, floored at zero.
// It returns zero for clocks without a limit.
func (c *Clock) Remaining() time.Duration {
	if c.limit <= 0 {
		return 0
	}
	rem := c.limit - c.Elapsed()
	if rem < 0 {
		return 0
	}
	return rem
}

// Expired reports whether a limited clock has run out.
func (c *Clock) Expired() bool {
	return c.limit > 0 && c.started && c.Elapsed() >= c.limit
}
