package engine

import (
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (f *fakeClock) now() time.Time {
	return f.t
}

func (f *fakeClock) advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func TestClockStartTwice(t *testing.T) {
	fc := newFakeClock()
	c := newClock(0, fc.now)
	if err := c.Start(); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if err := c.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("expected ErrAlreadyStarted, got %v", err)
	}
}

func TestClockElapsed(t *testing.T) {
	fc := newFakeClock()
	c := newClock(0, fc.now)
	if got := c.Elapsed(); got != 0 {
		t.Fatalf("elapsed before start: %v", got)
	}
	if err := c.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	fc.advance(3 * time.Second)
	if got := c.Elapsed(); got != 3*time.Second {
		t.Fatalf("expected 3s elapsed, got %v", got)
	}
}

func TestClockExpiry(t *testing.T) {
	fc := newFakeClock()
	c := newClock(2*time.Second, fc.now)
	if c.Expired() {
		t.Fatalf("unstarted clock must not be expired")
	}
	if err := c.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	fc.advance(1900 * time.Millisecond)
	if c.Expired() {
		t.Fatalf("expired before the limit")
	}
	if got := c.Remaining(); got != 100*time.Millisecond {
		t.Fatalf("expected 100ms remaining, got %v", got)
	}
	fc.advance(100 * time.Millisecond)
	if !c.Expired() {
		t.Fatalf("expected expiry at the limit")
	}
	fc.advance(time.Second)
	if got := c.Remaining(); got != 0 {
		t.Fatalf("remaining after expiry should floor at 0, got %v", got)
	}
}

func TestClockNoLimitNeverExpires(t *testing.T) {
	fc := newFakeClock()
	c := newClock(0, fc.now)
	if err := c.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	fc.advance(time.Hour)
	if c.Expired() {
		t.Fatalf("limitless clock must never expire")
	}
}
