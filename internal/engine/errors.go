package engine

import "errors"

var (
	// ErrAlreadyStarted reports a second Start on a running clock.
	ErrAlreadyStarted = errors.New("clock already started")
	// ErrInvalidMode reports a mode with an out-of-range parameter.
	ErrInvalidMode = errors.New("invalid mode parameter")
	// ErrEmptyTarget reports an attempt to build a session without text.
	ErrEmptyTarget = errors.New("target text is empty")
)
