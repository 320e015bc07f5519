package domain

import "time"

// RoundEvent is delivered to Hooks.OnRound after a successful round.
type RoundEvent struct {
	SessionID string
	Domain    string
	Stats     RoundStats
	TreeSize  int
	Duration  time.Duration
}

// ReinitializeEvent is delivered to Hooks.OnReinitialize.
type ReinitializeEvent struct {
	SessionID string
	Domain    string
	Actions   int
}

// Hooks are optional callbacks fired by sessions.
// They are called synchronously while the session lock is held, so they must
// not call back into the same session.
type Hooks struct {
	OnReinitialize func(ReinitializeEvent)
	OnRound        func(RoundEvent)
	OnError        func(sessionID, op string, err error)

	// OnDelete fires after a session is dropped by its manager.
	OnDelete func(sessionID string)
}
