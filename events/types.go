package events

import "time"

// Type identifies a game event
type Type int

const (
	// TypeRegionClick signals a pointer/key press resolved to a board region
	// Trigger: input package (mouse hit test, digit keys)
	// Consumer: tick loop → PlaybackCoordinator.Click | Payload: RegionClickPayload
	TypeRegionClick Type = iota

	// TypeSubmit signals the player's request to submit the entered sequence
	// Trigger: input package (Enter)
	// Consumer: tick loop → PlaybackCoordinator.Submit | Payload: nil
	TypeSubmit

	// TypeRoundResult signals the session resolved a round
	// Trigger: session on submit or countdown expiry
	// Consumer: cmd (logging, score display) | Payload: RoundResultPayload
	TypeRoundResult

	// TypeRestart signals a new-game request after a game over
	// Trigger: input package (r key)
	// Consumer: session | Payload: nil
	TypeRestart

	// TypeResize signals a terminal geometry change
	// Trigger: input package on tcell.EventResize
	// Consumer: renderer | Payload: nil
	TypeResize

	// TypeQuit signals a shutdown request
	// Trigger: input package (q, Esc, Ctrl-C)
	// Consumer: tick loop | Payload: nil
	TypeQuit
)

// Event carries one occurrence through the queue
type Event struct {
	Type      Type
	Timestamp time.Time
	Payload   any
}
