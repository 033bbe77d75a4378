package engine

import "github.com/lixenwraith/echo-ring/game"

// Frame is the caller-supplied view of the round, applied once per tick.
// The coordinator never mutates caller state; it only derives the lit
// region and gates clicks and submits against these flags.
type Frame struct {
	Sequence        []game.Region // current round's secret
	Round           int
	ShowingSequence bool
	InputPhase      bool
	Disabled        bool
	PlayerSequence  []game.Region // progress display only
	CanSubmit       bool

	SecondsRemaining int
	TimerColor       game.TimerColor
	TimerPulsing     bool
}

// clone deep-copies the slices so a frame survives caller-side mutation
// between ticks
func (f Frame) clone() Frame {
	f.Sequence = game.CloneSequence(f.Sequence)
	f.PlayerSequence = game.CloneSequence(f.PlayerSequence)
	return f
}
