package constants

import "time"

// Playback Reveal Timing
const (
	// ShowDuration is how long a region stays lit during sequence playback
	ShowDuration = 700 * time.Millisecond

	// ShowGap is the dark pause between consecutive reveals
	ShowGap = 300 * time.Millisecond

	// ClickFlashDuration is the tactile feedback flash on an accepted click
	// Must stay shorter than ShowDuration so input feedback reads differently from playback
	ClickFlashDuration = 150 * time.Millisecond
)

// Loop Timing
const (
	// TickInterval is the fixed logic tick of the game loop
	TickInterval = 50 * time.Millisecond
)

// Countdown Presentation
const (
	// RoundSeconds is the input-phase budget per round
	RoundSeconds = 30

	// CountdownWarningSeconds is the ceiling of the warning tier (inclusive)
	CountdownWarningSeconds = 10

	// CountdownCriticalSeconds is the ceiling of the critical tier (inclusive)
	// The countdown pulses only inside this tier
	CountdownCriticalSeconds = 5

	// PulsePeriod is the blink period of the critical-tier countdown
	PulsePeriod = 500 * time.Millisecond
)
