package game

import "github.com/lixenwraith/echo-ring/constants"

// TimerColor is the caller-supplied countdown classification
type TimerColor uint8

const (
	TimerGreen TimerColor = iota
	TimerYellow
	TimerRed
)

// String returns the lowercase color name
func (c TimerColor) String() string {
	switch c {
	case TimerGreen:
		return "green"
	case TimerYellow:
		return "yellow"
	case TimerRed:
		return "red"
	default:
		return "unknown"
	}
}

// Severity grades countdown urgency for presentation
type Severity uint8

const (
	SeverityCalm Severity = iota
	SeverityWarning
	SeverityCritical
)

// CountdownView derives display emphasis from remaining seconds.
// Monotonic: fewer seconds never yields a lower severity.
// Pulsing is active only in the critical tier.
func CountdownView(secondsRemaining int) (Severity, bool) {
	switch {
	case secondsRemaining <= constants.CountdownCriticalSeconds:
		return SeverityCritical, true
	case secondsRemaining <= constants.CountdownWarningSeconds:
		return SeverityWarning, false
	default:
		return SeverityCalm, false
	}
}

// TimerColorFor maps remaining seconds onto the three-color classification
// fed back to the coordinator as part of the frame
func TimerColorFor(secondsRemaining int) TimerColor {
	switch sev, _ := CountdownView(secondsRemaining); sev {
	case SeverityCritical:
		return TimerRed
	case SeverityWarning:
		return TimerYellow
	default:
		return TimerGreen
	}
}
