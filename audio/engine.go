// Package audio is the optional feedback capability of the board: each
// region owns a tone, clicks blip and submits chirp. Playback is always
// fire-and-forget; when the speaker cannot be initialized the engine runs
// in silent mode and every call is a cheap no-op.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/echo-ring/constants"
	"github.com/lixenwraith/echo-ring/game"
)

// Engine produces tone feedback through the system speaker.
// It satisfies the coordinator's FeedbackTrigger interface.
type Engine struct {
	sampleRate beep.SampleRate

	ready atomic.Bool
	muted atomic.Bool
}

// NewEngine creates an engine; call Start before use
func NewEngine() *Engine {
	return &Engine{
		sampleRate: beep.SampleRate(constants.AudioSampleRate),
	}
}

// Start initializes the speaker. A missing or failing audio device is not
// an error: the engine degrades to silent mode and the game plays on.
func (e *Engine) Start() error {
	if err := speaker.Init(e.sampleRate, e.sampleRate.N(constants.AudioBufferLen)); err != nil {
		return nil // Silent mode, not an error
	}
	e.ready.Store(true)
	return nil
}

// Stop releases the speaker
func (e *Engine) Stop() {
	if e.ready.CompareAndSwap(true, false) {
		speaker.Close()
	}
}

// SetMuted toggles sound without tearing down the speaker
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// Reveal plays the region's tone for the playback highlight window
func (e *Engine) Reveal(r game.Region) {
	e.tone(ToneFor(r), constants.RevealToneDuration)
}

// Pulse plays a short blip of the region's tone on an accepted click
func (e *Engine) Pulse(r game.Region) {
	e.tone(ToneFor(r), constants.PulseToneDuration)
}

// Confirm plays the submit chirp
func (e *Engine) Confirm() {
	e.tone(constants.ConfirmToneHz, constants.ConfirmToneDuration)
}

// tone queues a sine burst on the speaker and returns immediately
func (e *Engine) tone(freq float64, d time.Duration) {
	if !e.ready.Load() || e.muted.Load() {
		return
	}

	sine, err := generators.SineTone(e.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(e.sampleRate.N(d), sine))
}

// ToneFor maps a region onto its fixed pitch
func ToneFor(r game.Region) float64 {
	switch r {
	case game.RegionGreen:
		return constants.ToneGreenHz
	case game.RegionRed:
		return constants.ToneRedHz
	case game.RegionYellow:
		return constants.ToneYellowHz
	case game.RegionBlue:
		return constants.ToneBlueHz
	default:
		return constants.ConfirmToneHz
	}
}
