package constants

import "time"

// Audio Feedback
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferLen is the speaker buffer length
	AudioBufferLen = 100 * time.Millisecond

	// PulseToneDuration is the click feedback blip length
	PulseToneDuration = 120 * time.Millisecond

	// RevealToneDuration tracks the playback highlight window
	RevealToneDuration = 500 * time.Millisecond

	// ConfirmToneDuration is the submit confirmation chirp length
	ConfirmToneDuration = 200 * time.Millisecond

	// ConfirmToneHz is the submit confirmation pitch
	ConfirmToneHz = 880.0
)

// Region tone frequencies, the classic board voicing: each region owns a pitch
// so playback is memorable by ear as well as by eye
const (
	ToneGreenHz  = 415.0
	ToneRedHz    = 310.0
	ToneYellowHz = 252.0
	ToneBlueHz   = 209.0
)
