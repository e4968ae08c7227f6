package parameter

import "time"

// Collision feedback tones
const (
	ToneSampleRate = 44100

	// ToneDuration is the collision beep length
	ToneDuration = 10 * time.Millisecond

	// ToneVolumeDefault is the master volume in [0,1]
	ToneVolumeDefault = 0.5

	// BlipFrequency and BlipDuration shape the select/remove cue
	BlipFrequency = 660
	BlipDuration  = 60 * time.Millisecond
)
