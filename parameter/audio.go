package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	ThrowSoundDuration  = 220 * time.Millisecond
	SmashSoundDuration  = 350 * time.Millisecond
	SplashSoundDuration = 260 * time.Millisecond

	// MasterVolume is the beep effects.Volume level (log2 scale)
	MasterVolume = -1.0
)
