package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/mindfulcampus/bottlesmash/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays the scene's sound effects through one speaker mixer
// Every Play call is a no-op until Initialize succeeds, and while muted
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64
}

// NewSoundManager creates a manager with volume offset (log2 scale) on top of the default level
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   parameter.MasterVolume + volume,
		},
	}
}

// Initialize opens the speaker. Safe to call twice
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(sm.master)
	sm.initialized = true
	log.Printf("Audio: Speaker ready at %d Hz", parameter.AudioSampleRate)
	return nil
}

// Cleanup silences and detaches all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// Enabled reports whether sounds are actually reaching the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted.Load()
}

// SetMuted toggles output without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Played returns the number of sounds started
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played.Add(1)
}

// PlayThrow plays the whoosh of a thrown object
func (sm *SoundManager) PlayThrow() {
	sm.play(CreateThrowSound(sampleRate))
}

// PlaySmash plays the glass crash, intensity in [0, 1]
func (sm *SoundManager) PlaySmash(intensity float64) {
	sm.play(CreateSmashSound(sampleRate, intensity))
}

// PlaySplash plays the liquid plop
func (sm *SoundManager) PlaySplash() {
	sm.play(CreateSplashSound(sampleRate))
}
