package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayThrow()
	sm.PlaySmash(1)
	sm.PlaySplash()
	sm.Cleanup()

	if sm.Enabled() {
		t.Error("uninitialized manager should not report enabled")
	}
	if sm.Played() != 0 {
		t.Errorf("no sound should start before Initialize, got %d", sm.Played())
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(0)

	// Speaker initialization may fail in CI without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlaySmash(0.5)
	if sm.Played() != 1 {
		t.Errorf("Played = %d, want 1", sm.Played())
	}

	sm.SetMuted(true)
	sm.PlaySplash()
	if sm.Played() != 1 {
		t.Errorf("muted manager should not start sounds, Played = %d", sm.Played())
	}
	if sm.Enabled() {
		t.Error("muted manager should not report enabled")
	}
}
