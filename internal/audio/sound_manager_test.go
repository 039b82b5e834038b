package audio

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// TestSoundManagerGracefulDegradation verifies audio calls don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(config.DefaultShooterConfig().Audio, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(shooter.SoundShoot)
	sm.Play(shooter.SoundHit)
	sm.StartMusic()
	sm.StopMusic()
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config never touches the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := config.DefaultShooterConfig().Audio
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("disabled audio should not fail: %v", err)
	}
	if sm.initialized {
		t.Error("disabled audio should stay uninitialized")
	}
	sm.Play(shooter.SoundShoot)
}

// TestSoundManagerInitialization verifies the manager can start and stop
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(config.DefaultShooterConfig().Audio, nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	sm.StartMusic()
	sm.StartMusic() // no-op while playing
	sm.Play(shooter.SoundShoot)
	sm.StopMusic()
	sm.Cleanup()
}

func TestEffectUsesConfiguredVolume(t *testing.T) {
	cfg := config.DefaultShooterConfig().Audio
	sm := NewSoundManager(cfg, nil)

	if sm.effect(shooter.SoundShoot) == nil {
		t.Error("shoot effect should be synthesized without a bank")
	}
	if sm.effect(shooter.SoundHit) == nil {
		t.Error("hit effect should be synthesized without a bank")
	}
	if sm.effect(shooter.Sound(99)) != nil {
		t.Error("unknown sound should produce nothing")
	}
}

func testAudioConfig() config.AudioConfig {
	return config.AudioConfig{Enabled: true, MasterVolume: 1, ShootVolume: 0.5, MusicVolume: 0.5}
}
