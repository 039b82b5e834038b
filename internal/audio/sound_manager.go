// Package audio plays the shooter's sound effects and music through the
// system speaker. Sounds are decoded from WAV assets when an asset bank is
// provided and synthesized otherwise.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager implements shooter.Sounds on top of a beep mixer.
// Every method is safe to call before Initialize or after Cleanup; they do nothing.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	bank        *Bank
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

var _ shooter.Sounds = (*SoundManager)(nil)

// NewSoundManager creates a sound manager. bank may be nil, in which case
// every sound is synthesized.
func NewSoundManager(cfg config.AudioConfig, bank *Bank) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		bank:  bank,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Play starts a one-shot effect.
func (sm *SoundManager) Play(s shooter.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := sm.effect(s)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// effect builds the streamer for a sound at its configured volume.
func (sm *SoundManager) effect(s shooter.Sound) beep.Streamer {
	var src beep.Streamer
	if sm.bank != nil {
		src = sm.bank.Effect(s)
	}

	var gain float64
	switch s {
	case shooter.SoundShoot:
		if src == nil {
			src = beep.Take(sampleRate.N(time.Millisecond*90), NewLaserGenerator(sampleRate))
		}
		gain = sm.cfg.ShootVolume
	case shooter.SoundHit:
		if src == nil {
			src = beep.Take(sampleRate.N(time.Millisecond*250), NewImpactGenerator(sampleRate, 1))
		}
		gain = 1.0
	default:
		return nil
	}
	return withVolume(src, gain*sm.cfg.MasterVolume)
}

// StartMusic starts the looping background track unless it is already playing.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// If already playing, don't restart
	if sm.music != nil && !sm.music.Paused {
		return
	}

	var track beep.Streamer
	if sm.bank != nil {
		track = sm.bank.Music()
	}
	if track == nil {
		track = NewMusic(sampleRate)
	}

	ctrl := &beep.Ctrl{Streamer: withVolume(track, sm.cfg.MusicVolume*sm.cfg.MasterVolume)}
	speaker.Lock()
	sm.music = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic pauses the background track.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
	sm.music = nil
}
