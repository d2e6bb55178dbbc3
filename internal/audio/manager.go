package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SoundManager plays the game's audio through the speaker. It implements
// core.AudioSink. All streamers go through one mixer, which the speaker
// reads from its own goroutine, so the mixer is only touched under the
// speaker lock.
type SoundManager struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	music  *beep.Ctrl
	log    *log.Logger
	lock   func()
	unlock func()

	started bool
	musicOn bool // Desired music state, applied by UpdateMusic
}

var _ core.AudioSink = (*SoundManager)(nil)

// NewSoundManager creates a manager. Nothing is played until Init succeeds.
func NewSoundManager(cfg config.AudioConfig, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundManager{
		cfg:     cfg,
		rate:    beep.SampleRate(cfg.SampleRate),
		mixer:   &beep.Mixer{},
		log:     logger,
		lock:    speaker.Lock,
		unlock:  speaker.Unlock,
		musicOn: cfg.Music,
	}
}

// Init opens the audio device and starts feeding it the mixer.
func (m *SoundManager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return nil
	}
	buffer := m.rate.N(time.Duration(m.cfg.BufferMillis) * time.Millisecond)
	if err := speaker.Init(m.rate, buffer); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.started = true
	m.log.Info("audio started", "sample_rate", m.cfg.SampleRate, "buffer_ms", m.cfg.BufferMillis)
	return nil
}

// Play mixes in a one-shot effect.
func (m *SoundManager) Play(s core.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started {
		return
	}
	gain := m.cfg.MasterVolume * m.cfg.EffectsVolume
	var st beep.Streamer
	switch s {
	case core.SoundLaser:
		st = NewLaserSound(m.rate, gain)
	case core.SoundExplosion:
		st = NewExplosionSound(m.rate, gain)
	default:
		return
	}

	m.lock()
	m.mixer.Add(st)
	m.unlock()
}

// PlayMusic starts the background march. Calling it again while the march
// is loaded does nothing.
func (m *SoundManager) PlayMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started || m.music != nil {
		return
	}
	m.music = &beep.Ctrl{
		Streamer: newVolume(NewMarch(m.rate), m.cfg.MasterVolume*m.cfg.MusicVolume),
		Paused:   !m.musicOn,
	}

	m.lock()
	m.mixer.Add(m.music)
	m.unlock()
}

// UpdateMusic applies the requested music state to the playing stream.
// Front-ends call it once per frame.
func (m *SoundManager) UpdateMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil {
		return
	}
	m.lock()
	if m.music.Paused == m.musicOn {
		m.music.Paused = !m.musicOn
	}
	m.unlock()
}

// ToggleMusic flips the music on or off and reports the new state.
// The change is heard from the next UpdateMusic.
func (m *SoundManager) ToggleMusic() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.musicOn = !m.musicOn
	m.log.Debug("music toggled", "on", m.musicOn)
	return m.musicOn
}

// MusicOn reports whether music is requested.
func (m *SoundManager) MusicOn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.musicOn
}

// Close silences everything and releases the audio device.
func (m *SoundManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started {
		return
	}
	m.lock()
	m.mixer.Clear()
	m.unlock()
	speaker.Close()
	m.music = nil
	m.started = false
}
