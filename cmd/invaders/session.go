package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// session is everything a front-end needs to run one game.
type session struct {
	cfg    config.InvadersConfig
	clock  *core.FrameClock
	game   *invaders.Game
	sound  *audio.SoundManager // nil when muted or no device
	log    *log.Logger
	closer func() error
}

// newSession loads the config and wires the engine to its clock, audio
// and logger.
func newSession(tickRate int) (*session, error) {
	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, errors.Join(err, closeLog())
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	clock := core.NewFrameClock(tickRate, seed)

	s := &session{cfg: cfg, clock: clock, log: logger}

	var sink core.AudioSink = core.NopAudio{}
	if !flagMute {
		sm := audio.NewSoundManager(cfg.Audio, logger)
		if err := sm.Init(); err != nil {
			logger.Warn("audio unavailable, continuing muted", "err", err)
		} else {
			s.sound = sm
			sink = sm
		}
	}

	s.game = invaders.New(cfg, clock, sink, logger)
	s.closer = func() error {
		if s.sound != nil {
			s.sound.Close()
		}
		return closeLog()
	}

	logger.Info("session started", "seed", seed, "fps", tickRate, "mute", s.sound == nil)
	return s, nil
}

// music returns the toggle for the background track, if there is one.
func (s *session) music() interface{ ToggleMusic() bool } {
	if s.sound == nil {
		return nil
	}
	return s.sound
}

// Close releases the audio device and the log file.
func (s *session) Close() error {
	st := s.game.State()
	s.log.Info("session ended", "score", st.Score, "lives", st.Lives)
	if err := s.closer(); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}
