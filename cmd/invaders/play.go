package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/A, Right/D   - Move
  Space/Up          - Fire
  Enter             - Start a round
  M                 - Toggle music
  Ctrl+S            - Save a text screenshot
  Q/Esc/Ctrl+C      - Quit

Terminals report key presses but not releases, so a key counts as held
while its autorepeat keeps arriving.

Examples:
  invaders play
  invaders play --fps 30 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s, err := newSession(flagFPS)
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	opts := tui.Options{
		Sprites: s.game.SpriteSizes(),
		Logger:  s.log,
	}
	if m := s.music(); m != nil {
		opts.Music = m
	}

	runErr := tui.Run(s.game, s.clock, rc, opts)
	closeErr := s.Close()

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return closeErr
}
