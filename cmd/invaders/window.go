package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a desktop window.

Controls:
  Left/A, Right/D   - Move
  Space/Up/W        - Fire
  Enter             - Start a round
  M                 - Toggle music
  Esc/Q             - Quit

Examples:
  invaders window
  invaders window --scale 1.25`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the world")
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := newSession(flagFPS)
	if err != nil {
		return err
	}

	opts := window.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Sprites:  s.game.SpriteSizes(),
		Logger:   s.log,
	}
	if m := s.music(); m != nil {
		opts.Music = m
	}

	runErr := window.Run(s.game, s.clock, opts)
	closeErr := s.Close()

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return closeErr
}
