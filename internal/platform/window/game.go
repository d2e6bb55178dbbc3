// Package window runs the invaders engine in a desktop window with
// Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is the simulation the window drives.
type Game interface {
	Step(in core.InputFrame) core.StepResult
	Render(c core.Canvas)
	Width() int
	Height() int
}

// MusicToggler switches the background track on and off.
type MusicToggler interface {
	ToggleMusic() bool
}

// Options configures the window.
type Options struct {
	Title    string
	Scale    float64
	TickRate int
	Sprites  map[core.SpriteID]config.SpriteSize
	Music    MusicToggler
	Logger   *log.Logger
}

// Runner adapts a Game to ebiten.Game. Ebitengine calls Update at a fixed
// TPS matching the frame clock, so the clock advances once per call.
type Runner struct {
	game    Game
	clock   *core.FrameClock
	canvas  *Canvas
	music   MusicToggler
	log     *log.Logger
	pressed func(ebiten.Key) bool
}

// NewRunner creates a runner for game. The clock must be the one the game
// was built with.
func NewRunner(game Game, clock *core.FrameClock, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:    game,
		clock:   clock,
		canvas:  &Canvas{sprites: opts.Sprites},
		music:   opts.Music,
		log:     logger,
		pressed: ebiten.IsKeyPressed,
	}
}

// Update advances the simulation by one frame.
func (r *Runner) Update() error {
	in := inputFrom(r.pressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if r.music != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		on := r.music.ToggleMusic()
		r.log.Debug("music toggled", "on", on)
	}

	r.clock.Advance()
	r.game.Step(in)
	return nil
}

// Draw renders the current frame.
func (r *Runner) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	r.canvas.dst = screen
	r.game.Render(r.canvas)
}

// Layout keeps the logical screen at world size; Ebitengine scales it to
// the window.
func (r *Runner) Layout(_, _ int) (int, int) {
	return r.game.Width(), r.game.Height()
}

// Run opens the window and blocks until it is closed.
func Run(game Game, clock *core.FrameClock, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	title := opts.Title
	if title == "" {
		title = "Invaders"
	}
	tps := opts.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowSize(int(float64(game.Width())*scale), int(float64(game.Height())*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(NewRunner(game, clock, opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
