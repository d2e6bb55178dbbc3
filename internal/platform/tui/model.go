package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is the simulation the terminal front-end drives.
type Game interface {
	Step(in core.InputFrame) core.StepResult
	Render(c core.Canvas)
	State() core.GameState
	Width() int
	Height() int
}

// MusicToggler switches the background track on and off.
type MusicToggler interface {
	ToggleMusic() bool
}

// Options configures the terminal front-end.
type Options struct {
	Sprites map[core.SpriteID]config.SpriteSize
	// HoldFrames is how long a key counts as held after its last press.
	// Terminals only report presses, so a held key is one whose
	// autorepeat keeps arriving inside this window.
	HoldFrames int
	Music      MusicToggler
	Logger     *log.Logger
}

// Model is the Bubble Tea model running the simulation.
type Model struct {
	game     Game
	clock    *core.FrameClock
	screen   *core.Screen
	canvas   *Canvas
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	held     map[core.Action]int
	hold     int
	music    MusicToggler
	log      *log.Logger
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a model for game. The clock must be the one the game
// was built with; the model advances it once per tick.
func NewModel(game Game, clock *core.FrameClock, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	hold := opts.HoldFrames
	if hold <= 0 {
		hold = cfg.TickRate / 6
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)) // Last row holds the help line
	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		clock:  clock,
		screen: screen,
		canvas: NewCanvas(screen, game.Width(), game.Height(), opts.Sprites),
		keys:   keys,
		mapper: NewKeyMapper(keys),
		help:   h,
		held:   make(map[core.Action]int),
		hold:   hold,
		music:  opts.Music,
		log:    logger,
		config: cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records a press. Movement and fire stay held for the hold
// window; confirm counts for a single tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Music):
		if m.music != nil {
			on := m.music.ToggleMusic()
			m.log.Debug("music toggled", "on", on)
		}
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.mapper.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionConfirm:
		m.held[action] = 1
	case core.ActionLeft:
		delete(m.held, core.ActionRight)
		m.held[action] = m.hold
	case core.ActionRight:
		delete(m.held, core.ActionLeft)
		m.held[action] = m.hold
	case core.ActionFire:
		m.held[action] = m.hold
	}
	return m, nil
}

// handleResize fits the cell buffer to the terminal. The world is scaled,
// so the simulation is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	m.log.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick advances the clock and runs one simulation step with the keys
// currently held.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.clock.Advance()
	m.game.Step(m.input())

	for a, n := range m.held {
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// input builds the frame of held actions.
func (m Model) input() core.InputFrame {
	in := core.NewInputFrame()
	for a := range m.held {
		in.Set(a)
	}
	return in
}

// draw renders the world into the cell buffer.
func (m Model) draw() {
	m.screen.Clear()
	m.game.Render(m.canvas)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create screenshot dir: %w", err)
	}

	filename := fmt.Sprintf("invaders_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game.
func Run(game Game, clock *core.FrameClock, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, clock, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
