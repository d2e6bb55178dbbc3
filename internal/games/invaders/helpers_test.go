package invaders

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// testClock is a manually driven clock. RandInt pops scripted rolls and
// falls back to the lower bound once they run out.
type testClock struct {
	now   float64
	rolls []int
	calls [][2]int
}

func (c *testClock) Now() float64 { return c.now }

func (c *testClock) RandInt(lo, hi int) int {
	c.calls = append(c.calls, [2]int{lo, hi})
	if len(c.rolls) == 0 {
		return lo
	}
	v := c.rolls[0]
	c.rolls = c.rolls[1:]
	return core.Clamp(v, lo, hi)
}

// recordingAudio remembers every call it receives.
type recordingAudio struct {
	sounds       []core.Sound
	musicStarts  int
	musicUpdates int
}

func (a *recordingAudio) Play(s core.Sound) { a.sounds = append(a.sounds, s) }
func (a *recordingAudio) PlayMusic()        { a.musicStarts++ }
func (a *recordingAudio) UpdateMusic()      { a.musicUpdates++ }

func (a *recordingAudio) count(s core.Sound) int {
	n := 0
	for _, got := range a.sounds {
		if got == s {
			n++
		}
	}
	return n
}

// recordingCanvas records draw calls as strings.
type recordingCanvas struct {
	calls []string
}

func (c *recordingCanvas) DrawSprite(id core.SpriteID, x, y int) {
	c.calls = append(c.calls, fmt.Sprintf("sprite %s %d,%d", id, x, y))
}

func (c *recordingCanvas) FillRect(r core.Rect, _ core.Color) {
	c.calls = append(c.calls, fmt.Sprintf("rect %d,%d %dx%d", r.X, r.Y, r.W, r.H))
}

func (c *recordingCanvas) DrawText(x, y int, text string, _ core.Color) {
	c.calls = append(c.calls, fmt.Sprintf("text %d,%d %s", x, y, text))
}

// newTestGame returns an idle game on the default config.
func newTestGame(t *testing.T) (*Game, *testClock, *recordingAudio) {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	require.NoError(t, cfg.Validate())

	clock := &testClock{}
	audio := &recordingAudio{}
	return New(cfg, clock, audio, nil), clock, audio
}

// startedGame returns a game with a round in progress.
func startedGame(t *testing.T) (*Game, *testClock, *recordingAudio) {
	t.Helper()
	g, clock, audio := newTestGame(t)
	g.Step(core.InputOf(core.ActionConfirm))
	require.True(t, g.Running())
	return g, clock, audio
}

func testWorld(t *testing.T) *world {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	return newWorld(&cfg)
}

func newAlien(w *world, kind Kind, x, y int) *Alien {
	return &Alien{X: x, Y: y, Kind: kind, size: w.sprite(kind.Sprite())}
}

func idle() core.InputFrame { return core.NewInputFrame() }
