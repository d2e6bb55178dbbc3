package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// newTestCanvas maps an 800x800 world onto 80x20 cells: ten units per
// column, forty per row.
func newTestCanvas() (*Canvas, *core.Screen) {
	screen := core.NewScreen(80, 20)
	sprites := map[core.SpriteID]config.SpriteSize{
		core.SpriteShip: {W: 60, H: 32},
	}
	return NewCanvas(screen, 800, 800, sprites), screen
}

func TestCanvasFillRectShapes(t *testing.T) {
	tests := []struct {
		name string
		rect core.Rect
		x, y int
		want rune
	}{
		{"laser", core.NewRect(100, 400, 4, 15), 10, 10, '│'},
		{"separator", core.NewRect(25, 730, 750, 3), 40, 18, '─'},
		{"cover cell", core.NewRect(300, 300, 3, 3), 30, 7, '█'},
		{"frame side", core.NewRect(10, 10, 2, 780), 1, 12, '│'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, screen := newTestCanvas()
			c.FillRect(tt.rect, core.ColorYellow)

			cell := screen.GetCell(tt.x, tt.y)
			assert.Equal(t, tt.want, cell.Rune)
			assert.Equal(t, core.ColorYellow, cell.Color)
		})
	}
}

func TestCanvasSeparatorSpan(t *testing.T) {
	c, screen := newTestCanvas()
	c.FillRect(core.NewRect(25, 730, 750, 3), core.ColorWhite)

	assert.Equal(t, ' ', screen.Get(1, 18))
	assert.Equal(t, '─', screen.Get(2, 18))
	assert.Equal(t, '─', screen.Get(76, 18))
	assert.Equal(t, ' ', screen.Get(77, 18))
	assert.Equal(t, ' ', screen.Get(40, 17))
}

func TestCanvasEmptyRectDrawsNothing(t *testing.T) {
	c, screen := newTestCanvas()
	c.FillRect(core.NewRect(100, 100, 0, 10), core.ColorWhite)
	c.FillRect(core.NewRect(100, 100, 10, 0), core.ColorWhite)

	assert.Equal(t, core.NewScreen(80, 20).String(), screen.String())
}

func TestCanvasDrawText(t *testing.T) {
	c, screen := newTestCanvas()
	c.DrawText(570, 740, "GAME OVER", core.ColorWhite)

	assert.Equal(t, 'G', screen.Get(57, 18))
	assert.Equal(t, 'R', screen.Get(65, 18))
}

func TestCanvasDrawSpriteCentered(t *testing.T) {
	c, screen := newTestCanvas()
	c.DrawSprite(core.SpriteShip, 370, 664)

	assert.Equal(t, '▟', screen.Get(39, 17))
	assert.Equal(t, '█', screen.Get(40, 17))
	assert.Equal(t, '▙', screen.Get(41, 17))
	assert.Equal(t, core.ColorGreen, screen.GetCell(40, 17).Color)
}

func TestCanvasClipsOffscreen(t *testing.T) {
	c, screen := newTestCanvas()
	assert.NotPanics(t, func() {
		c.DrawText(2000, 2000, "far away", core.ColorWhite)
		c.FillRect(core.NewRect(-50, -50, 20, 20), core.ColorWhite)
		c.DrawSprite(core.SpriteBonus, 790, -40)
	})
	assert.Equal(t, 80, screen.Width())
}
