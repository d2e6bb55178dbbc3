package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Canvas draws one frame onto an Ebitengine image. World and screen
// coordinates are the same; Layout does the scaling.
type Canvas struct {
	dst     *ebiten.Image
	sprites map[core.SpriteID]config.SpriteSize
}

// DrawSprite draws the sprite's pixel mask.
func (c *Canvas) DrawSprite(id core.SpriteID, x, y int) {
	clr := rgba(spriteColors[id])
	for _, p := range spritePixels(id, x, y, c.sprites[id]) {
		vector.DrawFilledRect(c.dst, p.X, p.Y, p.W, p.H, clr, false)
	}
}

// FillRect draws a solid rectangle.
func (c *Canvas) FillRect(r core.Rect, clr core.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(clr), false)
}

// DrawText prints text with the debug font. The font is always white.
func (c *Canvas) DrawText(x, y int, text string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.dst, text, x, y)
}
