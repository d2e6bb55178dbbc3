package tui

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// spriteArt is the cell art drawn for each sprite, centered on it.
var spriteArt = map[core.SpriteID]string{
	core.SpriteShip:    "▟█▙",
	core.SpriteSkull:   "<◘>",
	core.SpriteBug:     "/Ж\\",
	core.SpriteOctopus: "{Ѫ}",
	core.SpriteBonus:   "«◙◙»",
}

// spriteColors colors each sprite.
var spriteColors = map[core.SpriteID]core.Color{
	core.SpriteShip:    core.ColorGreen,
	core.SpriteSkull:   core.ColorWhite,
	core.SpriteBug:     core.ColorCyan,
	core.SpriteOctopus: core.ColorMagenta,
	core.SpriteBonus:   core.ColorRed,
}

// Canvas draws world-space calls onto a terminal cell buffer, scaling the
// world to fit the screen.
type Canvas struct {
	screen         *core.Screen
	worldW, worldH int
	sprites        map[core.SpriteID]config.SpriteSize
}

// NewCanvas creates a canvas mapping a worldW x worldH world onto screen.
func NewCanvas(screen *core.Screen, worldW, worldH int, sprites map[core.SpriteID]config.SpriteSize) *Canvas {
	return &Canvas{screen: screen, worldW: worldW, worldH: worldH, sprites: sprites}
}

func (c *Canvas) sx(x int) int {
	if c.worldW <= 0 {
		return 0
	}
	return x * c.screen.Width() / c.worldW
}

func (c *Canvas) sy(y int) int {
	if c.worldH <= 0 {
		return 0
	}
	return y * c.screen.Height() / c.worldH
}

// cells maps a world rectangle to the cells it covers. Anything with area
// covers at least one cell.
func (c *Canvas) cells(r core.Rect) core.Rect {
	x0, y0 := c.sx(r.X), c.sy(r.Y)
	x1, y1 := max(x0+1, c.sx(r.Right())), max(y0+1, c.sy(r.Bottom()))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawSprite draws the sprite's art centered on its scaled position.
func (c *Canvas) DrawSprite(id core.SpriteID, x, y int) {
	size := c.sprites[id]
	span := c.cells(core.NewRect(x, y, size.W, size.H))
	art := []rune(spriteArt[id])
	cx, _ := span.Center()
	row := c.sy(y + size.H/2)
	c.screen.DrawText(cx-len(art)/2, row, string(art), spriteColors[id])
}

// FillRect fills the cells covered by r. Thin shapes are drawn as lines.
func (c *Canvas) FillRect(r core.Rect, color core.Color) {
	if r.Empty() {
		return
	}
	fill := '█'
	switch {
	case r.H > 2*r.W:
		fill = '│'
	case r.W > 2*r.H && c.cells(r).H == 1:
		fill = '─'
	}
	c.screen.DrawRect(c.cells(r), fill, color)
}

// DrawText writes text starting at the scaled position.
func (c *Canvas) DrawText(x, y int, text string, color core.Color) {
	c.screen.DrawText(c.sx(x), c.sy(y), text, color)
}
