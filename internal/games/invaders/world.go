package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// spriteSize is the size of a sprite in world units.
type spriteSize struct {
	w, h int
}

// world holds the geometry every entity derives its bounds from.
// It is built once from the config and shared read-only.
type world struct {
	width, height int
	margin        int // Side margin for the ship and bonus target

	laserTop    int // Lasers above this y are out of bounds
	laserBottom int // Lasers below this y are out of bounds
	laserW      int
	laserH      int

	sprites map[core.SpriteID]spriteSize
}

// newWorld derives the world geometry from the config.
func newWorld(cfg *config.InvadersConfig) *world {
	w := &world{
		width:       cfg.World.Width,
		height:      cfg.World.Height,
		margin:      cfg.World.SideMargin,
		laserTop:    cfg.World.LaserTop,
		laserBottom: cfg.World.Height - cfg.World.LaserBottom,
		laserW:      cfg.Lasers.Width,
		laserH:      cfg.Lasers.Height,
		sprites:     make(map[core.SpriteID]spriteSize),
	}
	for _, id := range []core.SpriteID{core.SpriteShip, core.SpriteSkull, core.SpriteBug, core.SpriteOctopus, core.SpriteBonus} {
		size := cfg.Sprite(id.String())
		w.sprites[id] = spriteSize{w: size.W, h: size.H}
	}
	return w
}

// sprite returns the size of the given sprite.
func (w *world) sprite(id core.SpriteID) spriteSize {
	return w.sprites[id]
}
