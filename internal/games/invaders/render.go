package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// HUD labels
const (
	LabelScore    = "SCORE"
	LabelLevel    = "LEVEL 01"
	LabelGameOver = "GAME OVER"
	LabelStart    = "PRESS ENTER"
)

// HUD layout, in world units from the world edges
const (
	hudInset      = 10 // Frame outline inset
	hudFrameWidth = 2
	hudLineFromB  = 70 // Separator line distance from the bottom
	hudLineWidth  = 3
	hudLabelX     = 230 // Level label distance from the right
	hudLabelFromB = 60  // Level label distance from the bottom
	hudLivesFromB = 55  // Life icons distance from the bottom
	hudLifeStep   = 50
	hudTextX      = 50
	hudScoreY     = 15
	hudScoreValY  = 40
)

// Render draws the HUD, then the world in a fixed order: ship, player
// lasers, cover, aliens, enemy lasers, bonus target.
func (g *Game) Render(c core.Canvas) {
	g.renderHUD(c)

	c.DrawSprite(core.SpriteShip, g.ship.X, g.ship.Y)

	for _, l := range g.ship.Lasers() {
		if l.Active {
			c.FillRect(l.Rect(), core.ColorYellow)
		}
	}

	for _, cv := range g.covers {
		for _, cell := range cv.Cells() {
			c.FillRect(cell, core.ColorYellow)
		}
	}

	for _, a := range g.formation.Aliens() {
		c.DrawSprite(a.Kind.Sprite(), a.X, a.Y)
	}

	for _, l := range g.alienLasers {
		if l.Active {
			c.FillRect(l.Rect(), core.ColorYellow)
		}
	}

	if g.bonus.Alive {
		c.DrawSprite(core.SpriteBonus, g.bonus.X, g.bonus.Y)
	}
}

func (g *Game) renderHUD(c core.Canvas) {
	w, h := g.world.width, g.world.height

	// Frame outline
	frame := core.NewRect(hudInset, hudInset, w-2*hudInset, h-2*hudInset)
	c.FillRect(core.NewRect(frame.X, frame.Y, frame.W, hudFrameWidth), core.ColorYellow)
	c.FillRect(core.NewRect(frame.X, frame.Bottom()-hudFrameWidth, frame.W, hudFrameWidth), core.ColorYellow)
	c.FillRect(core.NewRect(frame.X, frame.Y, hudFrameWidth, frame.H), core.ColorYellow)
	c.FillRect(core.NewRect(frame.Right()-hudFrameWidth, frame.Y, hudFrameWidth, frame.H), core.ColorYellow)

	// Separator above the status row
	margin := g.world.margin
	c.FillRect(core.NewRect(margin, h-hudLineFromB, w-2*margin, hudLineWidth), core.ColorYellow)

	c.DrawText(hudTextX, hudScoreY, LabelScore, core.ColorYellow)
	c.DrawText(hudTextX, hudScoreValY, fmt.Sprintf("%05d", g.score), core.ColorYellow)

	var label string
	switch {
	case g.run:
		label = LabelLevel
	case g.round == 0:
		label = LabelStart
	default:
		label = LabelGameOver
	}
	c.DrawText(w-hudLabelX, h-hudLabelFromB, label, core.ColorYellow)

	for i := 1; i <= g.lives; i++ {
		c.DrawSprite(core.SpriteShip, i*hudLifeStep, h-hudLivesFromB)
	}
}
