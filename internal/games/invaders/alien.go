package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Kind is an enemy tier.
type Kind int

const (
	KindSkull   Kind = iota // Lowest value, rows 3-4
	KindBug                 // Rows 1-2
	KindOctopus             // Highest value, row 0
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindSkull:
		return "skull"
	case KindBug:
		return "bug"
	case KindOctopus:
		return "octopus"
	default:
		return "unknown"
	}
}

// Sprite returns the sprite drawn for the kind.
func (k Kind) Sprite() core.SpriteID {
	switch k {
	case KindBug:
		return core.SpriteBug
	case KindOctopus:
		return core.SpriteOctopus
	default:
		return core.SpriteSkull
	}
}

// Points returns the score awarded for destroying an enemy of the kind.
func (k Kind) Points(p config.PointsConfig) int {
	switch k {
	case KindBug:
		return p.Bug
	case KindOctopus:
		return p.Octopus
	default:
		return p.Skull
	}
}

// kindForRow maps a formation row to its kind.
func kindForRow(row int) Kind {
	switch {
	case row == 0:
		return KindOctopus
	case row <= 2:
		return KindBug
	default:
		return KindSkull
	}
}

// Alien is one member of the formation.
type Alien struct {
	X, Y int
	Kind Kind

	size        spriteSize
	touched     bool    // Has taken a life by contact this round
	lastContact float64 // Time of the last life taken by contact
}

// Rect returns the alien's hitbox.
func (a *Alien) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.size.w, a.size.h)
}

// canTouch reports whether contact with the ship may take a life now.
func (a *Alien) canTouch(now, cooldown float64) bool {
	return !a.touched || now-a.lastContact >= cooldown
}

// touch records a life taken by contact.
func (a *Alien) touch(now float64) {
	a.touched = true
	a.lastContact = now
}
