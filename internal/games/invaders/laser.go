package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Laser is a projectile fired by the ship (negative speed) or by the
// formation (positive speed). Once inactive it is a tombstone waiting to be
// purged and never becomes active again.
type Laser struct {
	X, Y   int
	W, H   int // Hitbox size
	Speed  int
	Active bool
}

// newLaser creates an active laser with the world's laser hitbox.
func newLaser(w *world, x, y, speed int) *Laser {
	return &Laser{X: x, Y: y, W: w.laserW, H: w.laserH, Speed: speed, Active: true}
}

// Advance moves the laser one tick and deactivates it once it leaves the
// vertical play bounds [top, bottom].
func (l *Laser) Advance(top, bottom int) {
	if !l.Active {
		return
	}
	l.Y += l.Speed
	if l.Y > bottom || l.Y < top {
		l.Active = false
	}
}

// Rect returns the laser's hitbox.
func (l *Laser) Rect() core.Rect {
	return core.NewRect(l.X, l.Y, l.W, l.H)
}

// purgeInactive drops tombstoned lasers, keeping order.
func purgeInactive(lasers []*Laser) []*Laser {
	kept := lasers[:0]
	for _, l := range lasers {
		if l.Active {
			kept = append(kept, l)
		}
	}
	// Clear the tail so dropped lasers can be collected
	for i := len(kept); i < len(lasers); i++ {
		lasers[i] = nil
	}
	return kept
}
