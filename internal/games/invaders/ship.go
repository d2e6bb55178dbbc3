package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Ship is the player-controlled ship. It owns the lasers it fires.
type Ship struct {
	X, Y int

	world        *world
	size         spriteSize
	step         int
	bottomOffset int
	cooldown     float64
	laserSpeed   int
	lastFire     float64
	lasers       []*Laser
	audio        core.AudioSink
}

// newShip creates a ship centered at the bottom of the world.
func newShip(w *world, step, bottomOffset int, cooldown float64, laserSpeed int, audio core.AudioSink) *Ship {
	s := &Ship{
		world:        w,
		size:         w.sprite(core.SpriteShip),
		step:         step,
		bottomOffset: bottomOffset,
		cooldown:     cooldown,
		laserSpeed:   laserSpeed,
		audio:        audio,
	}
	s.Reset()
	return s
}

// MoveLeft moves the ship one step left, stopping at the side margin.
func (s *Ship) MoveLeft() {
	s.X -= s.step
	if s.X < s.world.margin {
		s.X = s.world.margin
	}
}

// MoveRight moves the ship one step right, stopping at the side margin.
func (s *Ship) MoveRight() {
	s.X += s.step
	if limit := s.world.width - s.size.w - s.world.margin; s.X > limit {
		s.X = limit
	}
}

// FireLaser fires an upward laser from the ship's center unless the
// cooldown since the last shot has not elapsed. Reports whether it fired.
func (s *Ship) FireLaser(now float64) bool {
	if now-s.lastFire < s.cooldown {
		return false
	}
	s.lasers = append(s.lasers, newLaser(s.world, s.X+s.size.w/2-s.world.laserW/2, s.Y, -s.laserSpeed))
	s.lastFire = now
	s.audio.Play(core.SoundLaser)
	return true
}

// Lasers returns the ship's lasers, including tombstones not yet purged.
func (s *Ship) Lasers() []*Laser {
	return s.lasers
}

// Rect returns the ship's hitbox.
func (s *Ship) Rect() core.Rect {
	return core.NewRect(s.X, s.Y, s.size.w, s.size.h)
}

// Reset recenters the ship and drops its lasers.
func (s *Ship) Reset() {
	s.X = (s.world.width - s.size.w) / 2
	s.Y = s.world.height - s.size.h - s.bottomOffset
	s.lasers = nil
}

// advanceLasers moves every laser one tick.
func (s *Ship) advanceLasers() {
	for _, l := range s.lasers {
		l.Advance(s.world.laserTop, s.world.laserBottom)
	}
}

// purgeLasers drops tombstoned lasers.
func (s *Ship) purgeLasers() {
	s.lasers = purgeInactive(s.lasers)
}
