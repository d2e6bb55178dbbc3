package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Formation is the grid of enemies with its shared drift direction and
// fire timer. Both are mutated only by Move and Fire.
type Formation struct {
	world  *world
	aliens []*Alien

	dx, dy int

	top, bottom  int // Vertical corridor the formation bounces in
	fireInterval float64
	laserSpeed   int
	lastFire     float64
}

// NewFormation builds a full grid at the configured origin, heading right
// and down.
func NewFormation(w *world, cfg config.FormationConfig) *Formation {
	f := &Formation{
		world:        w,
		aliens:       make([]*Alien, 0, cfg.Rows*cfg.Cols),
		dx:           1,
		dy:           1,
		top:          cfg.TopBound,
		bottom:       w.height - cfg.BottomMargin,
		fireInterval: cfg.FireInterval,
		laserSpeed:   cfg.LaserSpeed,
	}
	for row := range cfg.Rows {
		kind := kindForRow(row)
		for col := range cfg.Cols {
			f.aliens = append(f.aliens, &Alien{
				X:    cfg.OriginX + col*cfg.Spacing,
				Y:    cfg.OriginY + row*cfg.Spacing,
				Kind: kind,
				size: w.sprite(kind.Sprite()),
			})
		}
	}
	return f
}

// Move steers and shifts the whole formation by one unit per axis.
// Every alien is tested against the corridor first, so a flip caused by any
// one of them applies to all of them in the same frame.
func (f *Formation) Move() {
	for _, a := range f.aliens {
		switch {
		case a.X+a.size.w > f.world.width-f.world.margin:
			f.dx = -1
		case a.X < f.world.margin:
			f.dx = 1
		}
		switch {
		case a.Y+a.size.h > f.bottom:
			f.dy = -1
		case a.Y < f.top:
			f.dy = 1
		}
	}
	for _, a := range f.aliens {
		a.X += f.dx
		a.Y += f.dy
	}
}

// Fire returns a downward laser from a randomly chosen alien, or nil when
// the fire interval has not elapsed or no alien is left.
func (f *Formation) Fire(now float64, clock core.Clock) *Laser {
	if len(f.aliens) == 0 {
		return nil
	}
	if now-f.lastFire < f.fireInterval {
		return nil
	}
	shooter := f.aliens[clock.RandInt(0, len(f.aliens)-1)]
	f.lastFire = now
	return newLaser(f.world, shooter.X+shooter.size.w/2, shooter.Y+shooter.size.h, f.laserSpeed)
}

// Remove deletes the aliens at the given indices, keeping order.
// Indices refer to the current collection; duplicates are ignored.
func (f *Formation) Remove(indices []int) int {
	if len(indices) == 0 {
		return 0
	}
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(f.aliens) {
			drop[i] = struct{}{}
		}
	}
	kept := f.aliens[:0]
	for i, a := range f.aliens {
		if _, ok := drop[i]; !ok {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(f.aliens); i++ {
		f.aliens[i] = nil
	}
	f.aliens = kept
	return len(drop)
}

// Len returns the number of aliens left.
func (f *Formation) Len() int {
	return len(f.aliens)
}

// Empty reports whether the formation has been cleared.
func (f *Formation) Empty() bool {
	return len(f.aliens) == 0
}

// Aliens returns the remaining aliens in formation order.
func (f *Formation) Aliens() []*Alien {
	return f.aliens
}

// Direction returns the shared drift direction.
func (f *Formation) Direction() (dx, dy int) {
	return f.dx, f.dy
}
