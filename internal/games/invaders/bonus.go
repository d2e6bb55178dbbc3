package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Side is the edge a bonus target enters from.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Bonus is the side-crossing target. It is dormant until spawned and goes
// dormant again when shot or when it reaches the opposite margin.
type Bonus struct {
	X, Y  int
	Speed int
	Alive bool

	world *world
	size  spriteSize
	y     int
	speed int
}

// newBonus creates a dormant bonus target flying at altitude y.
func newBonus(w *world, y, speed int) *Bonus {
	return &Bonus{
		world: w,
		size:  w.sprite(core.SpriteBonus),
		y:     y,
		speed: speed,
	}
}

// Spawn places the target at the margin of the given side, heading across.
// Spawning a live target restarts its crossing.
func (b *Bonus) Spawn(side Side) {
	b.Y = b.y
	if side == SideLeft {
		b.X = b.world.margin
		b.Speed = b.speed
	} else {
		b.X = b.world.width - b.size.w - b.world.margin
		b.Speed = -b.speed
	}
	b.Alive = true
}

// Update moves a live target and retires it once it passes either margin.
// Crossing without being hit is worth nothing.
func (b *Bonus) Update() {
	if !b.Alive {
		return
	}
	b.X += b.Speed
	if b.X > b.world.width-b.size.w-b.world.margin || b.X < b.world.margin {
		b.Alive = false
	}
}

// Kill retires the target after a hit.
func (b *Bonus) Kill() {
	b.Alive = false
}

// Rect returns the target's hitbox, which has no area while dormant.
func (b *Bonus) Rect() core.Rect {
	if !b.Alive {
		return core.NewRect(b.X, b.Y, 0, 0)
	}
	return core.NewRect(b.X, b.Y, b.size.w, b.size.h)
}
