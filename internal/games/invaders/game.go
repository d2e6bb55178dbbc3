// Package invaders implements the fixed-formation shooter simulation: the
// ship, the enemy formation, destructible cover, the bonus target, and the
// per-frame collision pass that ties them together.
package invaders

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is the simulation engine. It is idle until a confirm action starts a
// round and goes idle again when the ship runs out of lives.
type Game struct {
	cfg   config.InvadersConfig
	world *world
	clock core.Clock
	audio core.AudioSink
	log   *log.Logger

	// Entities
	ship        *Ship
	formation   *Formation
	covers      []*Cover
	alienLasers []*Laser
	bonus       *Bonus

	// Round state
	run           bool
	lives         int
	score         int
	round         int
	tick          uint64
	lastSpawn     float64 // Time of the last bonus spawn
	spawnInterval float64 // Seconds until the next bonus spawn
	last          Resolution

	musicStarted bool
}

// New creates an idle engine. A nil audio sink is replaced with a silent one
// and a nil logger discards output.
func New(cfg config.InvadersConfig, clock core.Clock, audio core.AudioSink, logger *log.Logger) *Game {
	if audio == nil {
		audio = core.NopAudio{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := newWorld(&cfg)
	g := &Game{
		cfg:   cfg,
		world: w,
		clock: clock,
		audio: audio,
		log:   logger,
	}
	g.ship = newShip(w, cfg.Ship.Step, cfg.Ship.BottomOffset, cfg.Ship.FireCooldown, cfg.Ship.LaserSpeed, audio)
	g.formation = &Formation{world: w}
	g.bonus = newBonus(w, cfg.Bonus.Y, cfg.Bonus.Speed)
	return g
}

// Step advances the engine by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.musicStarted {
		g.audio.PlayMusic()
		g.musicStarted = true
	}
	g.audio.UpdateMusic()

	if g.run {
		g.handleInput(in)
		g.update()
	} else if in.Has(core.ActionConfirm) {
		g.startRound()
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies at most one ship action per frame: left wins over
// right, and moving wins over firing.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.ship.MoveLeft()
	case in.Has(core.ActionRight):
		g.ship.MoveRight()
	case in.Has(core.ActionFire):
		g.ship.FireLaser(g.clock.Now())
	}
}

// update runs one simulation tick of an active round.
func (g *Game) update() {
	g.tick++
	now := g.clock.Now()

	if now-g.lastSpawn > g.spawnInterval {
		side := Side(g.clock.RandInt(0, 1))
		g.bonus.Spawn(side)
		g.lastSpawn = now
		g.spawnInterval = g.nextSpawnInterval()
		g.log.Debug("bonus target spawned", "side", side, "next", g.spawnInterval)
	}

	g.ship.advanceLasers()

	g.formation.Move()
	if l := g.formation.Fire(now, g.clock); l != nil {
		g.alienLasers = append(g.alienLasers, l)
	}

	for _, l := range g.alienLasers {
		l.Advance(g.world.laserTop, g.world.laserBottom)
	}

	g.ship.purgeLasers()
	g.alienLasers = purgeInactive(g.alienLasers)

	g.bonus.Update()

	res := g.resolve(now)
	g.apply(res, now)
	g.last = res
}

// startRound rebuilds every collection and starts a fresh round.
func (g *Game) startRound() {
	g.ship.Reset()
	g.alienLasers = nil
	g.last = Resolution{}
	g.covers = newCovers(g.world, g.cfg.Cover.Count, g.cfg.Cover.Shape, g.cfg.Cover.CellSize, g.world.height-g.cfg.Cover.BottomOffset)
	g.formation = NewFormation(g.world, g.cfg.Formation)
	g.bonus.Kill()

	g.lastSpawn = 0
	g.lives = g.cfg.Rules.Lives
	g.score = 0
	g.tick = 0
	g.run = true
	g.round++
	g.spawnInterval = g.nextSpawnInterval()

	g.log.Info("round started", "round", g.round, "lives", g.lives, "aliens", g.formation.Len())
}

// gameOver ends the round. Collections are kept until the next round.
func (g *Game) gameOver() {
	g.run = false
	g.log.Info("game over", "round", g.round, "score", g.score, "aliens_left", g.formation.Len())
}

func (g *Game) nextSpawnInterval() float64 {
	return float64(g.clock.RandInt(g.cfg.Bonus.MinInterval, g.cfg.Bonus.MaxInterval))
}

// State returns the externally visible state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Lives:   g.lives,
		Running: g.run,
	}
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Running reports whether a round is in progress.
func (g *Game) Running() bool { return g.run }

// LastResolution returns the collisions resolved by the latest tick.
func (g *Game) LastResolution() Resolution { return g.last }

// Ship returns the player ship.
func (g *Game) Ship() *Ship { return g.ship }

// Formation returns the enemy formation.
func (g *Game) Formation() *Formation { return g.formation }

// Covers returns the cover clusters.
func (g *Game) Covers() []*Cover { return g.covers }

// AlienLasers returns the lasers fired by the formation.
func (g *Game) AlienLasers() []*Laser { return g.alienLasers }

// Bonus returns the bonus target.
func (g *Game) Bonus() *Bonus { return g.bonus }

// Width returns the world width in world units.
func (g *Game) Width() int { return g.world.width }

// Height returns the world height in world units.
func (g *Game) Height() int { return g.world.height }

// SpriteSizes returns the size of every sprite, for front-ends that need
// to scale their art to the hitboxes.
func (g *Game) SpriteSizes() map[core.SpriteID]config.SpriteSize {
	out := make(map[core.SpriteID]config.SpriteSize, len(g.world.sprites))
	for id, size := range g.world.sprites {
		out[id] = config.SpriteSize{W: size.w, H: size.h}
	}
	return out
}
