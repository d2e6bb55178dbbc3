package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// OutcomeKind identifies what a collision did.
type OutcomeKind int

const (
	OutcomeAlienHit   OutcomeKind = iota // Player laser destroyed an alien
	OutcomeCoverHit                      // Laser erased cover cells
	OutcomeBonusHit                      // Player laser destroyed the bonus target
	OutcomeShipHit                       // Enemy laser hit the ship
	OutcomeCoverCrush                    // Alien body erased cover cells
	OutcomeContact                       // Alien body touched the ship
)

// String returns the outcome's name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAlienHit:
		return "alien_hit"
	case OutcomeCoverHit:
		return "cover_hit"
	case OutcomeBonusHit:
		return "bonus_hit"
	case OutcomeShipHit:
		return "ship_hit"
	case OutcomeCoverCrush:
		return "cover_crush"
	case OutcomeContact:
		return "contact"
	default:
		return "unknown"
	}
}

// Outcome is a single collision found by the resolution pass.
type Outcome struct {
	Kind  OutcomeKind
	Laser int       // Index into the firing side's lasers, -1 if none
	Enemy bool      // Laser belongs to the formation
	Alien int       // Index into the formation, -1 if none
	Erase core.Rect // Area whose cover cells are removed
	Score int
	Lives int // Lives delta, zero or negative
}

// Resolution is the ordered list of outcomes of one frame.
type Resolution struct {
	Outcomes []Outcome
}

// Score returns the total score awarded.
func (r Resolution) Score() int {
	total := 0
	for _, o := range r.Outcomes {
		total += o.Score
	}
	return total
}

// Lives returns the total lives delta.
func (r Resolution) Lives() int {
	total := 0
	for _, o := range r.Outcomes {
		total += o.Lives
	}
	return total
}

// Count returns how many outcomes of the given kind were found.
func (r Resolution) Count(kind OutcomeKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Resolution) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// cellRef addresses one cover cell.
type cellRef struct {
	cover, cell int
}

// coverView tracks cells already claimed during resolution so that later
// tests see the cover as it will be after earlier outcomes are applied.
type coverView struct {
	covers []*Cover
	erased map[cellRef]struct{}
}

func newCoverView(covers []*Cover) *coverView {
	return &coverView{covers: covers, erased: make(map[cellRef]struct{})}
}

// erase claims every remaining cell intersecting r and reports whether any
// was found.
func (v *coverView) erase(r core.Rect) bool {
	hit := false
	for ci, c := range v.covers {
		for i, cell := range c.Cells() {
			ref := cellRef{ci, i}
			if _, gone := v.erased[ref]; gone {
				continue
			}
			if cell.Intersects(r) {
				v.erased[ref] = struct{}{}
				hit = true
			}
		}
	}
	return hit
}

// resolve finds every collision of the frame without changing any state.
// Order is fixed: player lasers (aliens, then cover, then bonus), enemy
// lasers (ship, then cover), then alien bodies (cover, then ship). A laser
// resolves against at most one target.
func (g *Game) resolve(now float64) Resolution {
	var res Resolution
	cover := newCoverView(g.covers)
	aliens := g.formation.Aliens()
	dead := make(map[int]struct{})
	bonusAlive := g.bonus.Alive

	for li, l := range g.ship.Lasers() {
		if !l.Active {
			continue
		}
		lr := l.Rect()

		hit := false
		for ai, a := range aliens {
			if _, ok := dead[ai]; ok {
				continue
			}
			if a.Rect().Intersects(lr) {
				dead[ai] = struct{}{}
				res.add(Outcome{Kind: OutcomeAlienHit, Laser: li, Alien: ai, Score: a.Kind.Points(g.cfg.Formation.Points)})
				hit = true
				break
			}
		}
		if hit {
			continue
		}

		if cover.erase(lr) {
			res.add(Outcome{Kind: OutcomeCoverHit, Laser: li, Alien: -1, Erase: lr})
			continue
		}

		if bonusAlive && g.bonus.Rect().Intersects(lr) {
			bonusAlive = false
			res.add(Outcome{Kind: OutcomeBonusHit, Laser: li, Alien: -1, Score: g.cfg.Bonus.Points})
		}
	}

	shipRect := g.ship.Rect()
	for li, l := range g.alienLasers {
		if !l.Active {
			continue
		}
		lr := l.Rect()
		if lr.Intersects(shipRect) {
			res.add(Outcome{Kind: OutcomeShipHit, Laser: li, Enemy: true, Alien: -1, Lives: -1})
			continue
		}
		if cover.erase(lr) {
			res.add(Outcome{Kind: OutcomeCoverHit, Laser: li, Enemy: true, Alien: -1, Erase: lr})
		}
	}

	for ai, a := range aliens {
		if _, ok := dead[ai]; ok {
			continue
		}
		ar := a.Rect()
		if cover.erase(ar) {
			res.add(Outcome{Kind: OutcomeCoverCrush, Laser: -1, Alien: ai, Erase: ar})
		}
		if ar.Intersects(shipRect) && a.canTouch(now, g.cfg.Rules.ContactCooldown) {
			res.add(Outcome{Kind: OutcomeContact, Laser: -1, Alien: ai, Lives: -1})
		}
	}

	return res
}

// apply carries out a resolution: it spends lasers, erases cover, removes
// aliens, kills the bonus target and updates score and lives. The round ends
// when lives run out.
func (g *Game) apply(res Resolution, now float64) {
	var killed []int
	for _, o := range res.Outcomes {
		switch o.Kind {
		case OutcomeAlienHit:
			g.spendLaser(o)
			killed = append(killed, o.Alien)
			g.audio.Play(core.SoundExplosion)
			g.log.Debug("alien destroyed", "kind", g.formation.Aliens()[o.Alien].Kind, "points", o.Score)
		case OutcomeCoverHit:
			g.spendLaser(o)
			g.eraseCover(o.Erase)
		case OutcomeBonusHit:
			g.spendLaser(o)
			g.bonus.Kill()
			g.audio.Play(core.SoundExplosion)
			g.log.Debug("bonus target destroyed", "points", o.Score)
		case OutcomeShipHit:
			g.spendLaser(o)
		case OutcomeCoverCrush:
			g.eraseCover(o.Erase)
		case OutcomeContact:
			g.formation.Aliens()[o.Alien].touch(now)
		}
		g.score += o.Score
		g.lives += o.Lives
		if o.Lives != 0 {
			g.log.Debug("ship hit", "cause", o.Kind, "lives", g.lives)
		}
	}
	g.formation.Remove(killed)

	if g.lives <= 0 && g.run {
		g.gameOver()
	}
}

func (g *Game) spendLaser(o Outcome) {
	if o.Enemy {
		g.alienLasers[o.Laser].Active = false
		return
	}
	g.ship.Lasers()[o.Laser].Active = false
}

func (g *Game) eraseCover(r core.Rect) {
	for _, c := range g.covers {
		c.RemoveCellsCollidingWith(r)
	}
}
