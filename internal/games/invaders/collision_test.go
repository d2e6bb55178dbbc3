package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// clearField empties the battlefield of a started game so a test can place
// exactly the entities it needs.
func clearField(g *Game) {
	g.formation.aliens = nil
	g.covers = nil
	g.alienLasers = nil
	g.ship.lasers = nil
	g.bonus.Kill()
}

func firePlayer(g *Game, x, y int) *Laser {
	l := newLaser(g.world, x, y, -6)
	g.ship.lasers = append(g.ship.lasers, l)
	return l
}

func fireEnemy(g *Game, x, y int) *Laser {
	l := newLaser(g.world, x, y, 6)
	g.alienLasers = append(g.alienLasers, l)
	return l
}

func TestPlayerLaserKillsAtMostOneAlien(t *testing.T) {
	g, _, audio := startedGame(t)
	clearField(g)
	skull := newAlien(g.world, KindSkull, 300, 300)
	bug := newAlien(g.world, KindBug, 300, 300)
	g.formation.aliens = []*Alien{skull, bug}
	l := firePlayer(g, 310, 305)

	res := g.resolve(0)
	require.Equal(t, 1, res.Count(OutcomeAlienHit))
	assert.Equal(t, 0, res.Outcomes[0].Alien)
	assert.Equal(t, 100, res.Score())

	g.apply(res, 0)
	assert.Equal(t, 100, g.Score())
	assert.False(t, l.Active)
	assert.Equal(t, []*Alien{bug}, g.formation.Aliens())
	assert.Equal(t, 1, audio.count(core.SoundExplosion))
}

func TestTwoLasersKillTwoOverlappingAliens(t *testing.T) {
	g, _, _ := startedGame(t)
	clearField(g)
	g.formation.aliens = []*Alien{
		newAlien(g.world, KindSkull, 300, 300),
		newAlien(g.world, KindOctopus, 300, 300),
	}
	firePlayer(g, 310, 305)
	firePlayer(g, 320, 305)

	res := g.resolve(0)
	require.Equal(t, 2, res.Count(OutcomeAlienHit))
	assert.Equal(t, 0, res.Outcomes[0].Alien)
	assert.Equal(t, 1, res.Outcomes[1].Alien, "a destroyed alien cannot be hit again")

	g.apply(res, 0)
	assert.Equal(t, 400, g.Score())
	assert.Zero(t, g.formation.Len())
}

func TestAlienCheckedBeforeCover(t *testing.T) {
	g, _, _ := startedGame(t)
	clearField(g)
	cover := NewCover(100, 600, []string{"11111111"}, 3)
	g.covers = []*Cover{cover}
	g.formation.aliens = []*Alien{newAlien(g.world, KindSkull, 100, 590)}
	firePlayer(g, 105, 598)

	res := g.resolve(0)
	assert.Equal(t, 1, res.Count(OutcomeAlienHit))
	assert.Zero(t, res.Count(OutcomeCoverHit), "a spent laser is not tested against cover")
	assert.Zero(t, res.Count(OutcomeCoverCrush), "a destroyed alien does not crush cover")

	g.apply(res, 0)
	assert.Equal(t, 8, cover.Len())
	assert.Equal(t, 100, g.Score())
}

func TestCoverCheckedBeforeBonus(t *testing.T) {
	g, _, _ := startedGame(t)
	clearField(g)
	cover := NewCover(80, 95, []string{"11"}, 3)
	g.covers = []*Cover{cover}
	g.bonus.Spawn(SideLeft)
	l := firePlayer(g, 85, 95)
	require.True(t, l.Rect().Intersects(g.bonus.Rect()))

	res := g.resolve(0)
	assert.Equal(t, 1, res.Count(OutcomeCoverHit))
	assert.Zero(t, res.Count(OutcomeBonusHit))

	g.apply(res, 0)
	assert.True(t, g.bonus.Alive)
	assert.False(t, l.Active)
	assert.Equal(t, 1, cover.Len())
	assert.Zero(t, g.Score())
}

func TestPlayerLaserHitsBonus(t *testing.T) {
	g, _, audio := startedGame(t)
	clearField(g)
	g.bonus.Spawn(SideLeft)
	l := firePlayer(g, 50, 100)

	res := g.resolve(0)
	require.Equal(t, 1, res.Count(OutcomeBonusHit))
	assert.Equal(t, 500, res.Score())

	g.apply(res, 0)
	assert.Equal(t, 500, g.Score())
	assert.False(t, g.bonus.Alive)
	assert.False(t, l.Active)
	assert.Equal(t, 1, audio.count(core.SoundExplosion))
}

func TestSecondLaserPassesThroughErasedCover(t *testing.T) {
	g, _, _ := startedGame(t)
	clearField(g)
	cover := NewCover(200, 300, []string{"11"}, 3)
	g.covers = []*Cover{cover}
	first := firePlayer(g, 200, 295)
	second := firePlayer(g, 200, 295)

	res := g.resolve(0)
	require.Equal(t, 1, res.Count(OutcomeCoverHit))
	assert.Equal(t, 0, res.Outcomes[0].Laser)

	g.apply(res, 0)
	assert.False(t, first.Active)
	assert.True(t, second.Active)
	assert.True(t, cover.Empty())
}

func TestEnemyLaserHitsShipBeforeCover(t *testing.T) {
	g, _, audio := startedGame(t)
	clearField(g)
	cover := NewCover(370, 670, []string{"11"}, 3)
	g.covers = []*Cover{cover}
	l := fireEnemy(g, 372, 668)

	res := g.resolve(0)
	require.Equal(t, 1, res.Count(OutcomeShipHit))
	assert.Zero(t, res.Count(OutcomeCoverHit))
	assert.Equal(t, -1, res.Lives())

	g.apply(res, 0)
	assert.Equal(t, 2, g.Lives())
	assert.False(t, l.Active)
	assert.Equal(t, 2, cover.Len())
	assert.True(t, g.Running())
	assert.Zero(t, audio.count(core.SoundExplosion))
}

func TestEnemyLaserErasesCover(t *testing.T) {
	g, _, _ := startedGame(t)
	clearField(g)
	cover := NewCover(200, 300, []string{"111"}, 3)
	g.covers = []*Cover{cover}
	l := fireEnemy(g, 203, 290)

	g.apply(g.resolve(0), 0)
	assert.False(t, l.Active)
	assert.Equal(t, 1, cover.Len())
	assert.Equal(t, 3, g.Lives())
}

func TestAlienCrushesCoverSilently(t *testing.T) {
	g, _, audio := startedGame(t)
	clearField(g)
	cover := NewCover(100, 600, []string{"1111111111111111111111"}, 3)
	g.covers = []*Cover{cover}
	g.formation.aliens = []*Alien{newAlien(g.world, KindSkull, 100, 590)}

	res := g.resolve(0)
	require.Equal(t, 1, res.Count(OutcomeCoverCrush))

	g.apply(res, 0)
	// The skull is 40 wide: cells from x=100 to x=139 are gone.
	assert.Equal(t, 22-14, cover.Len())
	assert.Equal(t, 1, g.formation.Len(), "the alien survives")
	assert.Zero(t, g.Score())
	assert.Empty(t, audio.sounds)
}

func TestAlienContactTakesLifeEveryFrame(t *testing.T) {
	g, _, _ := startedGame(t)
	clearField(g)
	g.formation.aliens = []*Alien{newAlien(g.world, KindSkull, g.ship.X, g.ship.Y)}

	g.apply(g.resolve(0), 0)
	assert.Equal(t, 2, g.Lives())
	g.apply(g.resolve(0), 0)
	assert.Equal(t, 1, g.Lives())
	assert.Equal(t, 1, g.formation.Len(), "contact does not remove the alien")

	g.apply(g.resolve(0), 0)
	assert.Equal(t, 0, g.Lives())
	assert.False(t, g.Running())
}

func TestAlienContactCooldownLimitsLifeLoss(t *testing.T) {
	g, _, _ := startedGame(t)
	g.cfg.Rules.ContactCooldown = 1
	clearField(g)
	g.formation.aliens = []*Alien{newAlien(g.world, KindSkull, g.ship.X, g.ship.Y)}

	g.apply(g.resolve(0), 0)
	assert.Equal(t, 2, g.Lives())
	g.apply(g.resolve(0.5), 0.5)
	assert.Equal(t, 2, g.Lives())
	g.apply(g.resolve(1), 1)
	assert.Equal(t, 1, g.Lives())
}

func TestLastLifeEndsRoundInSamePass(t *testing.T) {
	g, _, _ := startedGame(t)
	clearField(g)
	g.lives = 2
	fireEnemy(g, g.ship.X+10, g.ship.Y)
	fireEnemy(g, g.ship.X+30, g.ship.Y)

	res := g.resolve(0)
	require.Equal(t, 2, res.Count(OutcomeShipHit))

	g.apply(res, 0)
	assert.Equal(t, 0, g.Lives())
	assert.False(t, g.Running())
}

func TestResolveDoesNotMutate(t *testing.T) {
	g, _, audio := startedGame(t)
	clearField(g)
	cover := NewCover(200, 300, []string{"11"}, 3)
	g.covers = []*Cover{cover}
	g.formation.aliens = []*Alien{newAlien(g.world, KindBug, 300, 300)}
	hit := firePlayer(g, 310, 305)
	blocked := firePlayer(g, 200, 295)

	first := g.resolve(0)
	second := g.resolve(0)
	assert.Equal(t, first, second)

	assert.True(t, hit.Active)
	assert.True(t, blocked.Active)
	assert.Equal(t, 1, g.formation.Len())
	assert.Equal(t, 2, cover.Len())
	assert.Zero(t, g.Score())
	assert.Empty(t, audio.sounds)
}

func TestInactiveLasersAreIgnored(t *testing.T) {
	g, _, _ := startedGame(t)
	clearField(g)
	g.formation.aliens = []*Alien{newAlien(g.world, KindBug, 300, 300)}
	firePlayer(g, 310, 305).Active = false
	fireEnemy(g, g.ship.X+10, g.ship.Y).Active = false

	assert.Empty(t, g.resolve(0).Outcomes)
}
