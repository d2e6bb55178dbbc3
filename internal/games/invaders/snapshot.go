package invaders

// Snapshot contains the complete simulation state as primitives.
type Snapshot struct {
	Tick    uint64
	Running bool
	Score   int
	Lives   int
	ShipX   int
	ShipY   int

	DirX, DirY int

	// Each alien is 3 ints: Kind, X, Y
	AlienData []int

	// Each laser is 4 ints: X, Y, Speed, Active
	PlayerLaserData []int
	AlienLaserData  []int

	// Remaining cells per cover
	CoverCells []int

	BonusAlive bool
	BonusX     int
	BonusSpeed int

	LastSpawn     float64
	SpawnInterval float64
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	aliens := g.formation.Aliens()
	alienData := make([]int, 0, len(aliens)*3)
	for _, a := range aliens {
		alienData = append(alienData, int(a.Kind), a.X, a.Y)
	}

	cells := make([]int, len(g.covers))
	for i, c := range g.covers {
		cells[i] = c.Len()
	}

	dx, dy := g.formation.Direction()
	return Snapshot{
		Tick:            g.tick,
		Running:         g.run,
		Score:           g.score,
		Lives:           g.lives,
		ShipX:           g.ship.X,
		ShipY:           g.ship.Y,
		DirX:            dx,
		DirY:            dy,
		AlienData:       alienData,
		PlayerLaserData: flattenLasers(g.ship.Lasers()),
		AlienLaserData:  flattenLasers(g.alienLasers),
		CoverCells:      cells,
		BonusAlive:      g.bonus.Alive,
		BonusX:          g.bonus.X,
		BonusSpeed:      g.bonus.Speed,
		LastSpawn:       g.lastSpawn,
		SpawnInterval:   g.spawnInterval,
	}
}

func flattenLasers(lasers []*Laser) []int {
	data := make([]int, 0, len(lasers)*4)
	for _, l := range lasers {
		active := 0
		if l.Active {
			active = 1
		}
		data = append(data, l.X, l.Y, l.Speed, active)
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + boolBit(snap.Running)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipY) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DirX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DirY)  //#nosec G115 -- hash computation

	for _, data := range [][]int{snap.AlienData, snap.PlayerLaserData, snap.AlienLaserData, snap.CoverCells} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + boolBit(snap.BonusAlive)
	h = h*31 + uint64(snap.BonusX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BonusSpeed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastSpawn*1000)
	h = h*31 + uint64(snap.SpawnInterval)

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
