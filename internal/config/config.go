// Package config provides YAML-based game configuration loading for the
// invaders engine: world geometry, entity tuning and sprite sizes.
package config

// InvadersConfig contains all gameplay configuration.
type InvadersConfig struct {
	World     WorldConfig           `yaml:"world"`
	Ship      ShipConfig            `yaml:"ship"`
	Lasers    LaserConfig           `yaml:"lasers"`
	Formation FormationConfig       `yaml:"formation"`
	Bonus     BonusConfig           `yaml:"bonus"`
	Cover     CoverConfig           `yaml:"cover"`
	Rules     RulesConfig           `yaml:"rules"`
	Audio     AudioConfig           `yaml:"audio"`
	Sprites   map[string]SpriteSize `yaml:"sprites"`
}

// WorldConfig defines the fixed coordinate space of the simulation.
type WorldConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	SideMargin  int `yaml:"side_margin"`  // Horizontal margin for the ship and bonus target
	LaserTop    int `yaml:"laser_top"`    // Lasers above this y are out of bounds
	LaserBottom int `yaml:"laser_bottom"` // Lasers below height-laser_bottom are out of bounds
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Step         int     `yaml:"step"`          // Horizontal movement per frame
	BottomOffset int     `yaml:"bottom_offset"` // Distance from the ship's bottom edge to the world bottom
	FireCooldown float64 `yaml:"fire_cooldown"` // Seconds between shots
	LaserSpeed   int     `yaml:"laser_speed"`   // Upward speed (positive, applied as negative)
}

// LaserConfig defines the projectile hitbox shared by both sides.
type LaserConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FormationConfig defines the enemy grid.
type FormationConfig struct {
	Rows         int          `yaml:"rows"`
	Cols         int          `yaml:"cols"`
	Spacing      int          `yaml:"spacing"`
	OriginX      int          `yaml:"origin_x"`
	OriginY      int          `yaml:"origin_y"`
	TopBound     int          `yaml:"top_bound"`     // Formation bounces down off this y
	BottomMargin int          `yaml:"bottom_margin"` // Formation bounces up at height-bottom_margin
	FireInterval float64      `yaml:"fire_interval"` // Seconds between enemy shots
	LaserSpeed   int          `yaml:"laser_speed"`   // Downward speed
	Points       PointsConfig `yaml:"points"`
}

// PointsConfig defines the score awarded per enemy kind.
type PointsConfig struct {
	Skull   int `yaml:"skull"`
	Bug     int `yaml:"bug"`
	Octopus int `yaml:"octopus"`
}

// BonusConfig defines the side-crossing bonus target.
type BonusConfig struct {
	Y           int `yaml:"y"`
	Speed       int `yaml:"speed"`
	Points      int `yaml:"points"`
	MinInterval int `yaml:"min_interval"` // Seconds, inclusive
	MaxInterval int `yaml:"max_interval"` // Seconds, inclusive
}

// CoverConfig defines the destructible shields.
type CoverConfig struct {
	Count        int      `yaml:"count"`
	CellSize     int      `yaml:"cell_size"`
	BottomOffset int      `yaml:"bottom_offset"` // Clusters are anchored at height-bottom_offset
	Shape        []string `yaml:"shape"`         // Rows of '1' (cell) and '0' (gap)
}

// RulesConfig defines round rules.
type RulesConfig struct {
	Lives int `yaml:"lives"`
	// ContactCooldown is the number of seconds an alien touching the ship
	// waits before it can take another life. Zero removes a life on every
	// frame of contact.
	ContactCooldown float64 `yaml:"contact_cooldown"`
}

// AudioConfig defines the synthesized sound output.
type AudioConfig struct {
	SampleRate    int     `yaml:"sample_rate"`
	BufferMillis  int     `yaml:"buffer_ms"`
	MasterVolume  float64 `yaml:"master_volume"`  // 0..1
	EffectsVolume float64 `yaml:"effects_volume"` // 0..1, scaled by master
	MusicVolume   float64 `yaml:"music_volume"`   // 0..1, scaled by master
	Music         bool    `yaml:"music"`          // Play the background march
}

// SpriteSize is the pixel size of a sprite in world units.
type SpriteSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Sprite names used as keys of InvadersConfig.Sprites.
const (
	SpriteShip    = "ship"
	SpriteSkull   = "skull"
	SpriteBug     = "bug"
	SpriteOctopus = "octopus"
	SpriteBonus   = "bonus"
)

// SpriteNames lists every sprite the engine needs a size for.
var SpriteNames = []string{SpriteShip, SpriteSkull, SpriteBug, SpriteOctopus, SpriteBonus}

// Sprite returns the size of the named sprite.
func (c *InvadersConfig) Sprite(name string) SpriteSize {
	return c.Sprites[name]
}

// CoverWidth returns the width of one cover cluster in world units.
func (c *InvadersConfig) CoverWidth() int {
	width := 0
	for _, row := range c.Cover.Shape {
		width = max(width, len(row))
	}
	return width * c.Cover.CellSize
}
