package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// defaultCoverShape is the classic arched shield with a notch at the bottom.
var defaultCoverShape = []string{
	"00000111111111111100000",
	"00001111111111111110000",
	"00011111111111111111000",
	"00111111111111111111100",
	"01111111111111111111110",
	"11111111111111111111111",
	"11111111111111111111111",
	"11111111111111111111111",
	"11111111111111111111111",
	"11111111111111111111111",
	"11111100000000000111111",
	"11111000000000000011111",
	"11110000000000000001111",
}

// DefaultInvadersConfig returns the built-in configuration.
// It matches defaults/invaders.yaml and is used if the embedded file
// cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	shape := make([]string, len(defaultCoverShape))
	copy(shape, defaultCoverShape)

	return InvadersConfig{
		World: WorldConfig{
			Width:       800,
			Height:      800,
			SideMargin:  25,
			LaserTop:    25,
			LaserBottom: 100,
		},
		Ship: ShipConfig{
			Step:         7,
			BottomOffset: 100,
			FireCooldown: 0.35,
			LaserSpeed:   6,
		},
		Lasers: LaserConfig{
			Width:  4,
			Height: 15,
		},
		Formation: FormationConfig{
			Rows:         5,
			Cols:         11,
			Spacing:      55,
			OriginX:      75,
			OriginY:      110,
			TopBound:     110,
			BottomMargin: 210,
			FireInterval: 0.35,
			LaserSpeed:   6,
			Points: PointsConfig{
				Skull:   100,
				Bug:     200,
				Octopus: 300,
			},
		},
		Bonus: BonusConfig{
			Y:           90,
			Speed:       3,
			Points:      500,
			MinInterval: 10,
			MaxInterval: 20,
		},
		Cover: CoverConfig{
			Count:        4,
			CellSize:     3,
			BottomOffset: 200,
			Shape:        shape,
		},
		Rules: RulesConfig{
			Lives:           3,
			ContactCooldown: 0,
		},
		Audio: AudioConfig{
			SampleRate:    44100,
			BufferMillis:  100,
			MasterVolume:  0.8,
			EffectsVolume: 0.6,
			MusicVolume:   0.35,
			Music:         true,
		},
		Sprites: map[string]SpriteSize{
			SpriteShip:    {W: 60, H: 36},
			SpriteSkull:   {W: 40, H: 32},
			SpriteBug:     {W: 44, H: 32},
			SpriteOctopus: {W: 48, H: 32},
			SpriteBonus:   {W: 64, H: 28},
		},
	}
}
