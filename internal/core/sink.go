package core

// SpriteID names a textured sprite the front-end knows how to draw.
type SpriteID int

const (
	SpriteShip SpriteID = iota
	SpriteSkull
	SpriteBug
	SpriteOctopus
	SpriteBonus
)

// String returns the config key of the sprite.
func (s SpriteID) String() string {
	switch s {
	case SpriteShip:
		return "ship"
	case SpriteSkull:
		return "skull"
	case SpriteBug:
		return "bug"
	case SpriteOctopus:
		return "octopus"
	case SpriteBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Canvas receives the draw calls of one frame, in world coordinates.
type Canvas interface {
	// DrawSprite draws a sprite with its top-left corner at (x, y).
	DrawSprite(id SpriteID, x, y int)
	// FillRect draws a solid rectangle.
	FillRect(r Rect, c Color)
	// DrawText draws a line of text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c Color)
}

// Sound names a one-shot sound effect.
type Sound int

const (
	SoundLaser Sound = iota
	SoundExplosion
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// AudioSink plays fire-and-forget effects and a looping background track.
type AudioSink interface {
	Play(s Sound)
	// PlayMusic starts the background track.
	PlayMusic()
	// UpdateMusic is pumped once per frame while the track plays.
	UpdateMusic()
}

// NopAudio is a silent AudioSink.
type NopAudio struct{}

func (NopAudio) Play(Sound)   {}
func (NopAudio) PlayMusic()   {}
func (NopAudio) UpdateMusic() {}
