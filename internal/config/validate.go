package config

import (
	"errors"
	"fmt"
)

// ValidationError describes one invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the configuration describes a playable world.
// All problems are reported, joined into one error.
func (c *InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, field, format string, args ...any) {
		if !ok {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
		}
	}

	check(c.World.Width > 0, "world.width", "must be positive, got %d", c.World.Width)
	check(c.World.Height > 0, "world.height", "must be positive, got %d", c.World.Height)
	check(c.World.SideMargin >= 0, "world.side_margin", "must not be negative, got %d", c.World.SideMargin)

	check(c.Ship.Step > 0, "ship.step", "must be positive, got %d", c.Ship.Step)
	check(c.Ship.FireCooldown >= 0, "ship.fire_cooldown", "must not be negative, got %v", c.Ship.FireCooldown)
	check(c.Ship.LaserSpeed > 0, "ship.laser_speed", "must be positive, got %d", c.Ship.LaserSpeed)

	check(c.Lasers.Width > 0 && c.Lasers.Height > 0, "lasers", "size must be positive, got %dx%d", c.Lasers.Width, c.Lasers.Height)

	check(c.Formation.Rows > 0, "formation.rows", "must be positive, got %d", c.Formation.Rows)
	check(c.Formation.Cols > 0, "formation.cols", "must be positive, got %d", c.Formation.Cols)
	check(c.Formation.Spacing > 0, "formation.spacing", "must be positive, got %d", c.Formation.Spacing)
	check(c.Formation.FireInterval >= 0, "formation.fire_interval", "must not be negative, got %v", c.Formation.FireInterval)
	check(c.Formation.LaserSpeed > 0, "formation.laser_speed", "must be positive, got %d", c.Formation.LaserSpeed)

	check(c.Bonus.Speed > 0, "bonus.speed", "must be positive, got %d", c.Bonus.Speed)
	check(c.Bonus.MinInterval >= 0, "bonus.min_interval", "must not be negative, got %d", c.Bonus.MinInterval)
	check(c.Bonus.MinInterval <= c.Bonus.MaxInterval, "bonus.max_interval",
		"must be at least min_interval (%d), got %d", c.Bonus.MinInterval, c.Bonus.MaxInterval)

	check(c.Cover.Count >= 0, "cover.count", "must not be negative, got %d", c.Cover.Count)
	check(c.Cover.CellSize > 0, "cover.cell_size", "must be positive, got %d", c.Cover.CellSize)
	check(len(c.Cover.Shape) > 0, "cover.shape", "must have at least one row")
	for i, row := range c.Cover.Shape {
		for _, r := range row {
			if r != '0' && r != '1' {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("cover.shape[%d]", i),
					Message: fmt.Sprintf("unexpected character %q, want '0' or '1'", r),
				})
				break
			}
		}
	}
	check(c.Cover.Count*c.CoverWidth() <= c.World.Width, "cover",
		"%d clusters of width %d do not fit a world of width %d", c.Cover.Count, c.CoverWidth(), c.World.Width)

	check(c.Rules.Lives > 0, "rules.lives", "must be positive, got %d", c.Rules.Lives)
	check(c.Rules.ContactCooldown >= 0, "rules.contact_cooldown", "must not be negative, got %v", c.Rules.ContactCooldown)

	check(c.Audio.SampleRate > 0, "audio.sample_rate", "must be positive, got %d", c.Audio.SampleRate)
	check(c.Audio.BufferMillis > 0, "audio.buffer_ms", "must be positive, got %d", c.Audio.BufferMillis)
	volumes := []struct {
		field string
		v     float64
	}{
		{"audio.master_volume", c.Audio.MasterVolume},
		{"audio.effects_volume", c.Audio.EffectsVolume},
		{"audio.music_volume", c.Audio.MusicVolume},
	}
	for _, vol := range volumes {
		check(vol.v >= 0 && vol.v <= 1, vol.field, "must be within [0, 1], got %v", vol.v)
	}

	for _, name := range SpriteNames {
		size, ok := c.Sprites[name]
		if !ok {
			errs = append(errs, ValidationError{Field: "sprites." + name, Message: "missing"})
			continue
		}
		check(size.W > 0 && size.H > 0, "sprites."+name, "size must be positive, got %dx%d", size.W, size.H)
	}

	return errors.Join(errs...)
}
