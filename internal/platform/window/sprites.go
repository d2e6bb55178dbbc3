package window

import (
	"image/color"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// spriteMasks are the pixel art of each sprite. '#' is lit. Masks are
// stretched to the sprite's configured size.
var spriteMasks = map[core.SpriteID][]string{
	core.SpriteShip: {
		".....#.....",
		"....###....",
		"....###....",
		".#########.",
		"###########",
		"###########",
		"###########",
	},
	core.SpriteSkull: {
		"...##...",
		"..####..",
		".######.",
		"##.##.##",
		"########",
		"..#..#..",
		".#.##.#.",
		"#.#..#.#",
	},
	core.SpriteBug: {
		"..#.....#..",
		"...#...#...",
		"..#######..",
		".##.###.##.",
		"###########",
		"#.#######.#",
		"#.#.....#.#",
		"...##.##...",
	},
	core.SpriteOctopus: {
		"....####....",
		".##########.",
		"############",
		"###..##..###",
		"############",
		"...##..##...",
		"..##.##.##..",
		"##........##",
	},
	core.SpriteBonus: {
		".....######.....",
		"...##########...",
		"..############..",
		".##.##.##.##.##.",
		"################",
		"..###..##..###..",
		"...#........#...",
	},
}

var spriteColors = map[core.SpriteID]core.Color{
	core.SpriteShip:    core.ColorGreen,
	core.SpriteSkull:   core.ColorWhite,
	core.SpriteBug:     core.ColorCyan,
	core.SpriteOctopus: core.ColorMagenta,
	core.SpriteBonus:   core.ColorRed,
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 230, G: 230, B: 230, A: 255},
	core.ColorYellow:  {R: 243, G: 216, B: 63, A: 255},
	core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorGreen:   {R: 72, G: 232, B: 96, A: 255},
	core.ColorCyan:    {R: 80, G: 220, B: 240, A: 255},
	core.ColorMagenta: {R: 230, G: 90, B: 200, A: 255},
	core.ColorRed:     {R: 235, G: 64, B: 52, A: 255},
	core.ColorGray:    {R: 140, G: 140, B: 140, A: 255},
}

// rgba converts a palette color, falling back to the default.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// pixel is a filled rectangle in screen space.
type pixel struct {
	X, Y, W, H float32
}

// spritePixels lays out the lit pixels of a sprite whose top-left corner
// is at (x, y), stretched to size.
func spritePixels(id core.SpriteID, x, y int, size config.SpriteSize) []pixel {
	mask := spriteMasks[id]
	if len(mask) == 0 || size.W <= 0 || size.H <= 0 {
		return nil
	}
	pw := float32(size.W) / float32(len(mask[0]))
	ph := float32(size.H) / float32(len(mask))

	var out []pixel
	for row, line := range mask {
		for col, ch := range line {
			if ch != '#' {
				continue
			}
			out = append(out, pixel{
				X: float32(x) + float32(col)*pw,
				Y: float32(y) + float32(row)*ph,
				W: pw,
				H: ph,
			})
		}
	}
	return out
}
