package core

// Color is a palette entry understood by every front-end.
// The terminal maps it to ANSI colors, the window to RGBA.
type Color uint8

// Palette used by the game and its HUD.
const (
	ColorDefault Color = iota
	ColorYellow        // lasers, cover, HUD
	ColorWhite
	ColorGreen
	ColorCyan
	ColorMagenta
	ColorRed
	ColorGray
)
