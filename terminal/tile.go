package terminal

import "image/color"

// Tile is one cell of the terminal: a glyph drawn in FG over BG.
type Tile struct {
	Glyph rune
	FG    color.RGBA
	BG    color.RGBA
}

// Common colors
var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

// DefaultClearTile is what a fresh terminal clears to
var DefaultClearTile = Tile{Glyph: ' ', FG: White, BG: Black}
