package components

import (
	"image/color"

	"nebula-vault/terminal"
)

// PositionComponent stores entity position in map coordinates
type PositionComponent struct {
	X, Y int
}

// RenderableComponent stores rendering information
type RenderableComponent struct {
	Glyph rune       // The character drawn for the entity
	FG    color.RGBA // Foreground color
	BG    color.RGBA // Background color
}

// NewRenderableComponent creates a renderable component on a black background
func NewRenderableComponent(glyph rune, fg color.RGBA) RenderableComponent {
	return RenderableComponent{
		Glyph: glyph,
		FG:    fg,
		BG:    terminal.Black,
	}
}

// Tile converts the renderable into a terminal tile
func (r RenderableComponent) Tile() terminal.Tile {
	return terminal.Tile{
		Glyph: r.Glyph,
		FG:    r.FG,
		BG:    r.BG,
	}
}

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct{}

// CameraComponent describes how the terminal is projected into the window
type CameraComponent struct {
	ViewportWidth  int // Viewport width in tiles
	ViewportHeight int // Viewport height in tiles
	PixelsPerTileX int
	PixelsPerTileY int
	ClearColor     color.RGBA
}

// NewPixelCamera creates a camera with a viewport of the given size in tiles
// and one pixel per tile
func NewPixelCamera(width, height int) CameraComponent {
	return CameraComponent{
		ViewportWidth:  width,
		ViewportHeight: height,
		PixelsPerTileX: 1,
		PixelsPerTileY: 1,
		ClearColor:     terminal.Black,
	}
}

// WithPixelsPerTile sets the pixel scaling
func (c CameraComponent) WithPixelsPerTile(x, y int) CameraComponent {
	c.PixelsPerTileX = x
	c.PixelsPerTileY = y
	return c
}

// WithClearColor sets the color the window is cleared to
func (c CameraComponent) WithClearColor(clr color.RGBA) CameraComponent {
	c.ClearColor = clr
	return c
}
