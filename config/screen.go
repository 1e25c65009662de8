package config

import "image/color"

// Screen layout configuration
const (
	// Window title
	WindowTitle = "Nebula Vault"

	// Logical window dimensions in pixels
	WindowWidth  = 800
	WindowHeight = 600

	// Terminal dimensions in cells (border excluded)
	TerminalWidth  = 10
	TerminalHeight = 10

	// Map dimensions in tiles
	MapWidth  = 10
	MapHeight = 10

	// Camera viewport in tiles and pixel scaling
	CameraViewportWidth  = 50
	CameraViewportHeight = 50
	PixelsPerTile        = 1

	// Player spawn point
	PlayerStartX = 5
	PlayerStartY = 5

	// Glyph size used by the painter, in points
	GlyphSize = 12
)

// CameraClearColor is the dark gray the window is cleared to before painting
var CameraClearColor = color.RGBA{26, 26, 26, 255}

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}
