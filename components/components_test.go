package components

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"nebula-vault/terminal"
)

func TestRenderableTile(t *testing.T) {
	r := NewRenderableComponent('@', terminal.White)

	tile := r.Tile()
	assert.Equal(t, terminal.Tile{Glyph: '@', FG: terminal.White, BG: terminal.Black}, tile)
}

func TestPixelCamera(t *testing.T) {
	dark := color.RGBA{26, 26, 26, 255}
	cam := NewPixelCamera(50, 50).WithPixelsPerTile(1, 1).WithClearColor(dark)

	assert.Equal(t, 50, cam.ViewportWidth)
	assert.Equal(t, 50, cam.ViewportHeight)
	assert.Equal(t, 1, cam.PixelsPerTileX)
	assert.Equal(t, 1, cam.PixelsPerTileY)
	assert.Equal(t, dark, cam.ClearColor)
}
