package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapComponent_AllFloorNothingSeen(t *testing.T) {
	for _, size := range []struct{ w, h int }{{1, 1}, {10, 10}, {7, 3}, {80, 50}} {
		m, err := NewMapComponent(size.w, size.h)
		require.NoError(t, err)

		assert.Equal(t, size.w, m.Width())
		assert.Equal(t, size.h, m.Height())
		assert.Equal(t, size.w*size.h, m.Len())
		assert.Len(t, m.tiles, size.w*size.h)
		assert.Len(t, m.visibleTiles, size.w*size.h)
		assert.Len(t, m.revealedTiles, size.w*size.h)

		for y := 0; y < size.h; y++ {
			for x := 0; x < size.w; x++ {
				pos := PositionComponent{X: x, Y: y}
				tile, err := m.TileAt(pos)
				require.NoError(t, err)
				assert.Equal(t, TileFloor, tile)

				visible, err := m.IsVisible(pos)
				require.NoError(t, err)
				assert.False(t, visible)

				revealed, err := m.IsRevealed(pos)
				require.NoError(t, err)
				assert.False(t, revealed)
			}
		}
	}
}

func TestNewMapComponent_RejectsNonPositive(t *testing.T) {
	for _, size := range []struct{ w, h int }{{0, 10}, {10, 0}, {-3, 4}, {0, 0}} {
		m, err := NewMapComponent(size.w, size.h)
		assert.Nil(t, m)
		assert.True(t, errors.Is(err, ErrInvalidDimensions), "size %dx%d", size.w, size.h)
	}
}

func TestIndexOf_RowMajorAndInjective(t *testing.T) {
	m, err := NewMapComponent(7, 4)
	require.NoError(t, err)

	seen := make(map[int]PositionComponent)
	for y := 0; y < 4; y++ {
		for x := 0; x < 7; x++ {
			pos := PositionComponent{X: x, Y: y}
			idx, err := m.IndexOf(pos)
			require.NoError(t, err)
			assert.Equal(t, y*7+x, idx)

			prev, dup := seen[idx]
			assert.False(t, dup, "%v and %v share index %d", prev, pos, idx)
			seen[idx] = pos
		}
	}
	assert.Len(t, seen, m.Len())
}

func TestIndexOf_Bounds(t *testing.T) {
	m, err := NewMapComponent(10, 10)
	require.NoError(t, err)

	idx, err := m.IndexOf(PositionComponent{X: 9, Y: 9})
	require.NoError(t, err)
	assert.Equal(t, 99, idx)

	for _, pos := range []PositionComponent{{10, 0}, {0, 10}, {-1, 0}, {0, -1}} {
		_, err := m.IndexOf(pos)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "%v", pos)

		_, err = m.TileAt(pos)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "%v", pos)
	}
}

func TestTileMapping_DistinguishesWallAndFloor(t *testing.T) {
	mapping := NewTileMappingComponent()

	floor := mapping.GetTileDefinition(TileFloor)
	wall := mapping.GetTileDefinition(TileWall)

	assert.Equal(t, GroundTile, floor)
	assert.Equal(t, '#', wall.Glyph)
	assert.NotEqual(t, floor, wall)

	unknown := mapping.GetTileDefinition(TileType(42))
	assert.Equal(t, '?', unknown.Glyph)
}

func TestTileTypeString(t *testing.T) {
	assert.Equal(t, "wall", TileWall.String())
	assert.Equal(t, "floor", TileFloor.String())
	assert.Equal(t, "unknown", TileType(9).String())
}
