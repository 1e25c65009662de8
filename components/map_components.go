package components

import (
	"image/color"

	"github.com/rotisserie/eris"

	"nebula-vault/terminal"
)

var (
	// ErrInvalidDimensions is returned when a map is created with a non-positive size.
	ErrInvalidDimensions = eris.New("map dimensions must be positive")
	// ErrOutOfBounds is returned when a coordinate outside the map is addressed.
	ErrOutOfBounds = eris.New("position out of map bounds")
)

// TileType is the terrain of a map cell
type TileType uint8

// Tile types
const (
	TileWall TileType = iota
	TileFloor
)

func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// MapComponent stores the game map. Tiles and both visibility bitmaps are
// row-major and always hold exactly width*height entries.
type MapComponent struct {
	width         int
	height        int
	tiles         []TileType
	visibleTiles  []bool
	revealedTiles []bool
}

// NewMapComponent creates a new map with every tile set to floor and nothing
// visible or revealed
func NewMapComponent(width, height int) (*MapComponent, error) {
	if width <= 0 || height <= 0 {
		return nil, eris.Wrapf(ErrInvalidDimensions, "got %dx%d", width, height)
	}

	size := width * height
	m := &MapComponent{
		width:         width,
		height:        height,
		tiles:         make([]TileType, size),
		visibleTiles:  make([]bool, size),
		revealedTiles: make([]bool, size),
	}
	for i := range m.tiles {
		m.tiles[i] = TileFloor
	}

	return m, nil
}

// Width returns the map width in tiles
func (m *MapComponent) Width() int { return m.width }

// Height returns the map height in tiles
func (m *MapComponent) Height() int { return m.height }

// Len returns the number of cells
func (m *MapComponent) Len() int { return len(m.tiles) }

// InBounds reports whether pos lies inside the map
func (m *MapComponent) InBounds(pos PositionComponent) bool {
	return pos.X >= 0 && pos.X < m.width && pos.Y >= 0 && pos.Y < m.height
}

// IndexOf converts a position to its index in the flat tile storage
func (m *MapComponent) IndexOf(pos PositionComponent) (int, error) {
	if !m.InBounds(pos) {
		return 0, eris.Wrapf(ErrOutOfBounds, "(%d,%d) outside %dx%d map", pos.X, pos.Y, m.width, m.height)
	}
	return pos.Y*m.width + pos.X, nil
}

// TileAt returns the terrain at pos
func (m *MapComponent) TileAt(pos PositionComponent) (TileType, error) {
	idx, err := m.IndexOf(pos)
	if err != nil {
		return TileWall, err
	}
	return m.tiles[idx], nil
}

// IsVisible reports whether pos is in the current field of view
func (m *MapComponent) IsVisible(pos PositionComponent) (bool, error) {
	idx, err := m.IndexOf(pos)
	if err != nil {
		return false, err
	}
	return m.visibleTiles[idx], nil
}

// IsRevealed reports whether pos has ever been seen
func (m *MapComponent) IsRevealed(pos PositionComponent) (bool, error) {
	idx, err := m.IndexOf(pos)
	if err != nil {
		return false, err
	}
	return m.revealedTiles[idx], nil
}

// GroundTile is painted for floor cells and is what the terminal clears to
var GroundTile = terminal.Tile{
	Glyph: '·',
	FG:    color.RGBA{77, 77, 77, 255},
	BG:    terminal.Black,
}

// TileMappingComponent maps tile types to their visual representation
type TileMappingComponent struct {
	Definitions map[TileType]terminal.Tile
}

// NewTileMappingComponent creates the default tile mapping
func NewTileMappingComponent() *TileMappingComponent {
	mapping := &TileMappingComponent{
		Definitions: make(map[TileType]terminal.Tile),
	}

	mapping.Definitions[TileFloor] = GroundTile
	mapping.Definitions[TileWall] = terminal.Tile{
		Glyph: '#',
		FG:    color.RGBA{128, 128, 128, 255},
		BG:    terminal.Black,
	}

	return mapping
}

// GetTileDefinition returns the visual definition for a given tile type
func (t *TileMappingComponent) GetTileDefinition(tileType TileType) terminal.Tile {
	if def, exists := t.Definitions[tileType]; exists {
		return def
	}

	// Magenta marks a tile type nobody mapped
	return terminal.Tile{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255},
		BG:    terminal.Black,
	}
}
