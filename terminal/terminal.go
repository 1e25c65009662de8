// Package terminal implements a grid of glyph tiles used as the game's display surface.
package terminal

import (
	"strings"

	"github.com/rotisserie/eris"
)

var (
	// ErrInvalidSize is returned when a terminal is created with a non-positive dimension.
	ErrInvalidSize = eris.New("terminal size must be positive")
	// ErrOutOfBounds is returned when a cell outside the terminal is addressed.
	ErrOutOfBounds = eris.New("terminal cell out of bounds")
)

// Terminal is a width x height grid of tiles with an optional border.
// Cell (0,0) is the top-left cell inside the border.
type Terminal struct {
	width     int
	height    int
	tiles     []Tile
	border    *Border
	ClearTile Tile
}

// New creates a terminal filled with DefaultClearTile
func New(width, height int) (*Terminal, error) {
	if width <= 0 || height <= 0 {
		return nil, eris.Wrapf(ErrInvalidSize, "got %dx%d", width, height)
	}
	t := &Terminal{
		width:     width,
		height:    height,
		tiles:     make([]Tile, width*height),
		ClearTile: DefaultClearTile,
	}
	t.Clear()
	return t, nil
}

// WithBorder sets the border and returns the terminal for chaining
func (t *Terminal) WithBorder(b Border) *Terminal {
	t.border = &b
	return t
}

// Border returns the terminal's border, if it has one
func (t *Terminal) Border() (Border, bool) {
	if t.border == nil {
		return Border{}, false
	}
	return *t.border, true
}

// Width returns the number of columns inside the border
func (t *Terminal) Width() int { return t.width }

// Height returns the number of rows inside the border
func (t *Terminal) Height() int { return t.height }

// InBounds reports whether (x, y) addresses a cell inside the border
func (t *Terminal) InBounds(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// Clear resets every cell to ClearTile
func (t *Terminal) Clear() {
	for i := range t.tiles {
		t.tiles[i] = t.ClearTile
	}
}

// PutTile writes a tile at (x, y)
func (t *Terminal) PutTile(x, y int, tile Tile) error {
	if !t.InBounds(x, y) {
		return eris.Wrapf(ErrOutOfBounds, "(%d,%d) outside %dx%d terminal", x, y, t.width, t.height)
	}
	t.tiles[y*t.width+x] = tile
	return nil
}

// Tile returns the tile at (x, y)
func (t *Terminal) Tile(x, y int) (Tile, error) {
	if !t.InBounds(x, y) {
		return Tile{}, eris.Wrapf(ErrOutOfBounds, "(%d,%d) outside %dx%d terminal", x, y, t.width, t.height)
	}
	return t.tiles[y*t.width+x], nil
}

// Snapshot returns a copy of every cell in row-major order
func (t *Terminal) Snapshot() []Tile {
	out := make([]Tile, len(t.tiles))
	copy(out, t.tiles)
	return out
}

// FramedSize returns the dimensions including the border, if any
func (t *Terminal) FramedSize() (int, int) {
	if t.border == nil {
		return t.width, t.height
	}
	return t.width + 2, t.height + 2
}

// FramedTile returns the tile at a coordinate of the framed surface, where the
// border (if any) occupies the outermost ring. Coordinates outside the framed
// surface yield ClearTile.
func (t *Terminal) FramedTile(fx, fy int) Tile {
	fw, fh := t.FramedSize()
	if fx < 0 || fx >= fw || fy < 0 || fy >= fh {
		return t.ClearTile
	}
	if t.border == nil {
		return t.tiles[fy*t.width+fx]
	}
	if fx == 0 || fy == 0 || fx == fw-1 || fy == fh-1 {
		b := *t.border
		return Tile{Glyph: b.glyphAt(fx, fy, fw, fh), FG: b.FG, BG: b.BG}
	}
	return t.tiles[(fy-1)*t.width+(fx-1)]
}

// String renders the framed surface as lines of glyphs
func (t *Terminal) String() string {
	fw, fh := t.FramedSize()
	var sb strings.Builder
	sb.Grow(fh * (fw + 1) * 3)
	for fy := 0; fy < fh; fy++ {
		for fx := 0; fx < fw; fx++ {
			sb.WriteRune(t.FramedTile(fx, fy).Glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
