// Package display draws a terminal onto an ebiten screen.
package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nebula-vault/systems"
	"nebula-vault/terminal"
)

// Painter draws terminal cells as filled backgrounds with a glyph on top
type Painter struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewPainter creates a painter using Go Mono at the given size
func NewPainter(glyphSize float64) (*Painter, error) {
	face, err := NewGlyphFace(glyphSize)
	if err != nil {
		return nil, err
	}
	return &Painter{
		source: face.Source,
		faces:  map[float64]*text.GoTextFace{glyphSize: face},
	}, nil
}

// faceFor returns a face of the given size sharing the loaded font source
func (p *Painter) faceFor(size float64) *text.GoTextFace {
	if face, ok := p.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: p.source, Size: size}
	p.faces[size] = face
	return face
}

// Draw paints every framed cell of the terminal at the projected position
func (p *Painter) Draw(screen *ebiten.Image, term *terminal.Terminal, proj systems.Projection) {
	cols, rows := term.FramedSize()

	// Fit the glyph to the cell so scaling the camera scales the text
	face := p.faceFor(proj.CellHeight)

	for fy := 0; fy < rows; fy++ {
		for fx := 0; fx < cols; fx++ {
			tile := term.FramedTile(fx, fy)
			x, y, w, h := proj.CellRect(fx, fy)

			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), tile.BG, false)

			if tile.Glyph == ' ' {
				continue
			}

			op := &text.DrawOptions{}
			op.GeoM.Translate(x+w/2, y)
			op.PrimaryAlign = text.AlignCenter
			op.ColorScale.ScaleWithColor(tile.FG)
			text.Draw(screen, string(tile.Glyph), face, op)
		}
	}
}
