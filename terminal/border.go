package terminal

import "image/color"

// Border describes the frame drawn around the terminal's cells.
type Border struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
	FG          color.RGBA
	BG          color.RGBA
}

// SingleLine returns a border made of single-line box drawing glyphs
func SingleLine() Border {
	return Border{
		TopLeft:     '┌',
		Top:         '─',
		TopRight:    '┐',
		Left:        '│',
		Right:       '│',
		BottomLeft:  '└',
		Bottom:      '─',
		BottomRight: '┘',
		FG:          White,
		BG:          Black,
	}
}

// glyphAt returns the border glyph for a framed coordinate on the edge of a
// framed surface of size fw x fh.
func (b Border) glyphAt(fx, fy, fw, fh int) rune {
	top, bottom := fy == 0, fy == fh-1
	left, right := fx == 0, fx == fw-1
	switch {
	case top && left:
		return b.TopLeft
	case top && right:
		return b.TopRight
	case bottom && left:
		return b.BottomLeft
	case bottom && right:
		return b.BottomRight
	case top:
		return b.Top
	case bottom:
		return b.Bottom
	case left:
		return b.Left
	default:
		return b.Right
	}
}
