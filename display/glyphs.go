package display

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rotisserie/eris"
	"golang.org/x/image/font/gofont/gomono"
)

// NewGlyphFace loads the embedded Go Mono font at the given size
func NewGlyphFace(size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, eris.Wrap(err, "failed to load mono font")
	}
	return &text.GoTextFace{
		Source: src,
		Size:   size,
	}, nil
}
