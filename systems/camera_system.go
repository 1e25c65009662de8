package systems

import (
	"nebula-vault/components"
	"nebula-vault/ecs"
)

// Projection places the framed terminal on the logical screen
type Projection struct {
	CellWidth  float64 // Width of one cell in pixels
	CellHeight float64 // Height of one cell in pixels
	OriginX    float64 // Left edge of the framed terminal
	OriginY    float64 // Top edge of the framed terminal
}

// CellRect returns the pixel rectangle of a framed cell
func (p Projection) CellRect(fx, fy int) (x, y, w, h float64) {
	return p.OriginX + float64(fx)*p.CellWidth, p.OriginY + float64(fy)*p.CellHeight, p.CellWidth, p.CellHeight
}

// CameraSystem keeps the projection of the terminal up to date
type CameraSystem struct {
	session      *Session
	screenWidth  int
	screenHeight int
	projection   Projection
}

// NewCameraSystem creates a new camera system for a logical screen size
func NewCameraSystem(session *Session, screenWidth, screenHeight int) *CameraSystem {
	s := &CameraSystem{
		session:      session,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
	s.refresh()
	return s
}

// Update recomputes the projection so camera changes made by other systems
// show up on the next draw
func (s *CameraSystem) Update(world *ecs.World, dt float64) error {
	s.refresh()
	return nil
}

// Projection returns the most recently computed projection
func (s *CameraSystem) Projection() Projection {
	return s.projection
}

func (s *CameraSystem) refresh() {
	cols, rows := s.session.Terminal.FramedSize()
	s.projection = Project(*s.session.Camera, s.screenWidth, s.screenHeight, cols, rows)
}

// Project fits the camera viewport to the screen and centers a cols x rows
// framed terminal in it.
func Project(camera components.CameraComponent, screenWidth, screenHeight, cols, rows int) Projection {
	viewW := max(camera.ViewportWidth, 1)
	viewH := max(camera.ViewportHeight, 1)
	ppx := max(camera.PixelsPerTileX, 1)
	ppy := max(camera.PixelsPerTileY, 1)

	// Square cells sized so the whole viewport fits
	cell := max(min(screenWidth/viewW, screenHeight/viewH), 1)

	cellW := float64(cell * ppx)
	cellH := float64(cell * ppy)

	return Projection{
		CellWidth:  cellW,
		CellHeight: cellH,
		OriginX:    (float64(screenWidth) - cellW*float64(cols)) / 2,
		OriginY:    (float64(screenHeight) - cellH*float64(rows)) / 2,
	}
}
