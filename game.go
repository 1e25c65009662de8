package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"nebula-vault/config"
	"nebula-vault/display"
	"nebula-vault/simulation"
)

// Game implements ebiten.Game interface.
type Game struct {
	sim      *simulation.Simulation
	painter  *display.Painter
	settings config.Settings
}

// NewGame creates a new game instance
func NewGame(settings config.Settings) (*Game, error) {
	sim, err := simulation.New()
	if err != nil {
		return nil, err
	}

	painter, err := display.NewPainter(config.GlyphSize)
	if err != nil {
		return nil, err
	}

	return &Game{
		sim:      sim,
		painter:  painter,
		settings: settings,
	}, nil
}

// Update updates the game state.
func (g *Game) Update() error {
	return g.sim.Tick(1.0 / float64(ebiten.TPS()))
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.sim.Session.Camera.ClearColor)

	g.painter.Draw(screen, g.sim.Session.Terminal, g.sim.CameraSystem.Projection())

	if g.settings.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
