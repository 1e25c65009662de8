// Package simulation builds the headless part of the game: the world after
// startup and the systems that run every tick.
package simulation

import (
	"github.com/rotisserie/eris"

	"nebula-vault/config"
	"nebula-vault/ecs"
	"nebula-vault/spawners"
	"nebula-vault/systems"
)

// ErrInvalidTicks is returned when a frame is requested after fewer than one tick.
var ErrInvalidTicks = eris.New("ticks must be at least 1")

// Simulation owns the world and its frame systems
type Simulation struct {
	World        *ecs.World
	Session      *systems.Session
	RenderSystem *systems.RenderSystem
	CameraSystem *systems.CameraSystem
}

// New runs the startup phase, resolves the session and registers the update systems
func New() (*Simulation, error) {
	world := ecs.NewWorld()
	entitySpawner := spawners.NewEntitySpawner(world)
	world.AddStartupSystem(ecs.StartupFunc(entitySpawner.Bootstrap))

	if err := world.Startup(); err != nil {
		return nil, eris.Wrap(err, "startup failed")
	}

	session, err := systems.ResolveSession(world)
	if err != nil {
		return nil, err
	}

	screenWidth, screenHeight := config.GetScreenDimensions()
	cameraSystem := systems.NewCameraSystem(session, screenWidth, screenHeight)
	renderSystem := systems.NewRenderSystem(session)

	world.AddSystem(cameraSystem)
	world.AddSystem(renderSystem)

	return &Simulation{
		World:        world,
		Session:      session,
		RenderSystem: renderSystem,
		CameraSystem: cameraSystem,
	}, nil
}

// Tick runs one update of every frame system
func (s *Simulation) Tick(dt float64) error {
	return s.World.Update(dt)
}

// Frame runs the given number of ticks and returns the framed terminal as text
func (s *Simulation) Frame(ticks int) (string, error) {
	if ticks < 1 {
		return "", eris.Wrapf(ErrInvalidTicks, "got %d", ticks)
	}
	for i := 0; i < ticks; i++ {
		if err := s.Tick(0); err != nil {
			return "", err
		}
	}
	return s.Session.Terminal.String(), nil
}
