package ecs

import (
	"github.com/rotisserie/eris"
	"github.com/yohamta/donburi"
)

// World owns the entity store and the two scheduling phases: startup systems
// run once, update systems run every tick in registration order.
type World struct {
	donburi.World
	startup []StartupSystem
	systems []System
	started bool
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		World:   donburi.NewWorld(),
		startup: make([]StartupSystem, 0),
		systems: make([]System, 0),
	}
}

// AddStartupSystem registers a system for the startup phase
func (w *World) AddStartupSystem(system StartupSystem) {
	w.startup = append(w.startup, system)
}

// AddSystem registers a system for the update phase
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// GetSystems returns all update systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// Started reports whether the startup phase has run
func (w *World) Started() bool {
	return w.started
}

// Startup runs every startup system once. The first error aborts the phase.
func (w *World) Startup() error {
	if w.started {
		return eris.Wrap(ErrAlreadyStarted, "")
	}
	w.started = true
	for i, system := range w.startup {
		if err := system.Startup(w); err != nil {
			return eris.Wrapf(err, "startup system %d", i)
		}
	}
	return nil
}

// Update runs all update systems. The first error aborts the tick.
func (w *World) Update(dt float64) error {
	if !w.started {
		return eris.Wrap(ErrNotStarted, "")
	}
	for _, system := range w.systems {
		if err := system.Update(w, dt); err != nil {
			return err
		}
	}
	return nil
}

// Spawn creates an entity with the given component types and returns its entry
func (w *World) Spawn(components ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(components...))
}
