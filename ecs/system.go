package ecs

// System defines an interface for processing entities every tick
type System interface {
	// Update is called each frame to process entities
	Update(world *World, dt float64) error
}

// StartupSystem runs exactly once, before the first Update
type StartupSystem interface {
	Startup(world *World) error
}

// StartupFunc adapts a plain function to StartupSystem
type StartupFunc func(world *World) error

// Startup calls f(world)
func (f StartupFunc) Startup(world *World) error {
	return f(world)
}
