package systems

import (
	"github.com/rotisserie/eris"

	"nebula-vault/components"
	"nebula-vault/ecs"
	"nebula-vault/terminal"
)

// Session holds the single display surface, map, tile mapping and camera of a
// running game. It is resolved once after startup so that frame systems never
// look singletons up again.
type Session struct {
	Terminal    *terminal.Terminal
	Map         *components.MapComponent
	TileMapping *components.TileMappingComponent
	Camera      *components.CameraComponent
}

// ResolveSession finds the singletons spawned during startup. Anything other
// than exactly one of each is an ecs.ErrInvariantViolation.
func ResolveSession(world *ecs.World) (*Session, error) {
	termEntry, err := ecs.Single(world, components.Terminal)
	if err != nil {
		return nil, eris.Wrap(err, "resolving terminal")
	}
	mapEntry, err := ecs.Single(world, components.Map)
	if err != nil {
		return nil, eris.Wrap(err, "resolving map")
	}
	mappingEntry, err := ecs.Single(world, components.TileMapping)
	if err != nil {
		return nil, eris.Wrap(err, "resolving tile mapping")
	}
	cameraEntry, err := ecs.Single(world, components.Camera)
	if err != nil {
		return nil, eris.Wrap(err, "resolving camera")
	}

	session := &Session{
		Terminal:    *components.Terminal.Get(termEntry),
		Map:         *components.Map.Get(mapEntry),
		TileMapping: *components.TileMapping.Get(mappingEntry),
		Camera:      *components.Camera.Get(cameraEntry),
	}
	if session.Terminal == nil || session.Map == nil || session.TileMapping == nil || session.Camera == nil {
		return nil, eris.Wrap(ecs.ErrInvariantViolation, "singleton component spawned without a value")
	}
	return session, nil
}
