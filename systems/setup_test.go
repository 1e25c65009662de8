package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nebula-vault/components"
	"nebula-vault/ecs"
	"nebula-vault/spawners"
	"nebula-vault/terminal"
)

// newTestSession bootstraps a world the way the game does and resolves its session
func newTestSession(t *testing.T) (*ecs.World, *Session) {
	t.Helper()
	world := ecs.NewWorld()
	world.AddStartupSystem(ecs.StartupFunc(spawners.NewEntitySpawner(world).Bootstrap))
	require.NoError(t, world.Startup())

	session, err := ResolveSession(world)
	require.NoError(t, err)
	return world, session
}

// newClippingSession builds a session by hand so the map and terminal sizes
// can differ. The terminal keeps DefaultClearTile so cleared cells stand out
// from ground.
func newClippingSession(t *testing.T, termSize, mapSize int) *Session {
	t.Helper()
	term, err := terminal.New(termSize, termSize)
	require.NoError(t, err)
	mapData, err := components.NewMapComponent(mapSize, mapSize)
	require.NoError(t, err)
	camera := components.NewPixelCamera(50, 50)

	return &Session{
		Terminal:    term.WithBorder(terminal.SingleLine()),
		Map:         mapData,
		TileMapping: components.NewTileMappingComponent(),
		Camera:      &camera,
	}
}
