package spawners

import (
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"

	"nebula-vault/components"
	"nebula-vault/config"
	"nebula-vault/ecs"
	"nebula-vault/logger"
	"nebula-vault/terminal"
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world *ecs.World
	log   *logrus.Entry
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World) *EntitySpawner {
	return &EntitySpawner{
		world: world,
		log:   logger.For("spawner"),
	}
}

// Bootstrap spawns everything a session starts with: the terminal, the
// camera, the tile mapping, the map and the player. It is meant to run as a
// startup system.
func (s *EntitySpawner) Bootstrap(world *ecs.World) error {
	if _, err := s.CreateTerminal(config.TerminalWidth, config.TerminalHeight); err != nil {
		return err
	}

	s.CreateCamera(config.CameraViewportWidth, config.CameraViewportHeight)
	s.CreateTileMapping()

	if _, err := s.CreateMap(config.MapWidth, config.MapHeight); err != nil {
		return err
	}

	s.CreatePlayer(config.PlayerStartX, config.PlayerStartY)

	s.log.WithField("entities", world.Len()).Info("World bootstrapped.")
	return nil
}

// CreateTerminal creates the display surface entity with a single-line border
func (s *EntitySpawner) CreateTerminal(width, height int) (*donburi.Entry, error) {
	term, err := terminal.New(width, height)
	if err != nil {
		return nil, eris.Wrap(err, "creating terminal")
	}
	term.WithBorder(terminal.SingleLine())
	term.ClearTile = components.GroundTile
	term.Clear()

	entry := s.world.Spawn(components.Terminal)
	components.Terminal.SetValue(entry, term)

	s.log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("Terminal created.")
	return entry, nil
}

// CreateCamera creates the camera entity
func (s *EntitySpawner) CreateCamera(viewportWidth, viewportHeight int) *donburi.Entry {
	cameraComp := components.NewPixelCamera(viewportWidth, viewportHeight).
		WithPixelsPerTile(config.PixelsPerTile, config.PixelsPerTile).
		WithClearColor(config.CameraClearColor)

	entry := s.world.Spawn(components.Camera)
	components.Camera.SetValue(entry, &cameraComp)

	s.log.WithFields(logrus.Fields{"viewport_w": viewportWidth, "viewport_h": viewportHeight}).Debug("Camera created.")
	return entry
}

// CreateTileMapping creates the entity mapping tile types to terminal tiles
func (s *EntitySpawner) CreateTileMapping() *donburi.Entry {
	entry := s.world.Spawn(components.TileMapping)
	components.TileMapping.SetValue(entry, components.NewTileMappingComponent())
	return entry
}

// CreateMap creates the map entity
func (s *EntitySpawner) CreateMap(width, height int) (*donburi.Entry, error) {
	mapComp, err := components.NewMapComponent(width, height)
	if err != nil {
		return nil, eris.Wrap(err, "creating map")
	}

	entry := s.world.Spawn(components.Map)
	components.Map.SetValue(entry, mapComp)

	s.log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("Map created.")
	return entry, nil
}

// CreatePlayer creates a player entity at the given position
func (s *EntitySpawner) CreatePlayer(x, y int) *donburi.Entry {
	entry := s.world.Spawn(components.Player, components.Position, components.Renderable)

	components.Position.SetValue(entry, components.PositionComponent{X: x, Y: y})
	components.Renderable.SetValue(entry, components.NewRenderableComponent('@', terminal.White))

	s.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("Player created.")
	return entry
}
