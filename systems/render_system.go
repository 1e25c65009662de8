package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"nebula-vault/components"
	"nebula-vault/ecs"
	"nebula-vault/logger"
)

// RenderSystem repaints the terminal from the map and the entities every tick
type RenderSystem struct {
	session *Session
	query   *donburi.Query
	log     *logrus.Entry
}

// NewRenderSystem creates a new rendering system bound to a session
func NewRenderSystem(session *Session) *RenderSystem {
	return &RenderSystem{
		session: session,
		query:   donburi.NewQuery(filter.Contains(components.Position, components.Renderable)),
		log:     logger.For("render_system"),
	}
}

// Update synchronizes the terminal with the world
func (s *RenderSystem) Update(world *ecs.World, dt float64) error {
	s.Sync(world)
	return nil
}

// Sync clears the terminal, paints the terrain and then every entity that has
// both a position and a renderable. Entities always win over terrain.
func (s *RenderSystem) Sync(world *ecs.World) {
	term := s.session.Terminal
	term.Clear()

	s.drawMap()

	s.query.Each(world.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		rend := components.Renderable.Get(entry)

		if err := term.PutTile(pos.X, pos.Y, rend.Tile()); err != nil {
			s.log.WithFields(logrus.Fields{
				"entity": entry.Entity(),
				"x":      pos.X,
				"y":      pos.Y,
			}).WithError(err).Warn("Entity outside terminal, skipped.")
		}
	})
}

// drawMap paints every map cell that fits in the terminal. Cells beyond either
// extent are clipped.
func (s *RenderSystem) drawMap() {
	term := s.session.Terminal
	mapData := s.session.Map

	width := min(mapData.Width(), term.Width())
	height := min(mapData.Height(), term.Height())

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tileType, err := mapData.TileAt(components.PositionComponent{X: x, Y: y})
			if err == nil {
				err = term.PutTile(x, y, s.session.TileMapping.GetTileDefinition(tileType))
			}
			if err != nil {
				s.log.WithFields(logrus.Fields{"x": x, "y": y}).WithError(err).Warn("Map cell not painted.")
			}
		}
	}
}
