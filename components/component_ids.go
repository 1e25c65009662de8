package components

import (
	"github.com/yohamta/donburi"

	"nebula-vault/terminal"
)

// Component types registered with the ECS world
var (
	Position   = donburi.NewComponentType[PositionComponent]()
	Renderable = donburi.NewComponentType[RenderableComponent]()
	Player     = donburi.NewComponentType[PlayerComponent]()

	// Singletons hold pointers so that the session can keep a stable handle
	// to them after startup.
	Camera      = donburi.NewComponentType[*CameraComponent]()
	Map         = donburi.NewComponentType[*MapComponent]()
	TileMapping = donburi.NewComponentType[*TileMappingComponent]()
	Terminal    = donburi.NewComponentType[*terminal.Terminal]()
)
