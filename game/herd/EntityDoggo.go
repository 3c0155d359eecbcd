package herd

import (
	"github.com/bytearena/ecs"

	"github.com/herdarena/herdarena/common/utils/vector"
)

// NewEntityDoggo spawns the player agent, facing north, standing still.
// There is one doggo per game.
func (game *HerdGame) NewEntityDoggo(position vector.Vector2) *ecs.Entity {

	return game.manager.NewEntity().
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			position: position,
			velocity: vector.MakeNullVector2(),
			mass:     1.0,
		}).
		AddComponent(game.playerComponent, &Player{}).
		AddComponent(game.renderComponent, &Render{
			type_: "doggo",
		})
}
