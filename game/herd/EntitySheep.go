package herd

import (
	"github.com/bytearena/ecs"

	"github.com/herdarena/herdarena/common/utils/vector"
)

// NewEntitySheep spawns one herd agent. Sheep are born flocking with a
// full food reserve; mass must be positive.
func (game *HerdGame) NewEntitySheep(position vector.Vector2, velocity vector.Vector2, mass float64) *ecs.Entity {

	return game.manager.NewEntity().
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			position: position,
			velocity: velocity,
			mass:     mass,
		}).
		AddComponent(game.behaviorComponent, &Behavior{
			state: StateFlocking,
			food:  1.0,
		}).
		AddComponent(game.renderComponent, &Render{
			type_: "sheep",
		})
}
