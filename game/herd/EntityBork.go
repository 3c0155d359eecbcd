package herd

import (
	"github.com/bytearena/ecs"

	"github.com/herdarena/herdarena/common/utils/vector"
)

// NewEntityBork places a bork marker, unless a live one already occupies
// that exact spot: the ledger keys markers by quantized position, and
// re-triggering an occupied slot is a no-op returning nil. The slot frees
// up when the marker expires.
func (game *HerdGame) NewEntityBork(position vector.Vector2, direction vector.Vector2) *ecs.Entity {

	key := MakeBorkKey(position)
	if _, alive := game.borkIndex[key]; alive {
		return nil
	}

	bork := game.manager.NewEntity().
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			position: position,
			velocity: direction,
			mass:     1.0,
		}).
		AddComponent(game.ttlComponent, (&Ttl{}).
			SetValue(game.config.BorkLifetime).
			SetTickBirth(game.ticknum)).
		AddComponent(game.renderComponent, &Render{
			type_: "bork",
		})

	game.borkIndex[key] = bork.GetID()

	return bork
}
