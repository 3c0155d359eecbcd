package herd

import "github.com/bytearena/ecs"

// systemTtl ages every bork marker by one frame and disposes the expired
// ones, releasing their ledger slot. Lifetimes count frames, not wall
// time: a marker born on this very tick is skipped, so it stays visible
// during its full lifetime whatever the frame pacing.
func systemTtl(game *HerdGame) {
	entitiesToRemove := make([]*ecs.Entity, 0)

	for _, entityresult := range game.borksView.Get() {
		ttlAspect := game.CastTtl(entityresult.Components[game.ttlComponent])

		if ttlAspect.GetTickBirth() == game.ticknum {
			continue
		}

		if ttlAspect.Decrement(1) <= 0 {
			physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

			delete(game.borkIndex, MakeBorkKey(physicalAspect.GetPosition()))
			entitiesToRemove = append(entitiesToRemove, entityresult.Entity)
		}
	}

	game.manager.DisposeEntities(entitiesToRemove...)
}
