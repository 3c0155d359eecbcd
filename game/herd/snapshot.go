package herd

// WorldSnapshot is the world copied out as plain values; mutating one
// cannot touch the live game.
type WorldSnapshot struct {
	Ticknum int
	Elapsed float64
	Doggo   Doggo
	Sheep   []Sheep
	Borks   []Bork
}

func (game *HerdGame) Snapshot() WorldSnapshot {

	snapshot := WorldSnapshot{
		Ticknum: game.ticknum,
		Elapsed: game.elapsed,
		Sheep:   make([]Sheep, 0),
		Borks:   make([]Bork, 0),
	}

	for _, entityresult := range game.sheepView.Get() {

		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		behaviorAspect := game.CastBehavior(entityresult.Components[game.behaviorComponent])

		snapshot.Sheep = append(snapshot.Sheep, Sheep{
			Position: physicalAspect.GetPosition(),
			Velocity: physicalAspect.GetVelocity(),
			Mass:     physicalAspect.GetMass(),
			Food:     behaviorAspect.GetFood(),
			State:    behaviorAspect.GetState(),
		})
	}

	for _, entityresult := range game.playerView.Get() {

		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])

		snapshot.Doggo = Doggo{
			Position:    physicalAspect.GetPosition(),
			Velocity:    physicalAspect.GetVelocity(),
			Orientation: physicalAspect.GetOrientation(),
			Controls:    playerAspect.GetControls(),
		}
	}

	for _, entityresult := range game.borksView.Get() {

		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		ttlAspect := game.CastTtl(entityresult.Components[game.ttlComponent])

		snapshot.Borks = append(snapshot.Borks, Bork{
			Position:  physicalAspect.GetPosition(),
			Direction: physicalAspect.GetVelocity(),
			Ttl:       ttlAspect.GetValue(),
		})
	}

	return snapshot
}
