package herd

// systemFlocking advances every sheep against the same pre-tick herd
// snapshot: all values are assembled first, computed, then committed in a
// second pass. Update order cannot bias what any sheep perceives, so the
// outcome is identical whatever the entity iteration order.
func systemFlocking(game *HerdGame, dt float64) {

	entityresults := game.sheepView.Get()

	herd := make([]Sheep, len(entityresults))
	for i, entityresult := range entityresults {

		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		behaviorAspect := game.CastBehavior(entityresult.Components[game.behaviorComponent])

		herd[i] = Sheep{
			Position: physicalAspect.GetPosition(),
			Velocity: physicalAspect.GetVelocity(),
			Mass:     physicalAspect.GetMass(),
			Food:     behaviorAspect.GetFood(),
			State:    behaviorAspect.GetState(),
		}
	}

	doggoPosition, hasDoggo := game.doggoPosition()

	next := make([]Sheep, len(herd))
	for i := range herd {

		others := make([]Sheep, 0, len(herd)-1)
		others = append(others, herd[:i]...)
		others = append(others, herd[i+1:]...)

		position := doggoPosition
		if !hasDoggo {
			// a sheep's own position reads as "no doggo within awareness":
			// the null displacement normalizes to the null vector and
			// exerts no force
			position = herd[i].Position
		}

		next[i] = AdvanceSheep(game.config, dt, position, others, herd[i])
	}

	for i, entityresult := range entityresults {

		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		behaviorAspect := game.CastBehavior(entityresult.Components[game.behaviorComponent])

		physicalAspect.
			SetPosition(next[i].Position).
			SetVelocity(next[i].Velocity)

		behaviorAspect.
			SetState(next[i].State).
			SetFood(next[i].Food)
	}
}
