package herd

// systemLocomotion advances the doggo from its held controls. It runs
// before the flocking system, so the herd reacts to the doggo's position
// of this very tick.
func systemLocomotion(game *HerdGame, dt float64) {

	for _, entityresult := range game.playerView.Get() {

		playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		doggo := AdvanceDoggo(game.config, dt, Doggo{
			Position:    physicalAspect.GetPosition(),
			Velocity:    physicalAspect.GetVelocity(),
			Orientation: physicalAspect.GetOrientation(),
			Controls:    playerAspect.GetControls(),
		})

		physicalAspect.
			SetPosition(doggo.Position).
			SetVelocity(doggo.Velocity).
			SetOrientation(doggo.Orientation)
	}
}
