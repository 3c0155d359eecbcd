package herd

import (
	"github.com/herdarena/herdarena/common/types"
)

// systemInputs folds the tick's buffered input events into the doggo.
// Directional events rewrite the held flags in arrival order, so the last
// event per flag wins within the tick. Bork triggers fire at the doggo's
// position before it moves this tick, aimed along its current velocity.
func systemInputs(game *HerdGame, inputs []types.InputEvent) {

	for _, entityresult := range game.playerView.Get() {

		playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		controls := playerAspect.GetControls()

		for _, input := range inputs {
			switch input.Control {
			case types.ControlForward:
				controls.Forward = input.Down
			case types.ControlBack:
				controls.Back = input.Down
			case types.ControlTurnLeft:
				controls.TurnLeft = input.Down
			case types.ControlTurnRight:
				controls.TurnRight = input.Down
			case types.ControlBork:
				if input.Down {
					game.NewEntityBork(
						physicalAspect.GetPosition(),
						physicalAspect.GetVelocity().Normalize(),
					)
				}
			}
		}

		playerAspect.SetControls(controls)
	}
}
