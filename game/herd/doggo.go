package herd

import (
	"github.com/herdarena/herdarena/common/utils/vector"
)

// Controls holds the held directional inputs of the doggo; the input
// system writes them, the locomotion system only reads.
type Controls struct {
	Forward   bool
	Back      bool
	TurnLeft  bool
	TurnRight bool
}

// Doggo is the full state of the player agent.
// Passed by value, like Sheep.
type Doggo struct {
	Position    vector.Vector2
	Velocity    vector.Vector2
	Orientation float64
	Controls    Controls
}

// AdvanceDoggo moves the player agent one tick from its held controls.
// Opposed controls cancel out: both turn flags leave the heading alone,
// both bearing flags halt the doggo on the spot. The heading turns first,
// then the bearing applies along the new heading.
func AdvanceDoggo(config Config, dt float64, current Doggo) Doggo {

	turn := 0.0
	if current.Controls.TurnLeft && !current.Controls.TurnRight {
		turn = 1.0
	} else if current.Controls.TurnRight && !current.Controls.TurnLeft {
		turn = -1.0
	}

	bearing := 0.0
	if current.Controls.Forward && !current.Controls.Back {
		bearing = 1.0
	} else if current.Controls.Back && !current.Controls.Forward {
		bearing = -1.0
	}

	current.Orientation += config.TurnRate * dt * turn

	current.Velocity = vector.
		MakeVector2FromAngle(current.Orientation).
		MultScalar(config.MaxVelocity * bearing)

	current.Position = current.Position.Add(current.Velocity.MultScalar(dt))

	return current
}
