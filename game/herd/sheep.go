package herd

import (
	"github.com/herdarena/herdarena/common/utils/vector"
)

type BehaviorState int

const (
	StateFlocking BehaviorState = iota
	StateGrazing
	StateSleeping
)

func (state BehaviorState) String() string {
	switch state {
	case StateGrazing:
		return "grazing"
	case StateSleeping:
		return "sleeping"
	default:
		return "flocking"
	}
}

// Sheep is the full state of one herd agent.
// Passed by value ! Mass must be positive, it divides the steering force.
type Sheep struct {
	Position vector.Vector2
	Velocity vector.Vector2
	Mass     float64
	Food     float64
	State    BehaviorState
}

// awareNeighbor is one perceived sheep, with its displacement from the
// perceiver precomputed; senseNeighbors builds these once per advance.
type awareNeighbor struct {
	velocity     vector.Vector2
	displacement vector.Vector2
	distance     float64
}

// AdvanceSheep computes the next state of one herd agent against a
// read-only snapshot of the rest of the herd and the doggo position.
// Same inputs, same output; nothing is mutated.
func AdvanceSheep(config Config, dt float64, doggoPosition vector.Vector2, others []Sheep, current Sheep) Sheep {
	switch current.State {
	case StateGrazing:
		return grazeSheep(config, dt, current)
	case StateSleeping:
		return current
	default:
		return flockSheep(config, dt, doggoPosition, others, current)
	}
}

// A grazing sheep stands still and recovers food; once full it resumes
// flocking on the next advance, so the crossing frame is still observable.
func grazeSheep(config Config, dt float64, sheep Sheep) Sheep {

	if sheep.Food > 1 {
		sheep.State = StateFlocking
		return sheep
	}

	sheep.Velocity = vector.MakeNullVector2()
	sheep.Food += config.FoodGainRate * dt

	return sheep
}

func flockSheep(config Config, dt float64, doggoPosition vector.Vector2, others []Sheep, sheep Sheep) Sheep {

	aware := senseNeighbors(config, sheep, others)

	force := contentmentForce(config, aware)

	// the doggo repels much harder than any sheep
	doggoDisplacement := doggoPosition.Sub(sheep.Position)
	if doggoDisplacement.MagSq() < config.AwarenessRadius*config.AwarenessRadius {
		force = force.Add(
			doggoDisplacement.Normalize().MultScalar(-config.PlayerRepelForce),
		)
	}

	velocity := sheep.Velocity
	if len(aware) > 0 {
		velocity = velocity.Lerp(herdVelocity(aware), 1-config.MomentumWeight)
	}

	velocity = velocity.
		Add(force.DivScalar(sheep.Mass)).
		ClampMag(config.MinVelocity, config.MaxVelocity)

	sheep.Velocity = velocity
	sheep.Position = sheep.Position.Add(velocity.MultScalar(dt))

	sheep.Food -= config.FoodLossRate * dt
	if sheep.Food < 0 {
		sheep.Food = 0
	}

	return sheep
}

func senseNeighbors(config Config, sheep Sheep, others []Sheep) []awareNeighbor {
	aware := make([]awareNeighbor, 0, len(others))

	for _, other := range others {
		displacement := other.Position.Sub(sheep.Position)

		// quadrance comparison, no sqrt for the non-aware majority
		if displacement.MagSq() >= config.AwarenessRadius*config.AwarenessRadius {
			continue
		}

		aware = append(aware, awareNeighbor{
			velocity:     other.Velocity,
			displacement: displacement,
			distance:     displacement.Mag(),
		})
	}

	return aware
}

// contentmentForce implements the contentment rule. A sheep with at least
// two neighbors in its comfort zone is content: only personal space
// violators push it. A sheep that is not content is additionally pulled
// towards every aware neighbor outside its personal space. Contentment is
// what keeps the herd from collapsing onto its own centroid.
func contentmentForce(config Config, aware []awareNeighbor) vector.Vector2 {

	comfortable := 0
	for _, neighbor := range aware {
		if neighbor.distance < config.ComfortZoneRadius {
			comfortable++
		}
	}

	content := comfortable >= 2

	force := vector.MakeNullVector2()

	for _, neighbor := range aware {
		if neighbor.distance < config.PersonalSpaceRadius {
			force = force.Add(
				neighbor.displacement.Normalize().MultScalar(-config.RepelForce),
			)
		} else if !content {
			force = force.Add(
				neighbor.displacement.Normalize().MultScalar(config.AttractForce),
			)
		}
	}

	return force
}

// herdVelocity averages the velocities of the aware neighbors; the caller
// guarantees there is at least one.
func herdVelocity(aware []awareNeighbor) vector.Vector2 {
	sum := vector.MakeNullVector2()

	for _, neighbor := range aware {
		sum = sum.Add(neighbor.velocity)
	}

	return sum.DivScalar(float64(len(aware)))
}
