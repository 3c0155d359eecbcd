package herd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/herdarena/herdarena/common/utils/vector"
)

const floatDelta = 0.000001

// a doggo parked there influences nobody
var farAwayDoggo = vector.MakeVector2(100000, 100000)

func makeFlockingSheep(x float64, y float64) Sheep {
	return Sheep{
		Position: vector.MakeVector2(x, y),
		Velocity: vector.MakeNullVector2(),
		Mass:     1.0,
		Food:     1.0,
		State:    StateFlocking,
	}
}

func TestPersonalSpaceRepulsion(t *testing.T) {
	config := DefaultConfig()

	left := makeFlockingSheep(0, 0)
	right := makeFlockingSheep(10, 0)

	nextLeft := AdvanceSheep(config, 1.0, farAwayDoggo, []Sheep{right}, left)
	nextRight := AdvanceSheep(config, 1.0, farAwayDoggo, []Sheep{left}, right)

	// 10 units apart is a personal space violation; both move apart
	assert.True(t, nextLeft.Velocity.GetX() < 0)
	assert.True(t, nextRight.Velocity.GetX() > 0)

	assert.InDelta(t, config.RepelForce, nextLeft.Velocity.Mag(), floatDelta)
	assert.InDelta(t, -config.RepelForce, nextLeft.Position.GetX(), floatDelta)
	assert.InDelta(t, config.RepelForce, nextRight.Velocity.Mag(), floatDelta)
}

func TestOpposedRepulsionsCancel(t *testing.T) {
	config := DefaultConfig()

	middle := makeFlockingSheep(0, 0)
	others := []Sheep{
		makeFlockingSheep(10, 0),
		makeFlockingSheep(-10, 0),
	}

	next := AdvanceSheep(config, 1.0, farAwayDoggo, others, middle)

	assert.True(t, next.Velocity.IsNull())
	assert.True(t, next.Position.Equals(middle.Position))
}

func TestIsolatedSheepKeepsItsVelocity(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(0, 0)
	sheep.Velocity = vector.MakeVector2(1, 0)

	// the only other sheep is far beyond the awareness radius
	others := []Sheep{makeFlockingSheep(1000, 1000)}

	next := AdvanceSheep(config, 1.0, farAwayDoggo, others, sheep)

	assert.True(t, next.Velocity.Equals(vector.MakeVector2(1, 0)))
	assert.True(t, next.Position.Equals(vector.MakeVector2(1, 0)))
}

func TestStalledIsolatedSheepStaysPut(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(50, 50)

	next := AdvanceSheep(config, 1.0, farAwayDoggo, nil, sheep)

	// the speed floor only applies to moving sheep; a stalled sheep with
	// nobody around has no reason to start moving
	assert.True(t, next.Velocity.IsNull())
	assert.True(t, next.Position.Equals(sheep.Position))
}

func TestHerdVelocityBlend(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(0, 0)
	sheep.Velocity = vector.MakeVector2(2, 0)

	// two comfortable neighbors, outside personal space: the sheep is
	// content, no steering force; only the velocity blend applies
	above := makeFlockingSheep(0, 100)
	above.Velocity = vector.MakeVector2(0, 2)
	below := makeFlockingSheep(0, -100)
	below.Velocity = vector.MakeVector2(0, 2)

	next := AdvanceSheep(config, 1.0, farAwayDoggo, []Sheep{above, below}, sheep)

	// velocity = momentum * previous + (1 - momentum) * herd average
	assert.InDelta(t, 0.6*2.0, next.Velocity.GetX(), floatDelta)
	assert.InDelta(t, 0.4*2.0, next.Velocity.GetY(), floatDelta)
}

func TestLonelySheepIsAttracted(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(0, 0)

	// one neighbor within awareness but outside the comfort zone: the
	// sheep is not content and gets pulled towards it
	distant := makeFlockingSheep(300, 0)

	next := AdvanceSheep(config, 1.0, farAwayDoggo, []Sheep{distant}, sheep)

	assert.True(t, next.Velocity.GetX() > 0)
	assert.InDelta(t, 0.0, next.Velocity.GetY(), floatDelta)

	// the attraction force alone is under the speed floor; the floor kicks in
	assert.InDelta(t, config.MinVelocity, next.Velocity.Mag(), floatDelta)
}

func TestContentSheepIgnoresDistantNeighbors(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(0, 0)

	others := []Sheep{
		// two comfortable neighbors -> content
		makeFlockingSheep(0, 100),
		makeFlockingSheep(0, -100),
		// an aware neighbor beyond the comfort zone; a content sheep
		// feels no pull towards it
		makeFlockingSheep(300, 0),
	}

	next := AdvanceSheep(config, 1.0, farAwayDoggo, others, sheep)

	assert.True(t, next.Velocity.IsNull())
}

func TestDoggoRepulsion(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(0, 0)

	next := AdvanceSheep(config, 1.0, vector.MakeVector2(0, 100), nil, sheep)

	// the push away from the doggo saturates the speed ceiling
	assert.InDelta(t, 0.0, next.Velocity.GetX(), floatDelta)
	assert.InDelta(t, -config.MaxVelocity, next.Velocity.GetY(), floatDelta)
}

func TestDoggoBeyondAwarenessIsIgnored(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(0, 0)

	next := AdvanceSheep(config, 1.0, vector.MakeVector2(0, 500), nil, sheep)

	assert.True(t, next.Velocity.IsNull())
	assert.True(t, next.Position.Equals(sheep.Position))
}

func TestNeighborAtSamePositionIsHarmless(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(5, 5)
	twin := makeFlockingSheep(5, 5)

	next := AdvanceSheep(config, 1.0, farAwayDoggo, []Sheep{twin}, sheep)

	// the null displacement normalizes to the null vector: no force, no NaN
	assert.True(t, next.Velocity.IsNull())
	assert.False(t, next.Position.GetX() != next.Position.GetX())
}

func TestFlockingBurnsFood(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(0, 0)
	sheep.Food = 0.5

	next := AdvanceSheep(config, 1.0, farAwayDoggo, nil, sheep)
	assert.InDelta(t, 0.5-config.FoodLossRate, next.Food, floatDelta)

	// food never goes negative
	sheep.Food = 0.0001
	next = AdvanceSheep(config, 1.0, farAwayDoggo, nil, sheep)
	assert.Equal(t, 0.0, next.Food)
}

func TestGrazingRecoversFood(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(3, 4)
	sheep.State = StateGrazing
	sheep.Food = 0.5
	sheep.Velocity = vector.MakeVector2(2, 2)

	next := AdvanceSheep(config, 1.0, farAwayDoggo, nil, sheep)

	assert.Equal(t, StateGrazing, next.State)
	assert.InDelta(t, 0.5+config.FoodGainRate, next.Food, floatDelta)

	// a grazing sheep stands still, wherever it was going before
	assert.True(t, next.Velocity.IsNull())
	assert.True(t, next.Position.Equals(sheep.Position))
}

func TestGrazingToFlockingTransition(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(0, 0)
	sheep.State = StateGrazing
	sheep.Food = 1.0 - 1.5*config.FoodGainRate

	// one advance: still short of full
	sheep = AdvanceSheep(config, 1.0, farAwayDoggo, nil, sheep)
	assert.Equal(t, StateGrazing, sheep.State)

	// second advance crosses 1; the transition shows on the next advance,
	// never skipping the crossing frame
	sheep = AdvanceSheep(config, 1.0, farAwayDoggo, nil, sheep)
	assert.Equal(t, StateGrazing, sheep.State)
	assert.True(t, sheep.Food > 1)
	assert.True(t, sheep.Food <= 1+config.FoodGainRate)

	crossed := sheep.Food
	sheep = AdvanceSheep(config, 1.0, farAwayDoggo, nil, sheep)
	assert.Equal(t, StateFlocking, sheep.State)

	// the food reserve stops growing once full
	assert.Equal(t, crossed, sheep.Food)
}

func TestSleepingSheepIsInert(t *testing.T) {
	config := DefaultConfig()

	sheep := makeFlockingSheep(5, 5)
	sheep.State = StateSleeping
	sheep.Food = 0.25
	sheep.Velocity = vector.MakeVector2(1, 1)

	next := AdvanceSheep(config, 1.0, vector.MakeVector2(6, 6), []Sheep{makeFlockingSheep(5, 6)}, sheep)

	assert.Equal(t, sheep, next)
}

func TestVelocityStaysWithinBounds(t *testing.T) {
	config := DefaultConfig()

	type testCase struct {
		Name   string
		Sheep  Sheep
		Others []Sheep
		Doggo  vector.Vector2
	}

	examples := []testCase{
		{
			Name:   "Should cap the flight from a close doggo",
			Sheep:  makeFlockingSheep(0, 0),
			Others: nil,
			Doggo:  vector.MakeVector2(5, 0),
		},
		{
			Name:  "Should cap accumulated repulsions",
			Sheep: makeFlockingSheep(0, 0),
			Others: []Sheep{
				makeFlockingSheep(5, 1),
				makeFlockingSheep(5, -1),
				makeFlockingSheep(6, 0),
				makeFlockingSheep(7, 2),
			},
			Doggo: vector.MakeVector2(30, 0),
		},
		{
			Name:   "Should floor the speed of a nudged sheep",
			Sheep:  makeFlockingSheep(0, 0),
			Others: []Sheep{makeFlockingSheep(350, 100)},
			Doggo:  farAwayDoggo,
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			next := AdvanceSheep(config, 1.0, example.Doggo, example.Others, example.Sheep)

			speed := next.Velocity.Mag()
			assert.True(t, speed <= config.MaxVelocity+floatDelta)
			assert.True(t, speed >= config.MinVelocity-floatDelta)
		})
	}
}

func TestBehaviorStateString(t *testing.T) {
	assert.Equal(t, "flocking", StateFlocking.String())
	assert.Equal(t, "grazing", StateGrazing.String())
	assert.Equal(t, "sleeping", StateSleeping.String())
}

func TestDefaultConfigDerivedForces(t *testing.T) {
	config := DefaultConfig()

	assert.InDelta(t, config.AttractForce*5, config.RepelForce, floatDelta)
	assert.InDelta(t, config.RepelForce*50, config.PlayerRepelForce, floatDelta)
	assert.True(t, config.PersonalSpaceRadius < config.ComfortZoneRadius)
	assert.True(t, config.ComfortZoneRadius < config.AwarenessRadius)
	assert.True(t, config.MinVelocity < config.MaxVelocity)
}
