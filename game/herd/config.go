package herd

import (
	"github.com/herdarena/herdarena/common/utils/number"
)

// Config carries every tuning constant of the simulation; it is given to
// NewHerdGame once and nothing in the behavior model reads global state.
type Config struct {
	AwarenessRadius     float64 // distance under which a sheep perceives another entity
	ComfortZoneRadius   float64 // neighbors closer than this count towards contentment
	PersonalSpaceRadius float64 // neighbors closer than this repel instead of attract

	MaxVelocity float64 // speed ceiling, sheep and doggo alike, in unit/frame
	MinVelocity float64 // speed floor for a moving sheep, in unit/frame
	TurnRate    float64 // doggo angular speed, in radian/frame

	AttractForce     float64 // pull towards aware neighbors when not content
	RepelForce       float64 // push away from personal space violators
	PlayerRepelForce float64 // push away from the doggo

	MomentumWeight float64 // share of the previous velocity kept when blending with the herd

	FoodLossRate float64 // food spent per frame while flocking
	FoodGainRate float64 // food recovered per frame while grazing

	BorkLifetime int // frames a bork marker stays alive
}

// DefaultConfig returns the canonical tuning. RepelForce derives from
// AttractForce and PlayerRepelForce from RepelForce, so that overriding
// the attraction alone keeps the model balanced.
func DefaultConfig() Config {

	attract := 0.1
	repel := attract * 5
	playerRepel := repel * 50

	return Config{
		AwarenessRadius:     400,
		ComfortZoneRadius:   200,
		PersonalSpaceRadius: 40,

		MaxVelocity: 5.0,
		MinVelocity: 0.5,
		TurnRate:    number.DegreeToRadian(4.5),

		AttractForce:     attract,
		RepelForce:       repel,
		PlayerRepelForce: playerRepel,

		MomentumWeight: 0.6,

		FoodLossRate: 0.0005,
		FoodGainRate: 0.002,

		BorkLifetime: 120,
	}
}
