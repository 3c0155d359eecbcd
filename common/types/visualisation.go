package types

import (
	"github.com/herdarena/herdarena/common/utils/vector"
)

// VizMessage is one rendered frame of the simulation, marshaled to JSON
// and pushed to every connected watcher after each tick.
type VizMessage struct {
	Tick    int
	Elapsed float64
	Doggo   VizDoggoMessage
	Sheep   []VizSheepMessage
	Borks   []VizBorkMessage
}

type VizSheepMessage struct {
	Id       string
	Position vector.Vector2
	Velocity vector.Vector2
	Mass     float64
	Food     float64
	State    string
}

type VizDoggoMessage struct {
	Position    vector.Vector2
	Velocity    vector.Vector2
	Orientation float64
}

type VizBorkMessage struct {
	Position  vector.Vector2
	Direction vector.Vector2
	Ttl       int
}
