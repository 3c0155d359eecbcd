package herd

import (
	"math"

	"github.com/herdarena/herdarena/common/utils/vector"
)

// Bork is the snapshot of one live bork marker: where the doggo borked,
// which way it was moving, and how many frames the marker has left.
type Bork struct {
	Position  vector.Vector2
	Direction vector.Vector2
	Ttl       int
}

// BorkKey identifies the ledger slot of a bork by its creation position,
// quantized to fixed-point thousandths of a world unit. Map lookups on
// raw floats would hinge on exact float equality; the fixed-point key
// makes two triggers from the same spot collide reliably.
type BorkKey struct {
	X int64
	Y int64
}

func MakeBorkKey(position vector.Vector2) BorkKey {
	x, y := position.Get()

	return BorkKey{
		X: int64(math.Round(x * 1000)),
		Y: int64(math.Round(y * 1000)),
	}
}
