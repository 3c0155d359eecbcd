package common

import (
	"github.com/herdarena/herdarena/common/types"
)

type GameEventSubscription int32

// GameInterface is what the simulation server requires from a game: a
// state machine advanced tick by tick from buffered inputs, able to
// serialize one viz frame after each step.
type GameInterface interface {
	ImplementsGameInterface()
	Subscribe(event string, cbk func(data interface{})) GameEventSubscription
	Unsubscribe(subscription GameEventSubscription)
	Step(ticknum int, dt float64, inputs []types.InputEvent)
	ProduceVizMessageJson() []byte
}
