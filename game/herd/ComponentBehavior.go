package herd

func (game HerdGame) CastBehavior(data interface{}) *Behavior {
	return data.(*Behavior)
}

// Behavior carries the sheep state machine and its food reserve.
type Behavior struct {
	state BehaviorState
	food  float64
}

func (b Behavior) GetState() BehaviorState {
	return b.state
}

func (b *Behavior) SetState(state BehaviorState) *Behavior {
	b.state = state
	return b
}

func (b Behavior) GetFood() float64 {
	return b.food
}

func (b *Behavior) SetFood(food float64) *Behavior {
	b.food = food
	return b
}
