package herd

func (game HerdGame) CastTtl(data interface{}) *Ttl {
	return data.(*Ttl)
}

// Ttl counts the remaining lifetime of a transient entity in frames.
// tickBirth spares the entity from aging on the tick it was spawned, so
// that a lifetime of n is observable during n full frames.
type Ttl struct {
	ttl       int
	tickBirth int
}

func (t *Ttl) SetValue(ttl int) *Ttl {
	t.ttl = ttl
	return t
}

func (t Ttl) GetValue() int {
	return t.ttl
}

func (t *Ttl) SetTickBirth(ticknum int) *Ttl {
	t.tickBirth = ticknum
	return t
}

func (t Ttl) GetTickBirth() int {
	return t.tickBirth
}

func (t *Ttl) Decrement(amount int) int {
	t.ttl -= amount
	return t.ttl
}
