package herd

func (game HerdGame) CastPlayer(data interface{}) *Player {
	return data.(*Player)
}

// Player marks the doggo entity and holds its control flags. The input
// system writes the flags, the locomotion system reads them; the two run
// in sequence within the same tick, never concurrently.
type Player struct {
	controls Controls
}

func (p Player) GetControls() Controls {
	return p.controls
}

func (p *Player) SetControls(controls Controls) *Player {
	p.controls = controls
	return p
}
