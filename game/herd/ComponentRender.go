package herd

func (game HerdGame) CastRender(data interface{}) *Render {
	return data.(*Render)
}

// Render tags an entity with the sprite kind the viz client draws for it.
type Render struct {
	type_ string
}

func (r Render) GetType() string {
	return r.type_
}
