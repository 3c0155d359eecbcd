package herd

import (
	"github.com/herdarena/herdarena/common/utils/vector"
)

func (game HerdGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

// PhysicalBody carries the motion state of every renderable entity.
// Plain fields; integration is forward Euler in the behavior systems,
// there is no collision to resolve in this simulation.
type PhysicalBody struct {
	position    vector.Vector2
	velocity    vector.Vector2
	orientation float64 // heading in radian; 0 is the arena north
	mass        float64 // expressed in arbitrary units; divides the steering force
}

func (p PhysicalBody) GetPosition() vector.Vector2 {
	return p.position
}

func (p *PhysicalBody) SetPosition(v vector.Vector2) *PhysicalBody {
	p.position = v
	return p
}

func (p PhysicalBody) GetVelocity() vector.Vector2 {
	return p.velocity
}

func (p *PhysicalBody) SetVelocity(v vector.Vector2) *PhysicalBody {
	p.velocity = v
	return p
}

func (p PhysicalBody) GetOrientation() float64 {
	return p.orientation
}

func (p *PhysicalBody) SetOrientation(angle float64) *PhysicalBody {
	p.orientation = angle
	return p
}

func (p PhysicalBody) GetMass() float64 {
	return p.mass
}

func (p *PhysicalBody) SetMass(mass float64) *PhysicalBody {
	p.mass = mass
	return p
}
