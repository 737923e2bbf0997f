package model

import "github.com/go-gl/mathgl/mgl64"

// NoLight is returned by lookups that find nothing and is the id carried by
// preview lights.
const NoLight LightID = -1

type LightID int

type Light struct {
	ID          LightID
	Pos         mgl64.Vec2
	Depth       float64
	Radius      float64
	ChainLength float64 // rest length to the previous committed light, frozen at creation
	Life        int
	Highlighted bool
}

func (l Light) X() float64 { return l.Pos[0] }
func (l Light) Y() float64 { return l.Pos[1] }
