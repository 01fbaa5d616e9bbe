package deathmatch

import (
	"github.com/bytearena/ecs"
	"github.com/dhconnelly/rtreego"

	"github.com/botarena/botarena/common/utils/vector"
)

// Pickup is an ammo box lying in the arena.
type Pickup struct {
	id       ecs.EntityID
	position vector.Vector2
	amount   int
}

func (deathmatch DeathmatchGame) CastPickup(data interface{}) *Pickup {
	return data.(*Pickup)
}

func (p Pickup) GetID() ecs.EntityID {
	return p.id
}

func (p Pickup) GetPosition() vector.Vector2 {
	return p.position
}

func (p Pickup) GetAmount() int {
	return p.amount
}

// Bounds implements rtreego.Spatial.
func (p *Pickup) Bounds() rtreego.Rect {
	return rtreego.Point{p.position.GetX(), p.position.GetY()}.ToRect(0.01)
}
