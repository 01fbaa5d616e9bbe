package deathmatch

import (
	"github.com/bytearena/ecs"

	"github.com/botarena/botarena/common/utils/vector"
)

// Impactor is the damage a hitscan projectile deals to what it hit.
type Impactor struct {
	owner     ecs.EntityID
	target    ecs.EntityID
	hasTarget bool
	damage    float64
	from      vector.Vector2
	to        vector.Vector2
	applied   bool
}

func (deathmatch DeathmatchGame) CastImpactor(data interface{}) *Impactor {
	return data.(*Impactor)
}

func (o Impactor) GetDamage() float64 {
	return o.damage
}

func (o Impactor) GetOwner() ecs.EntityID {
	return o.owner
}

func (o Impactor) GetTarget() (ecs.EntityID, bool) {
	return o.target, o.hasTarget
}

func (o Impactor) GetImpactPoint() vector.Vector2 {
	return o.to
}

func (o Impactor) IsApplied() bool {
	return o.applied
}

func (o *Impactor) MarkApplied() {
	o.applied = true
}
