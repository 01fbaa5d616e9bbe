package deathmatch

import (
	"github.com/bytearena/ecs"

	"github.com/botarena/botarena/common/utils/vector"
)

// NewEntityPickup drops an ammo box granting amount rounds.
func (deathmatch *DeathmatchGame) NewEntityPickup(position vector.Vector2, amount int) *ecs.Entity {
	entity := deathmatch.manager.NewEntity()

	pickup := &Pickup{
		id:       entity.GetID(),
		position: position,
		amount:   amount,
	}

	deathmatch.pickupIndex.Insert(pickup)

	return entity.
		AddComponent(deathmatch.pickupComponent, pickup).
		AddComponent(deathmatch.renderComponent, &Render{
			type_: "pickup",
		})
}
