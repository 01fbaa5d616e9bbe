package deathmatch

import (
	"github.com/bytearena/ecs"

	"github.com/botarena/botarena/common/types"
	"github.com/botarena/botarena/common/utils/vector"
)

// NewEntityHitscanProjectile records a shot resolved instantly along a ray.
// It lives one step so the frame shows it; its damage is applied at the
// start of the next step.
func (deathmatch *DeathmatchGame) NewEntityHitscanProjectile(owner ecs.EntityID, damage float64, from, to vector.Vector2, hit *rayHit) *ecs.Entity {
	projectile := deathmatch.manager.NewEntity()

	impactor := &Impactor{
		owner:  owner,
		damage: damage,
		from:   from,
		to:     to,
	}

	if hit != nil {
		impactor.to = hit.point
		if hit.descriptor.Type == types.PhysicalBodyDescriptorType.Combatant {
			impactor.target = hit.descriptor.ID
			impactor.hasTarget = true
		}
	}

	return projectile.
		AddComponent(deathmatch.impactorComponent, impactor).
		AddComponent(deathmatch.ttlComponent, NewTtl(1)).
		AddComponent(deathmatch.renderComponent, &Render{
			type_: "projectile",
		})
}
