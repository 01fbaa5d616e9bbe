package deathmatch

import (
	"github.com/bytearena/ecs"
	"github.com/pkg/errors"

	"github.com/botarena/botarena/common/utils/vector"
)

// <bot.Spawner>

// SpawnProjectile fires the named projectile from origin toward aimPoint.
// Projectiles are hitscan: the ray is resolved at once, up to the range of
// the template.
func (deathmatch *DeathmatchGame) SpawnProjectile(template string, owner ecs.EntityID, origin, aimPoint vector.Vector2) (ecs.EntityID, error) {
	tpl, ok := deathmatch.templates[template]
	if !ok {
		return 0, errors.Errorf("unknown projectile template %q", template)
	}

	if aimPoint.Equals(origin) {
		return 0, errors.New("cannot aim at the muzzle itself")
	}

	end := origin.Toward(aimPoint, tpl.Range)

	var hitp *rayHit
	if hit, ok := deathmatch.castRay(origin, end, owner); ok {
		hitp = &hit
	}

	projectile := deathmatch.NewEntityHitscanProjectile(owner, tpl.Damage, origin, end, hitp)
	return projectile.GetID(), nil
}

func (deathmatch *DeathmatchGame) PlayFireEffect(owner ecs.EntityID, beamEndPoint vector.Vector2) {
	if render := deathmatch.getRender(owner); render != nil {
		render.StartFiring(beamEndPoint)
	}
}

func (deathmatch *DeathmatchGame) StopFireEffect(owner ecs.EntityID) {
	if render := deathmatch.getRender(owner); render != nil {
		render.StopFiring()
	}
}

// </bot.Spawner>

func (deathmatch *DeathmatchGame) getRender(id ecs.EntityID) *Render {
	entityResult := deathmatch.getEntity(id, deathmatch.renderComponent)
	if entityResult == nil {
		return nil
	}

	return deathmatch.CastRender(entityResult.Components[deathmatch.renderComponent])
}
