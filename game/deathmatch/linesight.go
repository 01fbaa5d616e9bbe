package deathmatch

import (
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	"github.com/botarena/botarena/common/types"
	"github.com/botarena/botarena/common/utils/number"
	"github.com/botarena/botarena/common/utils/vector"
	"github.com/botarena/botarena/game/bot"
)

type rayHit struct {
	descriptor types.PhysicalBodyDescriptor
	point      vector.Vector2
	fraction   float64
}

// castRay returns the closest solid body crossed by the segment from-to.
// Sensors, corpses and the ignored entity let the ray through.
func (deathmatch *DeathmatchGame) castRay(from, to vector.Vector2, ignore ecs.EntityID) (rayHit, bool) {
	if number.IsZero(to.Sub(from).MagSq()) {
		return rayHit{}, false
	}

	closest := rayHit{fraction: 2}

	deathmatch.PhysicalWorld.RayCast(
		func(fixture *box2d.B2Fixture, point box2d.B2Vec2, normal box2d.B2Vec2, fraction float64) float64 {
			if fixture.IsSensor() {
				return -1.0 // ignore the fixture
			}

			descriptor, ok := fixture.GetBody().GetUserData().(types.PhysicalBodyDescriptor)
			if !ok {
				return -1.0
			}

			if descriptor.Type == types.PhysicalBodyDescriptorType.Corpse || descriptor.ID == ignore {
				return -1.0
			}

			// callbacks are not ordered along the ray
			if fraction < closest.fraction {
				closest = rayHit{
					descriptor: descriptor,
					point:      fromPhysics(point),
					fraction:   fraction,
				}
			}

			return fraction // clip the ray
		},
		toPhysics(from),
		toPhysics(to),
	)

	if closest.fraction > 1 {
		return rayHit{}, false
	}

	return closest, true
}

// TraceVisibility implements bot.Visibility.
func (deathmatch *DeathmatchGame) TraceVisibility(from, to vector.Vector2, ignore ecs.EntityID) bot.TraceResult {
	hit, ok := deathmatch.castRay(from, to, ignore)
	if !ok {
		return bot.TraceResult{}
	}

	return bot.TraceResult{
		Hit:       true,
		HitEntity: hit.descriptor.ID,
		IsBlocked: hit.descriptor.Type == types.PhysicalBodyDescriptorType.Obstacle,
	}
}
