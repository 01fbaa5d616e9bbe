package deathmatch

import "github.com/bytearena/ecs"

type pendingDestroy struct {
	id        ecs.EntityID
	remaining float64 // seconds
}

// ScheduleDestroy implements bot.Destroyer: the entity is disposed once
// delay seconds of simulation have elapsed.
func (deathmatch *DeathmatchGame) ScheduleDestroy(id ecs.EntityID, delay float64) {
	if !(delay > 0) {
		delay = 0
	}

	deathmatch.destroyQueue = append(deathmatch.destroyQueue, pendingDestroy{
		id:        id,
		remaining: delay,
	})
}

// systemDeath runs first in the step, so a corpse stays in the frame of the
// step it died in.
func systemDeath(deathmatch *DeathmatchGame, dt float64) {

	entitiesToRemove := make([]*ecs.Entity, 0)
	removed := make(map[ecs.EntityID]struct{})
	pending := deathmatch.destroyQueue[:0]

	for _, p := range deathmatch.destroyQueue {
		p.remaining -= dt
		if p.remaining > 0 {
			pending = append(pending, p)
			continue
		}

		_, twice := removed[p.id]
		entityResult := deathmatch.getEntity(p.id)
		if entityResult == nil || twice {
			deathmatch.log.Debug().Str("entity", p.id.String()).Msg("destroy: entity already gone")
			continue
		}

		removed[p.id] = struct{}{}
		entitiesToRemove = append(entitiesToRemove, entityResult.Entity)
	}

	deathmatch.destroyQueue = pending

	if len(entitiesToRemove) > 0 {
		deathmatch.manager.DisposeEntities(entitiesToRemove...)
	}
}
