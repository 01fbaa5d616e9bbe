package deathmatch

import (
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	"github.com/botarena/botarena/common/types"
)

type zoneContact struct {
	combatant ecs.EntityID
	entering  bool
}

type collisionListener struct { /* implements box2d.B2World.B2ContactListenerInterface */
	game    *DeathmatchGame
	buffer  []zoneContact
	overlap map[ecs.EntityID]int
}

func newCollisionListener(game *DeathmatchGame) *collisionListener {
	return &collisionListener{
		game:    game,
		overlap: make(map[ecs.EntityID]int),
	}
}

// zoneContactOf returns the combatant side of a combatant/crouch zone contact.
func zoneContactOf(contact box2d.B2ContactInterface) (ecs.EntityID, bool) {
	descriptorA, ok := contact.GetFixtureA().GetBody().GetUserData().(types.PhysicalBodyDescriptor)
	if !ok {
		return 0, false
	}

	descriptorB, ok := contact.GetFixtureB().GetBody().GetUserData().(types.PhysicalBodyDescriptor)
	if !ok {
		return 0, false
	}

	zone := types.PhysicalBodyDescriptorType.CrouchZone
	combatant := types.PhysicalBodyDescriptorType.Combatant

	switch {
	case descriptorA.Type == zone && descriptorB.Type == combatant:
		return descriptorB.ID, true
	case descriptorB.Type == zone && descriptorA.Type == combatant:
		return descriptorA.ID, true
	}

	return 0, false
}

// Called when two fixtures begin to touch.
func (listener *collisionListener) BeginContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
	if id, ok := zoneContactOf(contact); ok {
		listener.buffer = append(listener.buffer, zoneContact{combatant: id, entering: true})
	}
}

// Called when two fixtures cease to touch.
func (listener *collisionListener) EndContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
	if id, ok := zoneContactOf(contact); ok {
		listener.buffer = append(listener.buffer, zoneContact{combatant: id, entering: false})
	}
}

func (listener *collisionListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {
}

func (listener *collisionListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}

// forget drops the zone bookkeeping of a disposed combatant.
func (listener *collisionListener) forget(id ecs.EntityID) {
	delete(listener.overlap, id)
}

// PopZoneContacts returns the contacts buffered during the last physics
// step.
func (listener *collisionListener) PopZoneContacts() []zoneContact {
	defer func() { listener.buffer = nil }()
	return listener.buffer
}

// systemCollisions notifies combatants entering their first crouch zone or
// leaving their last one; zones may overlap.
func systemCollisions(deathmatch *DeathmatchGame) {
	listener := deathmatch.collisionListener

	for _, contact := range listener.PopZoneContacts() {
		before := listener.overlap[contact.combatant]
		after := before

		if contact.entering {
			after++
		} else if before > 0 {
			after--
		}

		if after == 0 {
			delete(listener.overlap, contact.combatant)
		} else {
			listener.overlap[contact.combatant] = after
		}

		if (before == 0) == (after == 0) {
			continue
		}

		entityResult := deathmatch.getEntity(contact.combatant, deathmatch.combatantComponent)
		if entityResult == nil {
			continue
		}

		combatant := deathmatch.CastCombatant(entityResult.Components[deathmatch.combatantComponent])
		if combatant.IsAlive() {
			combatant.NotifyCrouchZone(after > 0)
		}
	}
}
