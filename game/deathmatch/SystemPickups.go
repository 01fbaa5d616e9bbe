package deathmatch

import "github.com/bytearena/ecs"

// systemPickups hands the ammo of a pickup to the first living combatant
// reaching it. A combatant that cannot carry more leaves it in place.
func systemPickups(deathmatch *DeathmatchGame) {
	entitiesToRemove := make([]*ecs.Entity, 0)

	for _, entityResult := range deathmatch.combatantsView.Get() {
		combatant := deathmatch.CastCombatant(entityResult.Components[deathmatch.combatantComponent])
		if !combatant.IsAlive() {
			continue
		}

		for _, pickup := range deathmatch.pickupIndex.Within(combatant.GetPosition(), deathmatch.botSettings.PickupReach) {
			if combatant.Ammo.AddAmmo(pickup.GetAmount()) <= 0 {
				continue
			}

			deathmatch.pickupIndex.Remove(pickup.GetID())
			if pickupResult := deathmatch.getEntity(pickup.GetID()); pickupResult != nil {
				entitiesToRemove = append(entitiesToRemove, pickupResult.Entity)
			}

			deathmatch.log.Debug().
				Str("combatant", combatant.GetName()).
				Int("amount", pickup.GetAmount()).
				Msg("pickup collected")
			break
		}
	}

	if len(entitiesToRemove) > 0 {
		deathmatch.manager.DisposeEntities(entitiesToRemove...)
	}
}
