package deathmatch

// systemImpacts applies the damage of the shots fired during the previous
// step.
func systemImpacts(deathmatch *DeathmatchGame) {
	for _, entityResult := range deathmatch.impactorView.Get() {
		impactorAspect := deathmatch.CastImpactor(entityResult.Components[deathmatch.impactorComponent])
		if impactorAspect.IsApplied() {
			continue
		}
		impactorAspect.MarkApplied()

		target, ok := impactorAspect.GetTarget()
		if !ok {
			continue
		}

		targetResult := deathmatch.getEntity(target, deathmatch.combatantComponent)
		if targetResult == nil {
			continue
		}

		combatant := deathmatch.CastCombatant(targetResult.Components[deathmatch.combatantComponent])
		combatant.TakeDamage(impactorAspect.GetDamage(), impactorAspect.GetOwner())
	}
}
