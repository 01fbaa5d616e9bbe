package deathmatch

// systemDecision runs the decision loop of every combatant, then its
// behavior rules.
func systemDecision(deathmatch *DeathmatchGame, dt float64) {
	for _, entityResult := range deathmatch.combatantsView.Get() {
		combatant := deathmatch.CastCombatant(entityResult.Components[deathmatch.combatantComponent])
		combatant.Step(dt)

		if deathmatch.behavior == nil || !combatant.IsAlive() {
			continue
		}

		board := deathmatch.CastBlackboard(entityResult.Components[deathmatch.blackboardComponent])
		deathmatch.behavior(combatant, board, dt)
	}
}
