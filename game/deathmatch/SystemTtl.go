package deathmatch

import "github.com/bytearena/ecs"

func systemTtl(deathmatch *DeathmatchGame) {
	var expired []*ecs.Entity

	for _, entityresult := range deathmatch.ttlView.Get() {
		if deathmatch.CastTtl(entityresult.Components[deathmatch.ttlComponent]).Expire() {
			expired = append(expired, entityresult.Entity)
		}
	}

	if len(expired) == 0 {
		return
	}

	deathmatch.log.Debug().Int("entities", len(expired)).Msg("transient entities expired")
	deathmatch.manager.DisposeEntities(expired...)
}
