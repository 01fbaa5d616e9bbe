package deathmatch

import (
	"math"

	"github.com/botarena/botarena/common/utils/vector"
)

// Distance under which a destination counts as reached.
const arrivalTolerance = 2.0

func systemSteering(deathmatch *DeathmatchGame, dt float64) {
	for _, entityresult := range deathmatch.combatantsView.Get() {
		physicalAspect := deathmatch.CastPhysicalBody(entityresult.Components[deathmatch.physicalBodyComponent])

		if physicalAspect.IsRagdoll() {
			continue
		}

		destination, ok := physicalAspect.GetDesiredMoveLocation()
		if !ok {
			physicalAspect.SetVelocity(vector.MakeNullVector2())
			continue
		}

		diff := destination.Sub(physicalAspect.GetPosition())
		distance := diff.Mag()

		if distance <= arrivalTolerance {
			physicalAspect.ClearDesiredMoveLocation()
			physicalAspect.SetVelocity(vector.MakeNullVector2())
			continue
		}

		speed := physicalAspect.GetMaxSpeed()
		if dt > 0 {
			speed = math.Min(speed, distance/dt) // do not overshoot
		}

		physicalAspect.SetVelocity(diff.SetMag(speed))
	}
}
