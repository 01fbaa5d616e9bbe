package trigo

import (
	"math"

	"github.com/botarena/botarena/common/utils/number"
	"github.com/botarena/botarena/common/utils/vector"
)

func IntersectionWithLineSegmentCheckOnly(p1 vector.Vector2, p2 vector.Vector2, p3 vector.Vector2, p4 vector.Vector2) (intersect bool) {
	a := p2.Sub(p1)
	b := p3.Sub(p4)
	c := p1.Sub(p3)

	ax, ay := a.Get()
	bx, by := b.Get()
	cx, cy := c.Get()

	alphaNumerator := by*cx - bx*cy
	alphaDenominator := ay*bx - ax*by
	betaNumerator := ax*cy - ay*cx
	betaDenominator := alphaDenominator

	doIntersect := true

	if alphaDenominator == 0 || betaDenominator == 0 {
		doIntersect = false
	} else {
		if alphaDenominator > 0 {
			if alphaNumerator < 0 || alphaNumerator > alphaDenominator {
				doIntersect = false
			}
		} else if alphaNumerator > 0 || alphaNumerator < alphaDenominator {
			doIntersect = false
		}

		if doIntersect && betaDenominator > 0 {
			if betaNumerator < 0 || betaNumerator > betaDenominator {
				doIntersect = false
			}
		} else if betaNumerator > 0 || betaNumerator < betaDenominator {
			doIntersect = false
		}
	}

	return doIntersect
}

// FullCircleAngleToSignedHalfCircleAngle maps any angle to ]-Pi, Pi].
func FullCircleAngleToSignedHalfCircleAngle(rad float64) float64 {
	rad = math.Mod(rad, math.Pi*2)

	if rad > math.Pi {
		rad -= math.Pi * 2
	} else if rad <= -math.Pi {
		rad += math.Pi * 2
	}

	return rad
}

// InterpAngle moves current toward target along the shortest arc. Each call
// covers the fraction dt*speed of the remaining arc, so the facing converges
// smoothly instead of snapping. A non-positive speed snaps to target.
func InterpAngle(current, target, dt, speed float64) float64 {
	if speed <= 0 {
		return FullCircleAngleToSignedHalfCircleAngle(target)
	}

	delta := FullCircleAngleToSignedHalfCircleAngle(target - current)
	if number.IsZero(delta) {
		return FullCircleAngleToSignedHalfCircleAngle(target)
	}

	alpha := number.Clamp(dt*speed, 0, 1)

	return FullCircleAngleToSignedHalfCircleAngle(current + delta*alpha)
}

// InCone reports whether point lies within radius of origin and within
// halfAngle of heading.
func InCone(origin vector.Vector2, heading float64, radius float64, halfAngle float64, point vector.Vector2) bool {
	rel := point.Sub(origin)
	if rel.MagSq() > radius*radius {
		return false
	}

	if halfAngle >= math.Pi || rel.IsNull() {
		return true
	}

	return math.Abs(FullCircleAngleToSignedHalfCircleAngle(rel.Heading()-heading)) <= halfAngle
}
