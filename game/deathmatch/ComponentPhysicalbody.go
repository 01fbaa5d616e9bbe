package deathmatch

import (
	"github.com/bytearena/box2d"

	"github.com/botarena/botarena/common/types"
	"github.com/botarena/botarena/common/utils/trigo"
	"github.com/botarena/botarena/common/utils/vector"
)

// Box2D works in meters; arena coordinates are scaled down before reaching
// the physical world.
const physicsScale = 0.01

func toPhysics(v vector.Vector2) box2d.B2Vec2 {
	return v.MultScalar(physicsScale).ToB2Vec2()
}

func fromPhysics(v box2d.B2Vec2) vector.Vector2 {
	return vector.FromB2Vec2(v).DivScalar(physicsScale)
}

func (deathmatch DeathmatchGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

// PhysicalBody is the box2d body of an entity. For combatants it is also
// the movement, physics and weapon mount collaborator.
type PhysicalBody struct {
	body     *box2d.B2Body
	radius   float64 // expressed in arena units
	maxSpeed float64 // expressed in arena units per second
	static   bool

	destination    vector.Vector2
	hasDestination bool
	crouching      bool
	ragdoll        bool
}

func (p *PhysicalBody) GetBody() *box2d.B2Body {
	return p.body
}

func (p PhysicalBody) GetPosition() vector.Vector2 {
	return fromPhysics(p.body.GetPosition())
}

func (p *PhysicalBody) SetPosition(v vector.Vector2) *PhysicalBody {
	p.body.SetTransform(toPhysics(v), p.GetOrientation())
	return p
}

func (p PhysicalBody) GetVelocity() vector.Vector2 {
	return fromPhysics(p.body.GetLinearVelocity())
}

func (p *PhysicalBody) SetVelocity(v vector.Vector2) *PhysicalBody {
	p.body.SetLinearVelocity(toPhysics(v))
	return p
}

func (p PhysicalBody) GetOrientation() float64 {
	return p.body.GetAngle()
}

func (p *PhysicalBody) SetOrientation(angle float64) *PhysicalBody {
	p.body.SetTransform(p.body.GetPosition(), angle)
	return p
}

func (p PhysicalBody) GetRadius() float64 {
	return p.radius
}

func (p PhysicalBody) GetMaxSpeed() float64 {
	if p.crouching {
		return p.maxSpeed / 2
	}

	return p.maxSpeed
}

// <bot.Movement>

func (p *PhysicalBody) SetFacing(targetRotation float64, maxRate float64, dt float64) {
	if p.ragdoll {
		return
	}

	p.SetOrientation(trigo.InterpAngle(p.GetOrientation(), targetRotation, dt, maxRate))
}

func (p *PhysicalBody) SetDesiredMoveLocation(point vector.Vector2) {
	p.destination = point
	p.hasDestination = true
}

func (p *PhysicalBody) GetDesiredMoveLocation() (vector.Vector2, bool) {
	return p.destination, p.hasDestination
}

func (p *PhysicalBody) ClearDesiredMoveLocation() {
	p.hasDestination = false
}

func (p *PhysicalBody) NotifyCrouchZone(inZone bool) {
	p.crouching = inZone
}

func (p PhysicalBody) IsCrouching() bool {
	return p.crouching
}

// </bot.Movement>

// <bot.Physics>

func (p *PhysicalBody) EnableRagdoll() {
	p.ragdoll = true
	p.hasDestination = false
	p.SetVelocity(vector.MakeNullVector2())
}

// AllowTraversal turns the body into a sensor: other bodies and rays go
// through the corpse.
func (p *PhysicalBody) AllowTraversal() {
	for fixture := p.body.GetFixtureList(); fixture != nil; fixture = fixture.GetNext() {
		fixture.SetSensor(true)
	}

	if descriptor, ok := p.body.GetUserData().(types.PhysicalBodyDescriptor); ok {
		p.body.SetUserData(types.MakePhysicalBodyDescriptor(
			types.PhysicalBodyDescriptorType.Corpse,
			descriptor.ID,
		))
	}
}

func (p PhysicalBody) IsRagdoll() bool {
	return p.ragdoll
}

// </bot.Physics>

// MuzzleLocation is on the rim of the body, in the facing direction.
func (p PhysicalBody) MuzzleLocation() vector.Vector2 {
	return p.GetPosition().Add(vector.MakeUnitVector2(p.GetOrientation()).MultScalar(p.radius))
}
