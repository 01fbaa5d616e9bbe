package deathmatch

import (
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"
	"github.com/pkg/errors"

	"github.com/botarena/botarena/common/types"
	"github.com/botarena/botarena/common/utils/vector"
)

// NewEntityObstacle creates a static closed polygon that stops bodies and
// rays, and hides combatants from the sensor.
func (deathmatch *DeathmatchGame) NewEntityObstacle(polygon []vector.Vector2, name string) (entity *ecs.Entity, err error) {

	obstacle := deathmatch.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_staticBody

	body := deathmatch.PhysicalWorld.CreateBody(&bodydef)
	vertices := make([]box2d.B2Vec2, len(polygon))

	for i, point := range polygon {
		vertices[i] = toPhysics(point)
	}

	defer func() {
		if r := recover(); r != nil {
			deathmatch.PhysicalWorld.DestroyBody(body)
			deathmatch.manager.DisposeEntities(obstacle)
			entity = nil
			err = errors.Errorf("obstacle %s is not valid; perhaps some vertices are duplicated? (%v)", name, r)
		}
	}()

	shape := box2d.MakeB2ChainShape()
	shape.CreateLoop(vertices, len(vertices))
	body.CreateFixture(&shape, 0.0)
	body.SetUserData(types.MakePhysicalBodyDescriptor(
		types.PhysicalBodyDescriptorType.Obstacle,
		obstacle.GetID(),
	))

	deathmatch.sensor.AddObstacle(polygon)

	return obstacle.
		AddComponent(deathmatch.physicalBodyComponent, &PhysicalBody{
			body:   body,
			static: true,
		}), nil
}

// NewEntityCrouchZone creates a convex area where combatants crouch.
func (deathmatch *DeathmatchGame) NewEntityCrouchZone(polygon []vector.Vector2, name string) (entity *ecs.Entity, err error) {

	if len(polygon) < 3 || len(polygon) > box2d.B2_maxPolygonVertices {
		return nil, errors.Errorf("crouch zone %s needs between 3 and %d vertices", name, box2d.B2_maxPolygonVertices)
	}

	zone := deathmatch.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_staticBody

	body := deathmatch.PhysicalWorld.CreateBody(&bodydef)
	vertices := make([]box2d.B2Vec2, len(polygon))

	for i, point := range polygon {
		vertices[i] = toPhysics(point)
	}

	defer func() {
		if r := recover(); r != nil {
			deathmatch.PhysicalWorld.DestroyBody(body)
			deathmatch.manager.DisposeEntities(zone)
			entity = nil
			err = errors.Errorf("crouch zone %s is not valid (%v)", name, r)
		}
	}()

	shape := box2d.MakeB2PolygonShape()
	shape.Set(vertices, len(vertices))

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.IsSensor = true
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(types.MakePhysicalBodyDescriptor(
		types.PhysicalBodyDescriptorType.CrouchZone,
		zone.GetID(),
	))

	return zone.
		AddComponent(deathmatch.physicalBodyComponent, &PhysicalBody{
			body:   body,
			static: true,
		}), nil
}
