package deathmatch

import (
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	"github.com/botarena/botarena/common/types"
	"github.com/botarena/botarena/common/utils/vector"
	"github.com/botarena/botarena/game/bot"
)

// NewEntityCombatant creates a combatant body at position, wires its
// collaborators to the arena and spawns it.
func (deathmatch *DeathmatchGame) NewEntityCombatant(name string, team bot.Team, position vector.Vector2) *bot.Combatant {

	entity := deathmatch.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position = toPhysics(position)
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = false
	bodydef.FixedRotation = true

	body := deathmatch.PhysicalWorld.CreateBody(&bodydef)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(deathmatch.botSettings.Radius * physicsScale)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = 20.0
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(types.MakePhysicalBodyDescriptor(
		types.PhysicalBodyDescriptorType.Combatant,
		entity.GetID(),
	))

	physicalAspect := &PhysicalBody{
		body:     body,
		radius:   deathmatch.botSettings.Radius,
		maxSpeed: deathmatch.botSettings.MaxSpeed,
	}

	blackboard := NewBlackboard()

	combatant := bot.NewCombatant(entity.GetID(), name, team, deathmatch.specs, bot.Collaborators{
		Directory:  deathmatch,
		Body:       physicalAspect,
		Movement:   physicalAspect,
		Physics:    physicalAspect,
		Mount:      physicalAspect,
		Visibility: deathmatch,
		Spawner:    deathmatch,
		Counter:    deathmatch.teamCounter,
		Destroyer:  deathmatch,
		Blackboard: blackboard,
		Pickups:    deathmatch.pickupIndex,
		Logger:     deathmatch.log,
	})

	entity.
		AddComponent(deathmatch.physicalBodyComponent, physicalAspect).
		AddComponent(deathmatch.combatantComponent, combatant).
		AddComponent(deathmatch.blackboardComponent, blackboard).
		AddComponent(deathmatch.renderComponent, &Render{
			type_: "combatant",
		})

	deathmatch.relay.Attach(combatant)
	combatant.Spawn()

	return combatant
}

func (deathmatch DeathmatchGame) CastCombatant(data interface{}) *bot.Combatant {
	return data.(*bot.Combatant)
}
