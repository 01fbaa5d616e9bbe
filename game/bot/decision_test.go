package bot_test

import (
	"strings"
	"testing"

	"github.com/bytearena/ecs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botarena/botarena/common/utils/vector"
	"github.com/botarena/botarena/game/bot"
)

func TestStepSelectsFacesFiresAndPublishes(t *testing.T) {
	a := newArena()
	shooter := a.spawn(bot.Team1, 0, 0, readySpecs())
	enemy := a.actor(bot.Team2, 0, 10)

	shooter.Perception.OnSensed([]ecs.EntityID{enemy.id})
	shooter.Step(0.05)

	assert.Len(t, shooter.movement.facings, 1)
	assert.InDelta(t, 1.5707963, shooter.movement.facings[0], 1e-6)

	assert.Len(t, shooter.spawner.spawns, 1)
	assert.Equal(t, 29, shooter.Ammo.GetAmmo())

	bb := shooter.blackboard.values
	assert.Equal(t, enemy.id, bb[bot.KeySelectedTarget])
	assert.Equal(t, false, bb[bot.KeyShouldRetreat])
	assert.Equal(t, false, bb[bot.KeyCollectAmmo])
	assert.Equal(t, vector.MakeVector2(0, 0), bb[bot.KeySelfLocation])
	assert.NotContains(t, bb, bot.KeyAmmoBox)
	assert.Equal(t, uint64(1), shooter.Decision.Steps())
}

func TestStepDrainsOncePerUpdate(t *testing.T) {
	a := newArena()
	shooter := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())
	first := a.actor(bot.Team2, 10, 0)
	second := a.actor(bot.Team2, 20, 0)

	selections := 0
	shooter.Events.Subscribe(bot.EventTargetSelected, func(bot.Event) { selections++ })

	shooter.Perception.OnSensed([]ecs.EntityID{first.id})
	shooter.Perception.OnSensed([]ecs.EntityID{second.id})

	shooter.Step(0.05)
	shooter.Step(0.05)

	assert.Equal(t, 1, selections)
	target, ok := shooter.Perception.CurrentTarget()
	require.True(t, ok)
	assert.Equal(t, second.id, target.GetID())
}

func TestStepClearsLostTarget(t *testing.T) {
	a := newArena()
	shooter := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())
	enemy := a.actor(bot.Team2, 10, 0)

	shooter.Perception.OnSensed([]ecs.EntityID{enemy.id})
	shooter.Step(0.05)
	require.Contains(t, shooter.blackboard.values, bot.KeySelectedTarget)

	a.dir.Remove(enemy.id)
	shooter.Step(0.05)
	assert.NotContains(t, shooter.blackboard.values, bot.KeySelectedTarget)
}

func TestStepPublishesResupplyWhenLow(t *testing.T) {
	a := newArena()
	specs := bot.DefaultSpecs()
	specs.StartAmmo = 3
	shooter := a.spawn(bot.Team1, 0, 0, specs)

	shooter.pickups.pickups = []bot.Pickup{
		{ID: 70, Position: vector.MakeVector2(500, 0), Resupply: true},
		{ID: 71, Position: vector.MakeVector2(50, 0), Resupply: false},
		{ID: 72, Position: vector.MakeVector2(0, 100), Resupply: true},
	}

	shooter.Step(0.05)

	assert.Equal(t, true, shooter.blackboard.values[bot.KeyCollectAmmo])
	assert.Equal(t, ecs.EntityID(72), shooter.blackboard.values[bot.KeyAmmoBox])

	shooter.Ammo.AddAmmo(50)
	shooter.Step(0.05)

	assert.Equal(t, false, shooter.blackboard.values[bot.KeyCollectAmmo])
	assert.NotContains(t, shooter.blackboard.values, bot.KeyAmmoBox)
}

func TestDeadCombatantDoesNotAct(t *testing.T) {
	a := newArena()
	shooter := a.spawn(bot.Team1, 0, 0, readySpecs())
	enemy := a.actor(bot.Team2, 10, 0)

	shooter.TakeDamage(100, enemy.id)
	shooter.Perception.OnSensed([]ecs.EntityID{enemy.id})
	shooter.Step(0.05)

	assert.Empty(t, shooter.spawner.spawns)
	assert.Empty(t, shooter.movement.facings)
	assert.Equal(t, uint64(1), shooter.Decision.Steps())
}

func TestStepWithoutBlackboardWarnsOnce(t *testing.T) {
	logs := &strings.Builder{}
	dir := newDirectory()

	c := bot.NewCombatant(1, "lonely", bot.Team1, bot.DefaultSpecs(), bot.Collaborators{
		Directory: dir,
		Body:      &body{},
		Logger:    zerolog.New(logs),
	})
	dir.Add(c)

	c.Step(0.1)
	c.Step(0.1)

	assert.Equal(t, 1, strings.Count(logs.String(), "behavior state is not published"))
}

func TestSetMoveToLocationPublishesAndForwards(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())

	dest := vector.MakeVector2(12, -4)
	r.SetMoveToLocation(dest)

	assert.Equal(t, dest, r.blackboard.values[bot.KeyMoveLocation])
	assert.Equal(t, dest, r.movement.destination)

	r.NotifyCrouchZone(true)
	assert.True(t, r.movement.crouching)
}

func TestEndToEndSingleRound(t *testing.T) {
	a := newArena()
	specs := readySpecs()
	specs.StartAmmo = 1
	shooter := a.spawn(bot.Team1, 0, 0, specs)
	enemy := a.actor(bot.Team2, 25, 0)

	order := make([]string, 0)
	shooter.Events.Subscribe(bot.EventWeaponFired|bot.EventAmmoChanged, func(e bot.Event) {
		order = append(order, e.Type.String())
		assert.Len(t, shooter.spawner.spawns, 1, "projectile requested before %s", e.Type)
	})

	shooter.Perception.OnSensed([]ecs.EntityID{enemy.id})
	shooter.Step(0.016)

	assert.Equal(t, 0, shooter.Ammo.GetAmmo())
	assert.Equal(t, []string{"weapon-fired", "ammo-changed"}, order)
	assert.True(t, shooter.spawner.spawns[0].aim.Equals(enemy.position))
}
