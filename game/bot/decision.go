package bot

import (
	"github.com/bytearena/ecs"
	"github.com/rs/zerolog"
)

// DecisionLoop drives one combatant, once per simulation step.
type DecisionLoop struct {
	owner ecs.EntityID
	dir   Directory

	health     *Health
	ammo       *Ammo
	perception *Perception
	combat     *CombatGate

	movement   Movement
	blackboard Blackboard
	pickups    PickupScanner

	turnSpeed    float64
	pickupRadius float64

	steps              uint64
	warnedNoBlackboard bool

	log zerolog.Logger
}

func NewDecisionLoop(owner ecs.EntityID, specs Specs, health *Health, ammo *Ammo, perception *Perception, combat *CombatGate, c Collaborators) *DecisionLoop {
	return &DecisionLoop{
		owner:        owner,
		dir:          c.Directory,
		health:       health,
		ammo:         ammo,
		perception:   perception,
		combat:       combat,
		movement:     c.Movement,
		blackboard:   c.Blackboard,
		pickups:      c.Pickups,
		turnSpeed:    specs.TurnSpeed,
		pickupRadius: specs.PickupSearchRadius,
		log:          c.Logger.With().Str("component", "decision").Str("entity", owner.String()).Logger(),
	}
}

func (d DecisionLoop) Steps() uint64 {
	return d.steps
}

func (d *DecisionLoop) Step(dt float64) {
	d.steps++

	d.ammo.Tick(dt)
	d.perception.Tick(dt)
	d.combat.Tick(dt)

	if !d.health.IsAlive() {
		return
	}

	if sensed, ok := d.perception.DrainIfPending(); ok {
		d.perception.SelectTarget(sensed)
	}

	target, hasTarget := d.perception.CurrentTarget()
	if hasTarget {
		d.faceTarget(target, dt)
	}

	d.combat.Fire()

	d.publish(target, hasTarget)
}

func (d *DecisionLoop) faceTarget(target Actor, dt float64) {
	if d.movement == nil {
		d.log.Warn().Msg("cannot face target: no movement collaborator")
		return
	}

	self, ok := d.dir.Resolve(d.owner)
	if !ok {
		d.log.Warn().Msg("cannot face target: owner not found")
		return
	}

	heading := target.GetPosition().Sub(self.GetPosition()).Heading()
	d.movement.SetFacing(heading, d.turnSpeed, dt)
}

func (d *DecisionLoop) publish(target Actor, hasTarget bool) {
	if d.blackboard == nil {
		if !d.warnedNoBlackboard {
			d.log.Warn().Msg("no blackboard, behavior state is not published")
			d.warnedNoBlackboard = true
		}
		return
	}

	if self, ok := d.dir.Resolve(d.owner); ok {
		d.blackboard.SetValue(KeySelfLocation, self.GetPosition())
	}

	if hasTarget {
		d.blackboard.SetValue(KeySelectedTarget, target.GetID())
	} else {
		d.blackboard.ClearValue(KeySelectedTarget)
	}

	d.blackboard.SetValue(KeyShouldRetreat, d.health.ShouldRetreat())

	low := d.ammo.LowOnAmmo()
	d.blackboard.SetValue(KeyCollectAmmo, low)

	if pickup, ok := d.findResupply(low); ok {
		d.blackboard.SetValue(KeyAmmoBox, pickup.ID)
	} else {
		d.blackboard.ClearValue(KeyAmmoBox)
	}
}

func (d *DecisionLoop) findResupply(low bool) (Pickup, bool) {
	if !low || d.pickups == nil {
		return Pickup{}, false
	}

	self, ok := d.dir.Resolve(d.owner)
	if !ok {
		return Pickup{}, false
	}

	for _, pickup := range d.pickups.SweepNearby(self.GetPosition(), d.pickupRadius) {
		if pickup.Resupply {
			return pickup, true
		}
	}

	return Pickup{}, false
}
