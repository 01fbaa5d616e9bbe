package bot

import (
	"math"

	"github.com/bytearena/ecs"
	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"

	"github.com/botarena/botarena/common/utils/vector"
)

// Specs are the tunables of a combatant.
type Specs struct {
	MaxHealth        float64
	RetreatThreshold float64
	DestroyDelay     float64 // seconds

	StartAmmo          int
	MaxAmmo            int
	AmmoAddCeiling     int
	LowAmmoThreshold   int
	FireDelay          float64 // seconds
	FireEffectDuration float64 // seconds
	ProjectileTemplate string

	SelectTargetInterval float64 // seconds
	TurnSpeed            float64
	PickupSearchRadius   float64
}

func DefaultSpecs() Specs {
	return Specs{
		MaxHealth:        100,
		RetreatThreshold: 0.2,
		DestroyDelay:     5,

		StartAmmo:          30,
		MaxAmmo:            999,
		AmmoAddCeiling:     100,
		LowAmmoThreshold:   5,
		FireDelay:          0.35,
		FireEffectDuration: 0.2,
		ProjectileTemplate: "rifle-round",

		SelectTargetInterval: 5,
		TurnSpeed:            1,
		PickupSearchRadius:   150,
	}
}

// Collaborators are the services a combatant is wired to. Any of them may
// be nil; the operations needing a missing one log and do nothing.
type Collaborators struct {
	Directory  Directory
	Body       Locator
	Movement   Movement
	Physics    Physics
	Mount      WeaponMount
	Visibility Visibility
	Spawner    Spawner
	Counter    LiveCounter
	Destroyer  Destroyer
	Blackboard Blackboard
	Pickups    PickupScanner
	Logger     zerolog.Logger
}

// Combatant composes the components of one bot.
type Combatant struct {
	id    ecs.EntityID
	uuid  uuid.UUID
	name  string
	specs Specs

	body       Locator
	movement   Movement
	blackboard Blackboard
	counter    LiveCounter
	counted    bool // alive and included in the team live count

	Events     *Dispatcher
	Team       *TeamMember
	Health     *Health
	Ammo       *Ammo
	Perception *Perception
	Combat     *CombatGate
	Decision   *DecisionLoop

	log zerolog.Logger
}

func NewCombatant(id ecs.EntityID, name string, team Team, specs Specs, c Collaborators) *Combatant {
	events := NewDispatcher()
	member := NewTeamMember(id, team, events)
	health := NewHealth(id, specs, member, c, events)
	ammo := NewAmmo(id, specs, events, c.Logger)
	perception := NewPerception(id, specs, member, c.Directory, events, c.Logger)
	combat := NewCombatGate(id, specs, member, health, ammo, perception, c)

	return &Combatant{
		id:    id,
		uuid:  uuid.NewV4(),
		name:  name,
		specs: specs,

		body:       c.Body,
		movement:   c.Movement,
		blackboard: c.Blackboard,
		counter:    c.Counter,

		Events:     events,
		Team:       member,
		Health:     health,
		Ammo:       ammo,
		Perception: perception,
		Combat:     combat,
		Decision:   NewDecisionLoop(id, specs, health, ammo, perception, combat, c),

		log: c.Logger.With().Str("combatant", name).Str("entity", id.String()).Logger(),
	}
}

func (c *Combatant) GetID() ecs.EntityID {
	return c.id
}

func (c *Combatant) GetUUID() uuid.UUID {
	return c.uuid
}

func (c *Combatant) GetName() string {
	return c.name
}

func (c *Combatant) GetTeam() Team {
	return c.Team.GetTeam()
}

func (c *Combatant) GetPosition() vector.Vector2 {
	if c.body == nil {
		return vector.MakeNullVector2()
	}

	return c.body.GetPosition()
}

func (c *Combatant) GetOrientation() float64 {
	if c.body == nil {
		return 0
	}

	return c.body.GetOrientation()
}

func (c *Combatant) IsAlive() bool {
	return c.Health.IsAlive()
}

// Spawn (re)initializes the combatant and counts it among the living
// members of its team. Spawning a combatant that is already alive resets
// it without counting it twice.
func (c *Combatant) Spawn() {
	alreadyCounted := c.counted && c.Health.IsAlive()

	c.Health.Restore()
	c.Ammo.Reload(c.specs.StartAmmo)
	c.Perception.ClearTarget()

	if c.blackboard != nil {
		c.blackboard.SetValue(KeyShouldRetreat, false)
		c.blackboard.ClearValue(KeySelectedTarget)
	}

	switch {
	case alreadyCounted:
	case c.counter == nil:
		c.log.Warn().Msg("no live counter to notify")
	default:
		if err := c.counter.IncrementLiveCount(c.GetTeam()); err != nil {
			c.log.Error().Err(err).Msg("cannot count spawn")
		}
	}
	c.counted = true

	c.Events.Emit(Event{
		Type:   EventSpawned,
		Source: c.id,
		Team:   c.GetTeam(),
		Health: c.Health.GetHealth(),
		Ammo:   c.Ammo.GetAmmo(),
	})
}

func (c *Combatant) SetTeam(team Team) bool {
	return c.Team.SetTeam(team)
}

func (c *Combatant) TakeDamage(amount float64, instigator ecs.EntityID) float64 {
	return c.Health.ApplyDamage(amount, instigator)
}

// SetMoveToLocation publishes the destination and forwards it to movement.
func (c *Combatant) SetMoveToLocation(point vector.Vector2) {
	if math.IsNaN(point.GetX()) || math.IsNaN(point.GetY()) {
		c.log.Warn().Msg("move location rejected")
		return
	}

	if c.blackboard != nil {
		c.blackboard.SetValue(KeyMoveLocation, point)
	}

	if c.movement == nil {
		c.log.Warn().Msg("cannot move: no movement collaborator")
		return
	}

	c.movement.SetDesiredMoveLocation(point)
}

func (c *Combatant) NotifyCrouchZone(inZone bool) {
	if c.movement == nil {
		c.log.Warn().Msg("cannot crouch: no movement collaborator")
		return
	}

	c.movement.NotifyCrouchZone(inZone)
}

func (c *Combatant) Step(dt float64) {
	c.Decision.Step(dt)
}
