package bot

import (
	"math"

	"github.com/bytearena/ecs"
	"github.com/rs/zerolog"
)

// Health tracks the life of one combatant and runs its death handling.
// Retreating is not a separate state: alive and ShouldRetreat can both hold.
type Health struct {
	owner ecs.EntityID

	maxHealth        float64 // Const
	current          float64 // Current life level
	retreatThreshold float64 // Const; fraction of maxHealth
	destroyDelay     float64 // Const; seconds between death and disposal
	dead             bool

	team       TeamProvider
	movement   Movement
	physics    Physics
	counter    LiveCounter
	destroyer  Destroyer
	blackboard Blackboard
	events     *Dispatcher
	log        zerolog.Logger
}

func NewHealth(owner ecs.EntityID, specs Specs, team TeamProvider, c Collaborators, events *Dispatcher) *Health {
	maxHealth := specs.MaxHealth
	if maxHealth <= 0 {
		maxHealth = DefaultSpecs().MaxHealth
	}

	return &Health{
		owner:            owner,
		maxHealth:        maxHealth,
		current:          maxHealth,
		retreatThreshold: math.Max(0, math.Min(1, specs.RetreatThreshold)),
		destroyDelay:     specs.DestroyDelay,

		team:       team,
		movement:   c.Movement,
		physics:    c.Physics,
		counter:    c.Counter,
		destroyer:  c.Destroyer,
		blackboard: c.Blackboard,
		events:     events,
		log:        c.Logger.With().Str("component", "health").Str("entity", owner.String()).Logger(),
	}
}

// Restore brings the combatant back to full health, alive.
func (h *Health) Restore() *Health {
	h.current = h.maxHealth
	h.dead = false
	return h
}

func (h Health) GetMaxHealth() float64 {
	return h.maxHealth
}

func (h Health) GetHealth() float64 {
	return h.current
}

func (h Health) GetRetreatThreshold() float64 {
	return h.retreatThreshold
}

func (h Health) IsAlive() bool {
	return !h.dead && h.current > 0
}

func (h Health) ShouldRetreat() bool {
	return h.IsAlive() && h.current <= h.maxHealth*h.retreatThreshold
}

// ApplyDamage returns the damage actually applied. Non-positive amounts and
// damage to a dead combatant are rejected.
func (h *Health) ApplyDamage(amount float64, instigator ecs.EntityID) float64 {
	if !h.IsAlive() {
		h.log.Debug().Float64("amount", amount).Msg("damage ignored: already dead")
		return 0
	}

	if !(amount > 0) {
		h.log.Warn().Float64("amount", amount).Msg("damage rejected: amount must be positive")
		return 0
	}

	previous := h.current
	h.current = math.Max(0, h.current-amount)
	applied := previous - h.current

	h.events.Emit(Event{
		Type:        EventHealthChanged,
		Source:      h.owner,
		Health:      h.current,
		HealthDelta: -applied,
		Instigator:  instigator,
	})

	if h.ShouldRetreat() {
		h.requestRetreat()
	}

	if h.current <= 0 {
		h.die(instigator)
	}

	return applied
}

func (h *Health) requestRetreat() {
	if h.blackboard == nil {
		h.log.Warn().Msg("retreat requested without blackboard")
	} else {
		h.blackboard.SetValue(KeyShouldRetreat, true)
	}

	h.events.Emit(Event{
		Type:   EventRetreat,
		Source: h.owner,
		Health: h.current,
	})
}

func (h *Health) die(instigator ecs.EntityID) {
	if h.dead {
		return
	}
	h.dead = true

	h.events.Emit(Event{
		Type:       EventDeath,
		Source:     h.owner,
		Team:       h.team.GetTeam(),
		Instigator: instigator,
	})

	if h.movement == nil {
		h.log.Warn().Msg("no movement collaborator for death pose")
	} else if h.movement.IsCrouching() {
		h.movement.NotifyCrouchZone(false)
	}

	if h.physics == nil {
		h.log.Warn().Msg("no physics collaborator for corpse")
	} else {
		h.physics.EnableRagdoll()
		h.physics.AllowTraversal()
	}

	if h.counter == nil {
		h.log.Warn().Msg("no live counter to notify")
	} else if err := h.counter.DecrementLiveCount(h.team.GetTeam()); err != nil {
		h.log.Error().Err(err).Str("team", h.team.GetTeam().String()).Msg("live count out of sync")
	}

	if h.destroyer == nil {
		h.log.Warn().Msg("no destroyer, corpse is kept")
	} else {
		h.destroyer.ScheduleDestroy(h.owner, h.destroyDelay)
	}
}
