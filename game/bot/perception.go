package bot

import (
	"sync"

	"github.com/bytearena/ecs"
	"github.com/rs/zerolog"

	"github.com/botarena/botarena/common/utils/vector"
)

// Candidates beyond this distance are never selected.
const selectionHorizon = 99999.0

// Perception hands sensed entities from the sensor timeline over to the
// decision step and keeps the selected target.
//
// The pending set lives in a one-slot channel: a new set replaces the one
// not drained yet, so the consumer sees at most the latest set.
type Perception struct {
	owner ecs.EntityID
	team  *TeamMember
	dir   Directory

	slot    chan []ecs.EntityID
	produce sync.Mutex // serializes producers around the replace

	interval       float64 // Const; minimum seconds between two selections
	sinceSelection float64
	target         ecs.EntityID
	hasTarget      bool

	events *Dispatcher
	log    zerolog.Logger
}

func NewPerception(owner ecs.EntityID, specs Specs, team *TeamMember, dir Directory, events *Dispatcher, log zerolog.Logger) *Perception {
	return &Perception{
		owner:    owner,
		team:     team,
		dir:      dir,
		slot:     make(chan []ecs.EntityID, 1),
		interval: specs.SelectTargetInterval,
		events:   events,
		log:      log.With().Str("component", "perception").Str("entity", owner.String()).Logger(),
	}
}

// OnSensed is called from the sensor timeline. It never waits on the
// decision step.
func (p *Perception) OnSensed(entities []ecs.EntityID) {
	sensed := make([]ecs.EntityID, len(entities))
	copy(sensed, entities)

	p.produce.Lock()
	select {
	case <-p.slot:
	default:
	}
	p.slot <- sensed
	p.produce.Unlock()
}

// DrainIfPending returns the latest sensed set if one arrived since the
// previous drain.
func (p *Perception) DrainIfPending() ([]ecs.EntityID, bool) {
	select {
	case sensed := <-p.slot:
		return sensed, true
	default:
		return nil, false
	}
}

func (p *Perception) Tick(dt float64) {
	if dt > 0 {
		p.sinceSelection += dt
	}
}

func (p *Perception) SinceSelection() float64 {
	return p.sinceSelection
}

// CurrentTarget resolves the held target. A target that died or left the
// arena is dropped.
func (p *Perception) CurrentTarget() (Actor, bool) {
	if !p.hasTarget {
		return nil, false
	}

	actor, ok := p.dir.Resolve(p.target)
	if !ok || !actor.IsAlive() {
		p.log.Debug().Str("target", p.target.String()).Msg("target lost")
		p.hasTarget = false
		return nil, false
	}

	return actor, true
}

// ClearTarget drops the held target; the next sensed set may select at once.
func (p *Perception) ClearTarget() {
	p.hasTarget = false
}

// SelectTarget picks the nearest living hostile among candidates. It runs
// only when no target is held or when the selection interval has elapsed.
// Equal distances keep the first candidate. When nothing is eligible the
// previous target and timer are kept.
func (p *Perception) SelectTarget(candidates []ecs.EntityID) bool {
	if len(candidates) == 0 {
		return false
	}

	if _, held := p.CurrentTarget(); held && p.sinceSelection < p.interval {
		return false
	}

	self, ok := p.dir.Resolve(p.owner)
	if !ok {
		p.log.Warn().Msg("cannot select target: owner not found")
		return false
	}

	origin := self.GetPosition()
	closest := selectionHorizon
	var selected Actor

	for _, id := range candidates {
		candidate, ok := p.dir.Resolve(id)
		if !ok || !candidate.IsAlive() || !p.team.IsHostile(candidate) {
			continue
		}

		if distance := origin.DistanceTo(candidate.GetPosition()); distance < closest {
			closest = distance
			selected = candidate
		}
	}

	if selected == nil {
		return false
	}

	p.target = selected.GetID()
	p.hasTarget = true
	p.sinceSelection = 0

	p.events.Emit(Event{
		Type:   EventTargetSelected,
		Source: p.owner,
		Target: p.target,
	})

	return true
}

// ResolveTargetLocation returns the target position, or the forward vector
// of the owner when no target resolves. The fallback is a direction, not a
// point to aim at.
func (p *Perception) ResolveTargetLocation() vector.Vector2 {
	if target, ok := p.CurrentTarget(); ok {
		return target.GetPosition()
	}

	if self, ok := p.dir.Resolve(p.owner); ok {
		return vector.MakeUnitVector2(self.GetOrientation())
	}

	return ForwardVector
}

var ForwardVector = vector.MakeVector2(1, 0)
