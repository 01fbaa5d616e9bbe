package bot

import (
	"sync"

	"github.com/bytearena/ecs"
)

type EventType uint16

// Prefer use lightweight representation of constants for the future transport
const (
	EventTeamChanged EventType = 1 << iota
	EventHealthChanged
	EventRetreat
	EventDeath
	EventAmmoChanged
	EventWeaponFired
	EventTargetSelected
	EventSpawned

	EventAll EventType = 0xffff
)

func (t EventType) String() string {
	switch t {
	case EventTeamChanged:
		return "team-changed"
	case EventHealthChanged:
		return "health-changed"
	case EventRetreat:
		return "retreat"
	case EventDeath:
		return "death"
	case EventAmmoChanged:
		return "ammo-changed"
	case EventWeaponFired:
		return "weapon-fired"
	case EventTargetSelected:
		return "target-selected"
	case EventSpawned:
		return "spawned"
	}

	return "unknown"
}

// Event is a notification raised by one combatant. Only the fields relevant
// to the type are set.
type Event struct {
	Type   EventType
	Source ecs.EntityID

	Team         Team
	PreviousTeam Team

	Health      float64
	HealthDelta float64
	Instigator  ecs.EntityID

	Ammo      int
	AmmoDelta int

	Target     ecs.EntityID
	Projectile ecs.EntityID
}

type Listener func(Event)

type Subscription uint32

type subscriber struct {
	id       Subscription
	mask     EventType
	listener Listener
}

// Dispatcher is the observer list of a combatant. Listeners run
// synchronously on the emitting timeline, in subscription order.
type Dispatcher struct {
	lock        sync.RWMutex
	nextID      Subscription
	subscribers []subscriber
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers l for every event type set in mask.
func (d *Dispatcher) Subscribe(mask EventType, l Listener) Subscription {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.nextID++
	d.subscribers = append(d.subscribers, subscriber{
		id:       d.nextID,
		mask:     mask,
		listener: l,
	})

	return d.nextID
}

func (d *Dispatcher) Unsubscribe(s Subscription) {
	d.lock.Lock()
	defer d.lock.Unlock()

	for i, sub := range d.subscribers {
		if sub.id == s {
			d.subscribers = append(d.subscribers[:i:i], d.subscribers[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Emit(e Event) {
	if d == nil {
		return
	}

	d.lock.RLock()
	subscribers := d.subscribers
	d.lock.RUnlock()

	for _, sub := range subscribers {
		if sub.mask&e.Type != 0 {
			sub.listener(e)
		}
	}
}
