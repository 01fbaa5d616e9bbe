package bot

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Spawner,Movement,Visibility

import (
	"github.com/bytearena/ecs"

	"github.com/botarena/botarena/common/utils/vector"
)

// Actor is what a combatant exposes to the other combatants of the arena.
type Actor interface {
	TeamProvider
	GetID() ecs.EntityID
	GetPosition() vector.Vector2
	GetOrientation() float64
	IsAlive() bool
}

// Directory resolves entity handles. A handle whose entity was disposed
// resolves to false, never to a stale actor.
type Directory interface {
	Resolve(id ecs.EntityID) (Actor, bool)
}

// Locator gives the physical placement of the owning combatant.
type Locator interface {
	GetPosition() vector.Vector2
	GetOrientation() float64
}

type TraceResult struct {
	Hit       bool
	HitEntity ecs.EntityID
	IsBlocked bool
}

// Visibility traces a ray from one point to another, ignoring one entity.
type Visibility interface {
	TraceVisibility(from, to vector.Vector2, ignore ecs.EntityID) TraceResult
}

// Pickup is a collectible found by a nearby sweep.
type Pickup struct {
	ID       ecs.EntityID
	Position vector.Vector2
	Resupply bool
}

type PickupScanner interface {
	SweepNearby(origin vector.Vector2, radius float64) []Pickup
}

type Movement interface {
	SetFacing(targetRotation float64, maxRate float64, dt float64)
	SetDesiredMoveLocation(point vector.Vector2)
	NotifyCrouchZone(inZone bool)
	IsCrouching() bool
}

// Physics receives the corpse requests of death handling.
type Physics interface {
	EnableRagdoll()
	AllowTraversal()
}

// WeaponMount gives the muzzle position of the weapon.
type WeaponMount interface {
	MuzzleLocation() vector.Vector2
}

type Spawner interface {
	SpawnProjectile(template string, owner ecs.EntityID, origin, aimPoint vector.Vector2) (ecs.EntityID, error)
	PlayFireEffect(owner ecs.EntityID, beamEndPoint vector.Vector2)
	StopFireEffect(owner ecs.EntityID)
}

// LiveCounter is the process-wide count of living combatants per team.
type LiveCounter interface {
	IncrementLiveCount(team Team) error
	DecrementLiveCount(team Team) error
}

type Destroyer interface {
	ScheduleDestroy(id ecs.EntityID, delay float64)
}

type Blackboard interface {
	SetValue(key string, value interface{})
	ClearValue(key string)
}

// Capability interfaces consumed by the Combat Gate.

type HealthProvider interface {
	IsAlive() bool
}

type AmmoProvider interface {
	CanFire() bool
	ConsumeOne() bool
	SinceLastFire() float64
}

type TargetProvider interface {
	CurrentTarget() (Actor, bool)
	ResolveTargetLocation() vector.Vector2
}
