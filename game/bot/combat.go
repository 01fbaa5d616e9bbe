package bot

import (
	"github.com/bytearena/ecs"
	"github.com/rs/zerolog"
)

// CombatGate decides whether the combatant may shoot and performs the shot.
type CombatGate struct {
	owner ecs.EntityID
	dir   Directory
	team  *TeamMember

	health  HealthProvider
	ammo    AmmoProvider
	targets TargetProvider

	sight   Visibility
	spawner Spawner
	mount   WeaponMount

	template       string
	effectDuration float64
	effectActive   bool

	log zerolog.Logger
}

func NewCombatGate(owner ecs.EntityID, specs Specs, team *TeamMember, health HealthProvider, ammo AmmoProvider, targets TargetProvider, c Collaborators) *CombatGate {
	return &CombatGate{
		owner:          owner,
		dir:            c.Directory,
		team:           team,
		health:         health,
		ammo:           ammo,
		targets:        targets,
		sight:          c.Visibility,
		spawner:        c.Spawner,
		mount:          c.Mount,
		template:       specs.ProjectileTemplate,
		effectDuration: specs.FireEffectDuration,
		log:            c.Logger.With().Str("component", "combat").Str("entity", owner.String()).Logger(),
	}
}

func (g *CombatGate) CanFire() bool {
	return g.ammo.CanFire() && g.health.IsAlive() && g.CanSeeTarget()
}

// CanSeeTarget holds when the first solid hit of a ray toward the target is
// the target itself and the target is hostile.
func (g *CombatGate) CanSeeTarget() bool {
	if g.sight == nil {
		g.log.Warn().Msg("no visibility collaborator")
		return false
	}

	target, ok := g.targets.CurrentTarget()
	if !ok {
		return false
	}

	self, ok := g.dir.Resolve(g.owner)
	if !ok {
		g.log.Warn().Msg("cannot trace: owner not found")
		return false
	}

	trace := g.sight.TraceVisibility(self.GetPosition(), target.GetPosition(), g.owner)
	if !trace.Hit || trace.HitEntity != target.GetID() {
		return false
	}

	hit, ok := g.dir.Resolve(trace.HitEntity)
	if !ok {
		return false
	}

	return g.team.IsHostile(hit)
}

// Fire shoots at the current target. The projectile is requested before
// the round is deducted, so ammo observers can rely on the shot existing.
func (g *CombatGate) Fire() bool {
	if _, ok := g.dir.Resolve(g.owner); !ok {
		g.log.Warn().Msg("cannot fire: owner not found")
		return false
	}

	if g.mount == nil {
		g.log.Warn().Msg("cannot fire: no weapon mount")
		return false
	}

	if g.spawner == nil || g.template == "" {
		g.log.Warn().Msg("cannot fire: no projectile template")
		return false
	}

	if _, ok := g.targets.CurrentTarget(); !ok {
		g.log.Debug().Msg("cannot fire: no target")
		return false
	}

	if !g.CanFire() {
		return false
	}

	aim := g.targets.ResolveTargetLocation()

	if _, err := g.spawner.SpawnProjectile(g.template, g.owner, g.mount.MuzzleLocation(), aim); err != nil {
		g.log.Warn().Err(err).Msg("projectile spawn failed")
	}

	g.spawner.PlayFireEffect(g.owner, aim)
	g.effectActive = true

	g.ammo.ConsumeOne()

	return true
}

// Tick stops the fire effect once it has lasted effectDuration. Run it
// after the ammo timer has advanced.
func (g *CombatGate) Tick(dt float64) {
	if !g.effectActive || g.spawner == nil {
		return
	}

	if g.ammo.SinceLastFire() >= g.effectDuration {
		g.spawner.StopFireEffect(g.owner)
		g.effectActive = false
	}
}
