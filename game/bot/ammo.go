package bot

import (
	"github.com/bytearena/ecs"
	"github.com/rs/zerolog"

	"github.com/botarena/botarena/common/utils/number"
)

// Ammo is the magazine of one combatant. The cooldown is a timer counting
// up since the last shot, compared against fireDelay.
type Ammo struct {
	owner ecs.EntityID

	current       int
	max           int // Const
	lowThreshold  int // Const
	addCeiling    int // Const; per AddAmmo call
	fireDelay     float64
	sinceLastFire float64

	events *Dispatcher
	log    zerolog.Logger
}

func NewAmmo(owner ecs.EntityID, specs Specs, events *Dispatcher, log zerolog.Logger) *Ammo {
	defaults := DefaultSpecs()

	max := specs.MaxAmmo
	if max <= 0 {
		max = defaults.MaxAmmo
	}

	ceiling := specs.AmmoAddCeiling
	if ceiling <= 0 {
		ceiling = defaults.AmmoAddCeiling
	}

	return &Ammo{
		owner:        owner,
		current:      number.ClampInt(specs.StartAmmo, 0, max),
		max:          max,
		lowThreshold: specs.LowAmmoThreshold,
		addCeiling:   ceiling,
		fireDelay:    specs.FireDelay,
		events:       events,
		log:          log.With().Str("component", "ammo").Str("entity", owner.String()).Logger(),
	}
}

func (a Ammo) GetAmmo() int {
	return a.current
}

func (a Ammo) GetMaxAmmo() int {
	return a.max
}

func (a Ammo) SinceLastFire() float64 {
	return a.sinceLastFire
}

func (a Ammo) CooldownRemaining() float64 {
	if a.sinceLastFire >= a.fireDelay {
		return 0
	}

	return a.fireDelay - a.sinceLastFire
}

func (a Ammo) CanFire() bool {
	return a.current > 0 && a.CooldownRemaining() <= 0
}

func (a Ammo) LowOnAmmo() bool {
	return a.current <= a.lowThreshold
}

func (a *Ammo) Tick(dt float64) {
	if dt > 0 {
		a.sinceLastFire += dt
	}
}

// Reload refills to amount without the per-call ceiling; used at spawn.
func (a *Ammo) Reload(amount int) {
	a.current = number.ClampInt(amount, 0, a.max)
	a.sinceLastFire = 0
}

// AddAmmo returns the change actually applied to the count.
func (a *Ammo) AddAmmo(n int) int {
	if n <= 0 {
		a.log.Warn().Int("amount", n).Msg("ammo rejected: amount must be positive")
		return 0
	}

	if n > a.addCeiling {
		a.log.Warn().Int("amount", n).Int("ceiling", a.addCeiling).Msg("ammo addition clamped")
		n = a.addCeiling
	}

	previous := a.current
	a.current = number.ClampInt(a.current+n, 0, a.max)

	if a.current != previous {
		a.events.Emit(Event{
			Type:      EventAmmoChanged,
			Source:    a.owner,
			Ammo:      a.current,
			AmmoDelta: a.current - previous,
		})
	}

	return a.current - previous
}

// ConsumeOne spends one round. Callers check CanFire first; an empty
// magazine is refused.
func (a *Ammo) ConsumeOne() bool {
	if a.current <= 0 {
		a.log.Warn().Msg("consume refused: magazine empty")
		return false
	}

	a.current--
	a.sinceLastFire = 0

	a.events.Emit(Event{
		Type:   EventWeaponFired,
		Source: a.owner,
		Ammo:   a.current,
	})

	a.events.Emit(Event{
		Type:      EventAmmoChanged,
		Source:    a.owner,
		Ammo:      a.current,
		AmmoDelta: -1,
	})

	return true
}
