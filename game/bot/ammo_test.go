package bot_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/botarena/botarena/game/bot"
)

func newAmmo(start int) (*bot.Ammo, *[]bot.Event) {
	specs := bot.DefaultSpecs()
	specs.StartAmmo = start

	events := bot.NewDispatcher()
	received := make([]bot.Event, 0)
	events.Subscribe(bot.EventAll, func(e bot.Event) { received = append(received, e) })

	return bot.NewAmmo(1, specs, events, zerolog.Nop()), &received
}

func TestAddAmmoClampsToCapacity(t *testing.T) {
	ammo, events := newAmmo(980)

	assert.Equal(t, 19, ammo.AddAmmo(100))
	assert.Equal(t, 999, ammo.GetAmmo())

	if assert.Len(t, *events, 1) {
		assert.Equal(t, bot.EventAmmoChanged, (*events)[0].Type)
		assert.Equal(t, 19, (*events)[0].AmmoDelta)
		assert.Equal(t, 999, (*events)[0].Ammo)
	}

	assert.Equal(t, 0, ammo.AddAmmo(10), "full magazine")
	assert.Len(t, *events, 1, "no event without a change")
}

func TestAddAmmoAccumulates(t *testing.T) {
	ammo, _ := newAmmo(0)

	ammo.AddAmmo(50)
	assert.Equal(t, 50, ammo.GetAmmo())

	ammo.AddAmmo(50)
	assert.Equal(t, 100, ammo.GetAmmo())

	assert.Equal(t, 100, ammo.AddAmmo(500), "per call ceiling")
	assert.Equal(t, 200, ammo.GetAmmo())
}

func TestAddAmmoRejectsNonPositive(t *testing.T) {
	ammo, events := newAmmo(10)

	assert.Equal(t, 0, ammo.AddAmmo(0))
	assert.Equal(t, 0, ammo.AddAmmo(-4))
	assert.Equal(t, 10, ammo.GetAmmo())
	assert.Empty(t, *events)
}

func TestCanFireNeedsAmmoAndCooldown(t *testing.T) {
	ammo, _ := newAmmo(1)

	assert.False(t, ammo.CanFire(), "cooling down at spawn")
	assert.InDelta(t, 0.35, ammo.CooldownRemaining(), 1e-9)

	ammo.Tick(0.2)
	assert.False(t, ammo.CanFire())

	ammo.Tick(0.2)
	assert.True(t, ammo.CanFire())

	assert.True(t, ammo.ConsumeOne())
	assert.Equal(t, 0, ammo.GetAmmo())

	ammo.Tick(10)
	assert.False(t, ammo.CanFire(), "empty magazine")
	assert.False(t, ammo.ConsumeOne())
}

func TestConsumeEmitsFiredThenAmmoChanged(t *testing.T) {
	ammo, events := newAmmo(3)

	ammo.ConsumeOne()

	if assert.Len(t, *events, 2) {
		assert.Equal(t, bot.EventWeaponFired, (*events)[0].Type)
		assert.Equal(t, bot.EventAmmoChanged, (*events)[1].Type)
		assert.Equal(t, 2, (*events)[1].Ammo)
		assert.Equal(t, -1, (*events)[1].AmmoDelta)
	}
	assert.Equal(t, 0.0, ammo.SinceLastFire())
}

func TestLowOnAmmo(t *testing.T) {
	ammo, _ := newAmmo(6)
	assert.False(t, ammo.LowOnAmmo())

	ammo.Reload(5)
	assert.True(t, ammo.LowOnAmmo())
}

func TestAmmoStaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ammo, _ := newAmmo(rapid.IntRange(0, 999).Draw(rt, "start"))

		for _, n := range rapid.SliceOfN(rapid.IntRange(-200, 300), 0, 30).Draw(rt, "additions") {
			before := ammo.GetAmmo()
			applied := ammo.AddAmmo(n)

			if applied < 0 || applied > 100 || ammo.GetAmmo() != before+applied {
				rt.Fatalf("applied %d from %d", applied, before)
			}
			if ammo.GetAmmo() < 0 || ammo.GetAmmo() > 999 {
				rt.Fatalf("out of bounds: %d", ammo.GetAmmo())
			}
		}
	})
}
