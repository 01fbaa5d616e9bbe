package bot_test

import (
	"sync"
	"testing"

	"github.com/bytearena/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botarena/botarena/common/utils/vector"
	"github.com/botarena/botarena/game/bot"
)

func TestDrainIsLatestWins(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())

	_, pending := r.Perception.DrainIfPending()
	assert.False(t, pending)

	r.Perception.OnSensed([]ecs.EntityID{1, 2})
	r.Perception.OnSensed([]ecs.EntityID{3})

	sensed, pending := r.Perception.DrainIfPending()
	assert.True(t, pending)
	assert.Equal(t, []ecs.EntityID{3}, sensed)

	_, pending = r.Perception.DrainIfPending()
	assert.False(t, pending)
}

func TestOnSensedCopiesInput(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())

	input := []ecs.EntityID{4, 5}
	r.Perception.OnSensed(input)
	input[0] = 42

	sensed, _ := r.Perception.DrainIfPending()
	assert.Equal(t, []ecs.EntityID{4, 5}, sensed)
}

func TestConcurrentProducersNeverBlock(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())

	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Perception.OnSensed([]ecs.EntityID{ecs.EntityID(i)})
			}
		}(i)
	}

	drains := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

loop:
	for {
		select {
		case <-done:
			break loop
		default:
			if sensed, ok := r.Perception.DrainIfPending(); ok {
				require.Len(t, sensed, 1)
				drains++
			}
		}
	}

	_, ok := r.Perception.DrainIfPending()
	if ok {
		drains++
	}

	assert.GreaterOrEqual(t, drains, 1)
	_, ok = r.Perception.DrainIfPending()
	assert.False(t, ok)
}

// Reading the selection timer from the decision side must not touch the
// producer lock held by the sensor.
func TestSelectionTimerReadDuringSensing(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 2000; i++ {
			r.Perception.OnSensed([]ecs.EntityID{ecs.EntityID(i)})
		}
	}()

	total := 0.0
	for i := 0; i < 2000; i++ {
		r.Perception.Tick(0.001)
		total += r.Perception.SinceSelection()
	}
	<-done

	assert.Greater(t, total, 0.0)
	assert.InDelta(t, 2.0, r.Perception.SinceSelection(), 1e-6)
}

func TestSelectNearestHostileFirstOnTie(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())

	friendly := a.actor(bot.Team1, 10, 0)
	first := a.actor(bot.Team2, 0, 5)
	second := a.actor(bot.Team3, -5, 0)

	selected := make([]ecs.EntityID, 0)
	r.Events.Subscribe(bot.EventTargetSelected, func(e bot.Event) { selected = append(selected, e.Target) })

	assert.True(t, r.Perception.SelectTarget([]ecs.EntityID{friendly.id, first.id, second.id}))

	target, ok := r.Perception.CurrentTarget()
	require.True(t, ok)
	assert.Equal(t, first.id, target.GetID())
	assert.Equal(t, []ecs.EntityID{first.id}, selected)
}

func TestSelectSkipsDeadUnknownAndFriendly(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())

	dead := a.actor(bot.Team2, 1, 0)
	dead.alive = false
	ally := a.actor(bot.Team1, 2, 0)
	enemy := a.actor(bot.Team2, 50, 0)

	candidates := []ecs.EntityID{r.GetID(), ecs.EntityID(404), dead.id, ally.id, enemy.id}
	assert.True(t, r.Perception.SelectTarget(candidates))

	target, _ := r.Perception.CurrentTarget()
	assert.Equal(t, enemy.id, target.GetID())
}

func TestSelectWithoutEligibleKeepsState(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())
	enemy := a.actor(bot.Team2, 30, 0)
	ally := a.actor(bot.Team1, 3, 0)

	require.True(t, r.Perception.SelectTarget([]ecs.EntityID{enemy.id}))
	r.Perception.Tick(6)

	assert.False(t, r.Perception.SelectTarget([]ecs.EntityID{ally.id}))
	assert.Equal(t, 6.0, r.Perception.SinceSelection())

	target, ok := r.Perception.CurrentTarget()
	require.True(t, ok)
	assert.Equal(t, enemy.id, target.GetID())

	assert.False(t, r.Perception.SelectTarget(nil))
}

func TestReselectionWaitsForInterval(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())
	far := a.actor(bot.Team2, 100, 0)
	near := a.actor(bot.Team2, 10, 0)

	require.True(t, r.Perception.SelectTarget([]ecs.EntityID{far.id}))

	r.Perception.Tick(4.9)
	assert.False(t, r.Perception.SelectTarget([]ecs.EntityID{near.id}))

	r.Perception.Tick(0.2)
	assert.True(t, r.Perception.SelectTarget([]ecs.EntityID{near.id}))
	assert.Equal(t, 0.0, r.Perception.SinceSelection())

	target, _ := r.Perception.CurrentTarget()
	assert.Equal(t, near.id, target.GetID())
}

func TestLostTargetAllowsImmediateReselection(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())
	first := a.actor(bot.Team2, 10, 0)
	second := a.actor(bot.Team2, 20, 0)

	require.True(t, r.Perception.SelectTarget([]ecs.EntityID{first.id}))

	a.dir.Remove(first.id)
	_, ok := r.Perception.CurrentTarget()
	assert.False(t, ok, "destroyed target resolves to lost")

	assert.True(t, r.Perception.SelectTarget([]ecs.EntityID{second.id}))
}

func TestResolveTargetLocation(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())
	r.body.orientation = 0

	assert.True(t, r.Perception.ResolveTargetLocation().Equals(vector.MakeVector2(1, 0)), "forward vector fallback")

	enemy := a.actor(bot.Team2, 7, 3)
	require.True(t, r.Perception.SelectTarget([]ecs.EntityID{enemy.id}))
	assert.True(t, r.Perception.ResolveTargetLocation().Equals(vector.MakeVector2(7, 3)))

	enemy.alive = false
	assert.True(t, r.Perception.ResolveTargetLocation().Equals(vector.MakeVector2(1, 0)))
}

func TestSelectWithMissingOwnerIsHarmless(t *testing.T) {
	a := newArena()
	r := a.spawn(bot.Team1, 0, 0, bot.DefaultSpecs())
	enemy := a.actor(bot.Team2, 7, 3)

	a.dir.Remove(r.GetID())

	assert.False(t, r.Perception.SelectTarget([]ecs.EntityID{enemy.id}))
	assert.Contains(t, a.logs.String(), "owner not found")
}
