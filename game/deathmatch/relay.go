package deathmatch

import (
	"time"

	"github.com/bitly/go-notify"
	"github.com/rs/zerolog"

	"github.com/botarena/botarena/game/bot"
)

// ArenaEvent is what the relay posts on the process-wide topics.
type ArenaEvent struct {
	RunID string
	Tick  uint32
	Name  string
	bot.Event
}

// Relay republishes combatant events on go-notify topics
// ("botarena:death:<run id>", ...) and keeps the arena-wide bookkeeping
// that follows from them.
type Relay struct {
	runID   string
	tick    func() uint32
	counter *TeamCounter
	metrics *arenaMetrics
	log     zerolog.Logger
}

func NewRelay(runID string, tick func() uint32, counter *TeamCounter, metrics *arenaMetrics, log zerolog.Logger) *Relay {
	return &Relay{
		runID:   runID,
		tick:    tick,
		counter: counter,
		metrics: metrics,
		log:     log.With().Str("component", "relay").Logger(),
	}
}

// Topic returns the go-notify event name of one event type for this run.
func (r *Relay) Topic(t bot.EventType) string {
	return "botarena:" + t.String() + ":" + r.runID
}

func (r *Relay) Attach(c *bot.Combatant) bot.Subscription {
	return c.Events.Subscribe(bot.EventAll, func(e bot.Event) {
		switch e.Type {
		case bot.EventTeamChanged:
			r.moveLiveCount(c, e)
		case bot.EventWeaponFired:
			r.metrics.shot(c.GetTeam().String())
		case bot.EventDeath:
			r.metrics.kill(e.Team.String())
			r.log.Info().
				Str("victim", c.GetName()).
				Str("team", e.Team.String()).
				Str("instigator", e.Instigator.String()).
				Msg("combatant killed")
		case bot.EventTargetSelected:
			r.metrics.selection(c.GetTeam().String())
		}

		switch e.Type {
		case bot.EventDeath, bot.EventWeaponFired, bot.EventSpawned, bot.EventTeamChanged, bot.EventTargetSelected:
			notify.PostTimeout(r.Topic(e.Type), ArenaEvent{
				RunID: r.runID,
				Tick:  r.tick(),
				Name:  c.GetName(),
				Event: e,
			}, time.Millisecond)
		}
	})
}

// moveLiveCount transfers a living combatant from its previous team count
// to the new one.
func (r *Relay) moveLiveCount(c *bot.Combatant, e bot.Event) {
	if !c.IsAlive() {
		return
	}

	if err := r.counter.DecrementLiveCount(e.PreviousTeam); err != nil {
		r.log.Error().Err(err).Str("combatant", c.GetName()).Msg("live count out of sync")
	}

	if err := r.counter.IncrementLiveCount(e.Team); err != nil {
		r.log.Error().Err(err).Str("combatant", c.GetName()).Msg("live count out of sync")
	}
}
