package bot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/botarena/botarena/game/bot"
)

func TestSetTeamEmitsOnlyOnChange(t *testing.T) {
	events := bot.NewDispatcher()
	received := make([]bot.Event, 0)
	events.Subscribe(bot.EventTeamChanged, func(e bot.Event) {
		received = append(received, e)
	})

	member := bot.NewTeamMember(1, bot.Team1, events)

	assert.False(t, member.SetTeam(bot.Team1))
	assert.Empty(t, received)

	assert.True(t, member.SetTeam(bot.Team2))
	assert.Equal(t, bot.Team2, member.GetTeam())
	if assert.Len(t, received, 1) {
		assert.Equal(t, bot.Team2, received[0].Team)
		assert.Equal(t, bot.Team1, received[0].PreviousTeam)
	}

	assert.False(t, member.SetTeam(bot.Team2))
	assert.False(t, member.SetTeam(bot.TeamNone))
	assert.Len(t, received, 1)
}

func TestInvalidTeamFallsBackToDefault(t *testing.T) {
	member := bot.NewTeamMember(1, bot.Team(42), nil)
	assert.Equal(t, bot.DefaultTeam, member.GetTeam())
}

func TestFriendlyAndHostile(t *testing.T) {
	member := bot.NewTeamMember(1, bot.Team1, nil)

	ally := &fakeActor{team: bot.Team1}
	enemy := &fakeActor{team: bot.Team3}

	assert.True(t, member.IsFriendly(ally))
	assert.False(t, member.IsHostile(ally))

	assert.False(t, member.IsFriendly(enemy))
	assert.True(t, member.IsHostile(enemy))

	assert.False(t, member.IsFriendly(nil))
	assert.True(t, member.IsHostile(nil), "a missing actor is classified hostile")
}

func TestParseTeam(t *testing.T) {
	team, ok := bot.ParseTeam("team2")
	assert.True(t, ok)
	assert.Equal(t, bot.Team2, team)

	_, ok = bot.ParseTeam("blue")
	assert.False(t, ok)
}

func TestDispatcherMaskAndUnsubscribe(t *testing.T) {
	events := bot.NewDispatcher()

	deaths, all := 0, 0
	events.Subscribe(bot.EventDeath, func(bot.Event) { deaths++ })
	sub := events.Subscribe(bot.EventAll, func(bot.Event) { all++ })

	events.Emit(bot.Event{Type: bot.EventDeath})
	events.Emit(bot.Event{Type: bot.EventAmmoChanged})

	events.Unsubscribe(sub)
	events.Emit(bot.Event{Type: bot.EventDeath})

	assert.Equal(t, 2, deaths)
	assert.Equal(t, 2, all)
}
