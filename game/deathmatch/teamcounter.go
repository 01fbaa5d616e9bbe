package deathmatch

import (
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/botarena/botarena/common/assert"
	"github.com/botarena/botarena/game/bot"
)

// TeamCounter is the count of living combatants per team, shared by every
// combatant of the arena.
type TeamCounter struct {
	mu         sync.Mutex
	live       map[bot.Team]int
	violations int

	metrics *arenaMetrics
	log     zerolog.Logger
}

func NewTeamCounter(metrics *arenaMetrics, log zerolog.Logger) *TeamCounter {
	live := make(map[bot.Team]int, len(bot.Teams))
	for _, team := range bot.Teams {
		live[team] = 0
	}

	return &TeamCounter{
		live:    live,
		metrics: metrics,
		log:     log.With().Str("component", "teamcounter").Logger(),
	}
}

func (tc *TeamCounter) IncrementLiveCount(team bot.Team) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if !team.Valid() {
		return tc.violate("unknown team", team)
	}

	tc.live[team]++
	return nil
}

// DecrementLiveCount never takes a count below zero.
func (tc *TeamCounter) DecrementLiveCount(team bot.Team) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if !team.Valid() {
		return tc.violate("unknown team", team)
	}

	if tc.live[team] == 0 {
		return tc.violate("live count underflow", team)
	}

	tc.live[team]--
	return nil
}

// violate must be called with the lock held.
func (tc *TeamCounter) violate(msg string, team bot.Team) error {
	tc.violations++
	tc.metrics.violation(team.String())

	err := assert.Violation(msg, map[string]string{
		"team":  team.String(),
		"count": strconv.Itoa(tc.live[team]),
	})

	tc.log.Error().Err(err).Str("team", team.String()).Msg(msg)
	return err
}

func (tc *TeamCounter) GetLiveCount(team bot.Team) int {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	return tc.live[team]
}

func (tc *TeamCounter) Violations() int {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	return tc.violations
}

// Snapshot returns the live counts keyed by team name.
func (tc *TeamCounter) Snapshot() map[string]int {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	res := make(map[string]int, len(tc.live))
	for team, count := range tc.live {
		res[team.String()] = count
	}

	return res
}
