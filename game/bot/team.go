package bot

import (
	"strings"

	"github.com/bytearena/ecs"
)

type Team uint8

const (
	TeamNone Team = iota
	Team1
	Team2
	Team3
)

const DefaultTeam = Team1

var Teams = []Team{Team1, Team2, Team3}

func (t Team) String() string {
	switch t {
	case Team1:
		return "Team1"
	case Team2:
		return "Team2"
	case Team3:
		return "Team3"
	}

	return "None"
}

func (t Team) Valid() bool {
	return t >= Team1 && t <= Team3
}

// ParseTeam accepts "Team1".."Team3", case insensitive.
func ParseTeam(name string) (Team, bool) {
	for _, t := range Teams {
		if strings.EqualFold(t.String(), name) {
			return t, true
		}
	}

	return TeamNone, false
}

type TeamProvider interface {
	GetTeam() Team
}

// TeamMember holds the affiliation of one combatant.
type TeamMember struct {
	owner  ecs.EntityID
	team   Team
	events *Dispatcher
}

func NewTeamMember(owner ecs.EntityID, team Team, events *Dispatcher) *TeamMember {
	if !team.Valid() {
		team = DefaultTeam
	}

	return &TeamMember{
		owner:  owner,
		team:   team,
		events: events,
	}
}

func (tm *TeamMember) GetTeam() Team {
	return tm.team
}

// SetTeam reports whether the team changed. Setting the current team, or an
// invalid one, raises no event.
func (tm *TeamMember) SetTeam(team Team) bool {
	if !team.Valid() || team == tm.team {
		return false
	}

	previous := tm.team
	tm.team = team

	tm.events.Emit(Event{
		Type:         EventTeamChanged,
		Source:       tm.owner,
		Team:         team,
		PreviousTeam: previous,
	})

	return true
}

func (tm *TeamMember) IsFriendly(other TeamProvider) bool {
	if other == nil {
		return false
	}

	return other.GetTeam() == tm.team
}

// IsHostile is the negation of IsFriendly: a missing actor counts as
// hostile, so callers resolve their candidates first.
func (tm *TeamMember) IsHostile(other TeamProvider) bool {
	return !tm.IsFriendly(other)
}
