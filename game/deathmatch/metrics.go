package deathmatch

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/botarena/botarena/game/deathmatch"

// arenaMetrics are the OpenTelemetry instruments of an arena. Without a
// configured meter provider they are no-ops.
type arenaMetrics struct {
	shots      metric.Int64Counter
	kills      metric.Int64Counter
	selections metric.Int64Counter
	violations metric.Int64Counter
}

func newArenaMetrics() (*arenaMetrics, error) {
	m := otel.Meter(instrumentationName)

	shots, err := m.Int64Counter("botarena.shots",
		metric.WithDescription("Projectiles fired by combatants"))
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	kills, err := m.Int64Counter("botarena.kills",
		metric.WithDescription("Combatants killed"))
	if err != nil {
		return nil, fmt.Errorf("creating kills counter: %w", err)
	}

	selections, err := m.Int64Counter("botarena.target_selections",
		metric.WithDescription("Targets selected by combatants"))
	if err != nil {
		return nil, fmt.Errorf("creating target selections counter: %w", err)
	}

	violations, err := m.Int64Counter("botarena.contract_violations",
		metric.WithDescription("Broken live count contracts"))
	if err != nil {
		return nil, fmt.Errorf("creating contract violations counter: %w", err)
	}

	return &arenaMetrics{
		shots:      shots,
		kills:      kills,
		selections: selections,
		violations: violations,
	}, nil
}

func teamAttr(team string) metric.AddOption {
	return metric.WithAttributes(attribute.String("team", team))
}

func (m *arenaMetrics) shot(team string) {
	if m == nil {
		return
	}
	m.shots.Add(context.Background(), 1, teamAttr(team))
}

func (m *arenaMetrics) kill(team string) {
	if m == nil {
		return
	}
	m.kills.Add(context.Background(), 1, teamAttr(team))
}

func (m *arenaMetrics) selection(team string) {
	if m == nil {
		return
	}
	m.selections.Add(context.Background(), 1, teamAttr(team))
}

func (m *arenaMetrics) violation(team string) {
	if m == nil {
		return
	}
	m.violations.Add(context.Background(), 1, teamAttr(team))
}
