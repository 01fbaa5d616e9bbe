package behavior

import (
	"math/rand"
	"sort"

	"github.com/bytearena/ecs"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/botarena/botarena/common/utils/vector"
	"github.com/botarena/botarena/config"
	"github.com/botarena/botarena/game/bot"
)

// Board is the blackboard of one combatant as the rules see it.
type Board interface {
	bot.Blackboard
	Has(key string) bool
	GetBool(key string) bool
	GetVector(key string) (vector.Vector2, bool)
	GetEntity(key string) (ecs.EntityID, bool)
}

// Locator gives the position of an entity referenced by a blackboard.
type Locator interface {
	Locate(id ecs.EntityID) (vector.Vector2, bool)
}

// Env is what rule conditions are evaluated against.
type Env struct {
	ShouldRetreat bool
	CollectAmmo   bool
	HasTarget     bool
	HasAmmoBox    bool
	Health        float64
	MaxHealth     float64
	Ammo          int
	Team          string
}

// Rule binds a condition to a task. Rules are evaluated by decreasing
// priority; the first whose condition holds and whose task succeeds wins.
type Rule struct {
	Name         string
	Priority     int
	ConditionSrc string
	Task         string
	program      *vm.Program
}

// Scheduler drives the movement of combatants from their blackboards.
type Scheduler struct {
	rules    []*Rule
	tasks    map[string]Task
	settings config.BehaviorSettings
	bounds   vector.Vector2
	margin   float64
	arena    Locator
	rnd      *rand.Rand

	active map[ecs.EntityID]string

	log zerolog.Logger
}

// NewScheduler compiles the rules. Combatant destinations are kept within
// [margin, bounds-margin].
func NewScheduler(settings config.BehaviorSettings, bounds vector.Vector2, margin float64, arena Locator, seed int64, log zerolog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		tasks:    defaultTasks(),
		settings: settings,
		bounds:   bounds,
		margin:   margin,
		arena:    arena,
		rnd:      rand.New(rand.NewSource(seed)),
		active:   make(map[ecs.EntityID]string),
		log:      log.With().Str("component", "behavior").Logger(),
	}

	rules := make([]*Rule, 0, len(settings.Rules))
	for _, rc := range settings.Rules {
		if _, ok := s.tasks[rc.Task]; !ok {
			return nil, errors.Errorf("rule %q: unknown task %q", rc.Name, rc.Task)
		}

		prog, err := expr.Compile(rc.Condition, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, errors.Wrapf(err, "compile rule %q", rc.Name)
		}

		rules = append(rules, &Rule{
			Name:         rc.Name,
			Priority:     rc.Priority,
			ConditionSrc: rc.Condition,
			Task:         rc.Task,
			program:      prog,
		})
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})

	s.rules = rules
	return s, nil
}

func (s *Scheduler) Rules() []*Rule {
	return s.rules
}

// Active returns the task a combatant ran last.
func (s *Scheduler) Active(id ecs.EntityID) string {
	return s.active[id]
}

func newEnv(c *bot.Combatant, board Board) Env {
	return Env{
		ShouldRetreat: board.GetBool(bot.KeyShouldRetreat),
		CollectAmmo:   board.GetBool(bot.KeyCollectAmmo),
		HasTarget:     board.Has(bot.KeySelectedTarget),
		HasAmmoBox:    board.Has(bot.KeyAmmoBox),
		Health:        c.Health.GetHealth(),
		MaxHealth:     c.Health.GetMaxHealth(),
		Ammo:          c.Ammo.GetAmmo(),
		Team:          c.GetTeam().String(),
	}
}

// Tick runs the services, then the first applicable rule. It returns the
// name of the task that ran, empty when none did.
func (s *Scheduler) Tick(c *bot.Combatant, board Board, dt float64) string {
	if !c.IsAlive() {
		delete(s.active, c.GetID())
		return ""
	}

	checkForAmmo(c, board)

	env := newEnv(c, board)

	for _, r := range s.rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			s.log.Warn().Err(err).Str("rule", r.Name).Msg("rule condition error")
			continue
		}

		if match, ok := result.(bool); !ok || !match {
			continue
		}

		if !s.tasks[r.Task](s, c, board) {
			continue
		}

		if previous := s.active[c.GetID()]; previous != r.Task {
			s.log.Debug().
				Str("combatant", c.GetName()).
				Str("rule", r.Name).
				Str("from", previous).
				Str("to", r.Task).
				Msg("task changed")
			s.active[c.GetID()] = r.Task
		}

		return r.Task
	}

	return ""
}

func (s *Scheduler) clamp(p vector.Vector2) vector.Vector2 {
	margin := vector.MakeVector2(s.margin, s.margin)
	return p.ClampToRect(margin, s.bounds.Sub(margin))
}
