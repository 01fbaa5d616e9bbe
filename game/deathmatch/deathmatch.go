package deathmatch

import (
	"context"
	json "encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/botarena/botarena/common/types"
	"github.com/botarena/botarena/common/utils"
	"github.com/botarena/botarena/common/utils/vector"
	"github.com/botarena/botarena/config"
	"github.com/botarena/botarena/game/bot"
)

// BehaviorFunc runs the behavior rules of one living combatant, after its
// decision step.
type BehaviorFunc func(c *bot.Combatant, board *Blackboard, dt float64)

// DeathmatchGame hosts the combatants of one arena: their bodies, the
// obstacles, the pickups and the services the combatants are wired to.
type DeathmatchGame struct {
	runID    string
	tickturn utils.Tickturn

	cfg         config.ArenaConfig
	specs       bot.Specs
	botSettings config.BotSettings
	templates   map[string]config.ProjectileConfig

	manager *ecs.Manager

	physicalBodyComponent *ecs.Component
	combatantComponent    *ecs.Component
	blackboardComponent   *ecs.Component
	renderComponent       *ecs.Component
	impactorComponent     *ecs.Component
	ttlComponent          *ecs.Component
	pickupComponent       *ecs.Component

	combatantsView *ecs.View
	impactorView   *ecs.View
	ttlView        *ecs.View
	pickupView     *ecs.View

	PhysicalWorld     *box2d.B2World
	collisionListener *collisionListener

	teamCounter  *TeamCounter
	pickupIndex  *PickupIndex
	sensor       *Sensor
	relay        *Relay
	metrics      *arenaMetrics
	destroyQueue []pendingDestroy
	behavior     BehaviorFunc

	log zerolog.Logger
}

// NewDeathmatchGame builds the static arena described by cfg: obstacles,
// crouch zones and pickups. Combatants are added by SpawnTeams or
// NewEntityCombatant.
func NewDeathmatchGame(cfg config.ArenaConfig, runID string) (*DeathmatchGame, error) {
	manager := ecs.NewManager()
	log := utils.Logger("deathmatch").With().Str("run", runID).Logger()

	metrics, err := newArenaMetrics()
	if err != nil {
		return nil, errors.Wrap(err, "cannot create arena metrics")
	}

	game := &DeathmatchGame{
		runID: runID,

		cfg:         cfg,
		specs:       cfg.Bot.Specs(),
		botSettings: cfg.Bot,
		templates:   make(map[string]config.ProjectileConfig, len(cfg.Projectiles)),

		manager: manager,

		physicalBodyComponent: manager.NewComponent(),
		combatantComponent:    manager.NewComponent(),
		blackboardComponent:   manager.NewComponent(),
		renderComponent:       manager.NewComponent(),
		impactorComponent:     manager.NewComponent(),
		ttlComponent:          manager.NewComponent(),
		pickupComponent:       manager.NewComponent(),

		pickupIndex: NewPickupIndex(),
		sensor:      NewSensor(cfg.Bot.VisionRadius, cfg.Bot.VisionAngle, log),
		metrics:     metrics,

		log: log,
	}

	game.teamCounter = NewTeamCounter(metrics, log)
	game.relay = NewRelay(runID, game.Tick, game.teamCounter, metrics, log)

	for _, tpl := range cfg.Projectiles {
		game.templates[tpl.Name] = tpl
	}

	gravity := box2d.MakeB2Vec2(0.0, 0.0) // gravity 0: the simulation is seen from the top
	world := box2d.MakeB2World(gravity)
	game.PhysicalWorld = &world

	game.combatantsView = manager.CreateView(
		game.combatantComponent,
		game.physicalBodyComponent,
		game.blackboardComponent,
	)

	game.impactorView = manager.CreateView(game.impactorComponent)
	game.ttlView = manager.CreateView(game.ttlComponent)
	game.pickupView = manager.CreateView(game.pickupComponent)

	game.physicalBodyComponent.SetDestructor(func(entity *ecs.Entity, data interface{}) {
		physicalAspect := data.(*PhysicalBody)
		game.PhysicalWorld.DestroyBody(physicalAspect.GetBody())
		game.collisionListener.forget(entity.GetID())
	})

	game.pickupComponent.SetDestructor(func(entity *ecs.Entity, data interface{}) {
		game.pickupIndex.Remove(entity.GetID())
	})

	game.collisionListener = newCollisionListener(game)
	game.PhysicalWorld.SetContactListener(game.collisionListener)

	if err := initPhysicalWorld(game); err != nil {
		return nil, err
	}

	for _, pickup := range cfg.Pickups {
		game.NewEntityPickup(vector.MakeVector2(pickup.Position.X, pickup.Position.Y), pickup.Amount)
	}

	return game, nil
}

func toPolygon(points []config.PointConfig) []vector.Vector2 {
	polygon := make([]vector.Vector2, len(points))
	for i, p := range points {
		polygon[i] = vector.MakeVector2(p.X, p.Y)
	}

	return polygon
}

func initPhysicalWorld(deathmatch *DeathmatchGame) error {
	for _, obstacle := range deathmatch.cfg.Obstacles {
		if _, err := deathmatch.NewEntityObstacle(toPolygon(obstacle.Points), obstacle.Name); err != nil {
			return err
		}
	}

	for _, zone := range deathmatch.cfg.CrouchZones {
		if _, err := deathmatch.NewEntityCrouchZone(toPolygon(zone.Points), zone.Name); err != nil {
			return err
		}
	}

	return nil
}

// SpawnTeams creates the combatants of every configured team, laid out on
// a circle of radius spread around the team spawn point.
func (deathmatch *DeathmatchGame) SpawnTeams() []*bot.Combatant {
	combatants := make([]*bot.Combatant, 0)

	for _, teamConfig := range deathmatch.cfg.Teams {
		team, _ := bot.ParseTeam(teamConfig.Team)
		center := vector.MakeVector2(teamConfig.Spawn.X, teamConfig.Spawn.Y)

		for i := 0; i < teamConfig.Count; i++ {
			offset := vector.MakeNullVector2()
			if teamConfig.Count > 1 {
				offset = vector.MakeUnitVector2(2 * math.Pi * float64(i) / float64(teamConfig.Count)).MultScalar(teamConfig.Spread)
			}

			name := team.String() + "-" + strconv.Itoa(i+1)
			combatants = append(combatants, deathmatch.NewEntityCombatant(name, team, center.Add(offset)))
		}
	}

	return combatants
}

func (deathmatch *DeathmatchGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return deathmatch.manager.GetEntityByID(id, tagelements...)
}

// Start runs the sensor until ctx is done.
func (deathmatch *DeathmatchGame) Start(ctx context.Context) {
	go deathmatch.sensor.Run(ctx)
}

func (deathmatch *DeathmatchGame) SetBehavior(behavior BehaviorFunc) {
	deathmatch.behavior = behavior
}

func (deathmatch *DeathmatchGame) Step(dt float64) {
	start := time.Now()
	deathmatch.tickturn = deathmatch.tickturn.Next()

	// Deaths scheduled in previous steps are disposed first, so the frame of
	// the previous step still shows the corpse.
	systemDeath(deathmatch, dt)

	// Shots of the previous step land
	systemImpacts(deathmatch)

	systemDecision(deathmatch, dt)
	systemSteering(deathmatch, dt)
	systemPhysics(deathmatch, dt)
	systemCollisions(deathmatch)
	systemPickups(deathmatch)
	systemTtl(deathmatch)

	// The sensor scans what this step produced, for the next one
	systemPerception(deathmatch)

	deathmatch.log.Debug().
		Uint32("tick", deathmatch.tickturn.GetSeq()).
		Dur("took", time.Since(start)).
		Msg("step")
}

// <bot.Directory>

func (deathmatch *DeathmatchGame) Resolve(id ecs.EntityID) (bot.Actor, bool) {
	entityResult := deathmatch.getEntity(id, deathmatch.combatantComponent)
	if entityResult == nil {
		return nil, false
	}

	return deathmatch.CastCombatant(entityResult.Components[deathmatch.combatantComponent]), true
}

// </bot.Directory>

// Locate returns the position of a combatant or a pickup.
func (deathmatch *DeathmatchGame) Locate(id ecs.EntityID) (vector.Vector2, bool) {
	if actor, ok := deathmatch.Resolve(id); ok {
		return actor.GetPosition(), true
	}

	if pickup, ok := deathmatch.pickupIndex.Get(id); ok {
		return pickup.GetPosition(), true
	}

	return vector.MakeNullVector2(), false
}

func (deathmatch *DeathmatchGame) Combatants() []*bot.Combatant {
	entities := deathmatch.combatantsView.Get()

	res := make([]*bot.Combatant, 0, len(entities))
	for _, entityResult := range entities {
		res = append(res, deathmatch.CastCombatant(entityResult.Components[deathmatch.combatantComponent]))
	}

	return res
}

func (deathmatch *DeathmatchGame) Blackboard(id ecs.EntityID) (*Blackboard, bool) {
	entityResult := deathmatch.getEntity(id, deathmatch.blackboardComponent)
	if entityResult == nil {
		return nil, false
	}

	return deathmatch.CastBlackboard(entityResult.Components[deathmatch.blackboardComponent]), true
}

func (deathmatch *DeathmatchGame) Tick() uint32 {
	return deathmatch.tickturn.GetSeq()
}

func (deathmatch *DeathmatchGame) RunID() string {
	return deathmatch.runID
}

func (deathmatch *DeathmatchGame) TeamCounter() *TeamCounter {
	return deathmatch.teamCounter
}

func (deathmatch *DeathmatchGame) PickupIndex() *PickupIndex {
	return deathmatch.pickupIndex
}

func (deathmatch *DeathmatchGame) Relay() *Relay {
	return deathmatch.relay
}

func (deathmatch *DeathmatchGame) Sensor() *Sensor {
	return deathmatch.sensor
}

func (deathmatch *DeathmatchGame) GetFrameJson() []byte {
	msg := types.FrameMessage{
		RunID:   deathmatch.runID,
		Tick:    deathmatch.tickturn.GetSeq(),
		Objects: []types.FrameObject{},
		Teams:   deathmatch.teamCounter.Snapshot(),
	}

	for _, entityResult := range deathmatch.combatantsView.Get() {
		combatant := deathmatch.CastCombatant(entityResult.Components[deathmatch.combatantComponent])
		physicalAspect := deathmatch.CastPhysicalBody(entityResult.Components[deathmatch.physicalBodyComponent])

		object := types.FrameObject{
			Id:          entityResult.Entity.GetID().String(),
			Type:        "combatant",
			Team:        combatant.GetTeam().String(),
			Position:    physicalAspect.GetPosition(),
			Orientation: physicalAspect.GetOrientation(),
			Health:      combatant.Health.GetHealth(),
			Ammo:        combatant.Ammo.GetAmmo(),
		}

		if !combatant.IsAlive() {
			object.Type = "corpse"
		}

		if target, ok := combatant.Perception.CurrentTarget(); ok {
			object.Target = target.GetID().String()
		}

		if render := deathmatch.getRender(combatant.GetID()); render != nil && render.IsFiring() {
			beamEnd := render.GetBeamEnd()
			object.Firing = true
			object.BeamEnd = &beamEnd
		}

		msg.Objects = append(msg.Objects, object)
	}

	for _, entityResult := range deathmatch.impactorView.Get() {
		impactorAspect := deathmatch.CastImpactor(entityResult.Components[deathmatch.impactorComponent])
		msg.Objects = append(msg.Objects, types.FrameObject{
			Id:       entityResult.Entity.GetID().String(),
			Type:     "projectile",
			Position: impactorAspect.GetImpactPoint(),
		})
	}

	for _, entityResult := range deathmatch.pickupView.Get() {
		pickup := deathmatch.CastPickup(entityResult.Components[deathmatch.pickupComponent])
		msg.Objects = append(msg.Objects, types.FrameObject{
			Id:       entityResult.Entity.GetID().String(),
			Type:     "pickup",
			Position: pickup.GetPosition(),
			Ammo:     pickup.GetAmount(),
		})
	}

	res, _ := json.Marshal(msg)
	return res
}
