package deathmatch

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bytearena/ecs"
	"github.com/rs/zerolog"

	"github.com/botarena/botarena/common/utils/trigo"
	"github.com/botarena/botarena/common/utils/vector"
	"github.com/botarena/botarena/game/bot"
)

// sensorObserver receives the sensed sets of a scan.
type sensorObserver interface {
	OnSensed(entities []ecs.EntityID)
}

type sensedBody struct {
	id          ecs.EntityID
	position    vector.Vector2
	orientation float64
	alive       bool
	observer    sensorObserver
}

// sensorSnapshot is an immutable copy of the bodies after one step; the
// sensor goroutine never reads the ecs or the physical world.
type sensorSnapshot struct {
	tick   uint32
	bodies []sensedBody
}

type segment [2]vector.Vector2

// Sensor scans the arena on its own goroutine. Each scan hands every
// observer the living bodies in its vision cone that no obstacle hides.
type Sensor struct {
	radius    float64
	halfAngle float64
	obstacles []segment

	snapshots chan sensorSnapshot
	produce   sync.Mutex
	scans     uint64

	log zerolog.Logger
}

// NewSensor takes the full aperture of the vision cone in radians.
func NewSensor(radius float64, aperture float64, log zerolog.Logger) *Sensor {
	return &Sensor{
		radius:    radius,
		halfAngle: aperture / 2,
		snapshots: make(chan sensorSnapshot, 1),
		log:       log.With().Str("component", "sensor").Logger(),
	}
}

// AddObstacle registers the edges of a closed polygon as occluders. Call
// it before Run.
func (s *Sensor) AddObstacle(points []vector.Vector2) {
	for i := range points {
		s.obstacles = append(s.obstacles, segment{points[i], points[(i+1)%len(points)]})
	}
}

// Publish hands a snapshot over to the sensor goroutine, replacing the one
// not scanned yet.
func (s *Sensor) Publish(snap sensorSnapshot) {
	s.produce.Lock()
	defer s.produce.Unlock()

	select {
	case <-s.snapshots:
	default:
	}
	s.snapshots <- snap
}

func (s *Sensor) Run(ctx context.Context) {
	s.log.Debug().Msg("sensor started")

	for {
		select {
		case <-ctx.Done():
			s.log.Debug().Msg("sensor stopped")
			return
		case snap := <-s.snapshots:
			s.scan(snap)
		}
	}
}

func (s *Sensor) Scans() uint64 {
	return atomic.LoadUint64(&s.scans)
}

func (s *Sensor) scan(snap sensorSnapshot) {
	for _, observer := range snap.bodies {
		if !observer.alive || observer.observer == nil {
			continue
		}

		observer.observer.OnSensed(s.visibleFrom(observer, snap.bodies))
	}

	atomic.AddUint64(&s.scans, 1)
}

func (s *Sensor) visibleFrom(observer sensedBody, bodies []sensedBody) []ecs.EntityID {
	visible := make([]ecs.EntityID, 0)

	for _, other := range bodies {
		if other.id == observer.id || !other.alive {
			continue
		}

		if !trigo.InCone(observer.position, observer.orientation, s.radius, s.halfAngle, other.position) {
			continue
		}

		if s.occluded(observer.position, other.position) {
			continue
		}

		visible = append(visible, other.id)
	}

	return visible
}

func (s *Sensor) occluded(from, to vector.Vector2) bool {
	for _, edge := range s.obstacles {
		if trigo.IntersectionWithLineSegmentCheckOnly(from, to, edge[0], edge[1]) {
			return true
		}
	}

	return false
}

func systemPerception(deathmatch *DeathmatchGame) {
	entities := deathmatch.combatantsView.Get()

	snap := sensorSnapshot{
		tick:   deathmatch.tickturn.GetSeq(),
		bodies: make([]sensedBody, 0, len(entities)),
	}

	for _, entityResult := range entities {
		combatant := deathmatch.CastCombatant(entityResult.Components[deathmatch.combatantComponent])
		physicalAspect := deathmatch.CastPhysicalBody(entityResult.Components[deathmatch.physicalBodyComponent])

		snap.bodies = append(snap.bodies, sensedBody{
			id:          combatant.GetID(),
			position:    physicalAspect.GetPosition(),
			orientation: physicalAspect.GetOrientation(),
			alive:       combatant.IsAlive(),
			observer:    combatant.Perception,
		})
	}

	deathmatch.sensor.Publish(snap)
}

var _ sensorObserver = (*bot.Perception)(nil)
