package bot_test

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/bytearena/ecs"
	"github.com/rs/zerolog"

	"github.com/botarena/botarena/common/utils/vector"
	"github.com/botarena/botarena/game/bot"
)

type fakeActor struct {
	id          ecs.EntityID
	team        bot.Team
	position    vector.Vector2
	orientation float64
	alive       bool
}

func (a *fakeActor) GetID() ecs.EntityID         { return a.id }
func (a *fakeActor) GetTeam() bot.Team           { return a.team }
func (a *fakeActor) GetPosition() vector.Vector2 { return a.position }
func (a *fakeActor) GetOrientation() float64     { return a.orientation }
func (a *fakeActor) IsAlive() bool               { return a.alive }

type fakeDirectory struct {
	lock   sync.RWMutex
	actors map[ecs.EntityID]bot.Actor
}

func newDirectory() *fakeDirectory {
	return &fakeDirectory{actors: map[ecs.EntityID]bot.Actor{}}
}

func (d *fakeDirectory) Add(a bot.Actor) {
	d.lock.Lock()
	d.actors[a.GetID()] = a
	d.lock.Unlock()
}

func (d *fakeDirectory) Remove(id ecs.EntityID) {
	d.lock.Lock()
	delete(d.actors, id)
	d.lock.Unlock()
}

func (d *fakeDirectory) Resolve(id ecs.EntityID) (bot.Actor, bool) {
	d.lock.RLock()
	defer d.lock.RUnlock()

	a, ok := d.actors[id]
	return a, ok
}

type fakeBlackboard struct {
	values map[string]interface{}
}

func newBlackboard() *fakeBlackboard {
	return &fakeBlackboard{values: map[string]interface{}{}}
}

func (b *fakeBlackboard) SetValue(key string, value interface{}) { b.values[key] = value }
func (b *fakeBlackboard) ClearValue(key string)                  { delete(b.values, key) }

type fakeCounter struct {
	counts     map[bot.Team]int
	decrements int
}

func newCounter() *fakeCounter {
	return &fakeCounter{counts: map[bot.Team]int{}}
}

func (c *fakeCounter) IncrementLiveCount(team bot.Team) error {
	c.counts[team]++
	return nil
}

func (c *fakeCounter) DecrementLiveCount(team bot.Team) error {
	c.decrements++
	if c.counts[team] == 0 {
		return fmt.Errorf("underflow for %s", team)
	}
	c.counts[team]--
	return nil
}

type fakeDestroyer struct {
	scheduled []ecs.EntityID
	delays    []float64
}

func (d *fakeDestroyer) ScheduleDestroy(id ecs.EntityID, delay float64) {
	d.scheduled = append(d.scheduled, id)
	d.delays = append(d.delays, delay)
}

type fakePhysics struct {
	ragdolls   int
	traversals int
}

func (p *fakePhysics) EnableRagdoll()  { p.ragdolls++ }
func (p *fakePhysics) AllowTraversal() { p.traversals++ }

type fakeMovement struct {
	crouching   bool
	facings     []float64
	destination vector.Vector2
}

func (m *fakeMovement) SetFacing(target float64, maxRate float64, dt float64) {
	m.facings = append(m.facings, target)
}
func (m *fakeMovement) SetDesiredMoveLocation(p vector.Vector2) { m.destination = p }
func (m *fakeMovement) NotifyCrouchZone(in bool)                { m.crouching = in }
func (m *fakeMovement) IsCrouching() bool                      { return m.crouching }

// fakeSight returns the first actor of the directory standing on the segment
// end, unless a wall was declared.
type fakeSight struct {
	dir   *fakeDirectory
	wall  bool
	miss  bool
	calls int
}

func (s *fakeSight) TraceVisibility(from, to vector.Vector2, ignore ecs.EntityID) bot.TraceResult {
	s.calls++
	if s.wall {
		return bot.TraceResult{Hit: true, IsBlocked: true}
	}

	if s.miss {
		return bot.TraceResult{}
	}

	s.dir.lock.RLock()
	defer s.dir.lock.RUnlock()

	for id, a := range s.dir.actors {
		if id != ignore && a.GetPosition().Equals(to) {
			return bot.TraceResult{Hit: true, HitEntity: id, IsBlocked: true}
		}
	}

	return bot.TraceResult{}
}

type spawnRecord struct {
	template string
	origin   vector.Vector2
	aim      vector.Vector2
}

// fakeSpawner records the calls in order with the ammo observed at the time.
type fakeSpawner struct {
	journal  *[]string
	spawns   []spawnRecord
	effects  int
	stops    int
	failWith error
}

func (s *fakeSpawner) SpawnProjectile(template string, owner ecs.EntityID, origin, aim vector.Vector2) (ecs.EntityID, error) {
	s.spawns = append(s.spawns, spawnRecord{template, origin, aim})
	if s.journal != nil {
		*s.journal = append(*s.journal, "spawn")
	}
	return ecs.EntityID(999), s.failWith
}

func (s *fakeSpawner) PlayFireEffect(owner ecs.EntityID, end vector.Vector2) {
	s.effects++
	if s.journal != nil {
		*s.journal = append(*s.journal, "effect")
	}
}

func (s *fakeSpawner) StopFireEffect(owner ecs.EntityID) { s.stops++ }

type fakePickups struct {
	pickups []bot.Pickup
}

func (p *fakePickups) SweepNearby(origin vector.Vector2, radius float64) []bot.Pickup {
	res := make([]bot.Pickup, 0)
	for _, pickup := range p.pickups {
		if origin.DistanceTo(pickup.Position) <= radius {
			res = append(res, pickup)
		}
	}
	return res
}

type body struct {
	position    vector.Vector2
	orientation float64
}

func (b *body) GetPosition() vector.Vector2 { return b.position }
func (b *body) GetOrientation() float64     { return b.orientation }
func (b *body) MuzzleLocation() vector.Vector2 {
	return b.position.Add(vector.MakeUnitVector2(b.orientation).MultScalar(0.5))
}

// arena wires combatants to shared fakes.
type arena struct {
	dir        *fakeDirectory
	counter    *fakeCounter
	destroyer  *fakeDestroyer
	sight      *fakeSight
	logs       *bytes.Buffer
	journal    []string
	nextEntity ecs.EntityID
}

func newArena() *arena {
	dir := newDirectory()
	return &arena{
		dir:        dir,
		counter:    newCounter(),
		destroyer:  &fakeDestroyer{},
		sight:      &fakeSight{dir: dir},
		logs:       &bytes.Buffer{},
		nextEntity: 1,
	}
}

type rig struct {
	*bot.Combatant
	body       *body
	movement   *fakeMovement
	physics    *fakePhysics
	spawner    *fakeSpawner
	blackboard *fakeBlackboard
	pickups    *fakePickups
}

func (a *arena) spawn(team bot.Team, x, y float64, specs bot.Specs) *rig {
	id := a.nextEntity
	a.nextEntity++

	r := &rig{
		body:       &body{position: vector.MakeVector2(x, y)},
		movement:   &fakeMovement{},
		physics:    &fakePhysics{},
		spawner:    &fakeSpawner{journal: &a.journal},
		blackboard: newBlackboard(),
		pickups:    &fakePickups{},
	}

	r.Combatant = bot.NewCombatant(id, fmt.Sprintf("bot-%d", id), team, specs, bot.Collaborators{
		Directory:  a.dir,
		Body:       r.body,
		Movement:   r.movement,
		Physics:    r.physics,
		Mount:      r.body,
		Visibility: a.sight,
		Spawner:    r.spawner,
		Counter:    a.counter,
		Destroyer:  a.destroyer,
		Blackboard: r.blackboard,
		Pickups:    r.pickups,
		Logger:     zerolog.New(a.logs),
	})

	a.dir.Add(r.Combatant)
	r.Spawn()

	return r
}

func (a *arena) actor(team bot.Team, x, y float64) *fakeActor {
	id := a.nextEntity
	a.nextEntity++

	actor := &fakeActor{id: id, team: team, position: vector.MakeVector2(x, y), alive: true}
	a.dir.Add(actor)

	return actor
}

// readySpecs fire at once once the first Tick elapsed.
func readySpecs() bot.Specs {
	specs := bot.DefaultSpecs()
	specs.FireDelay = 0
	return specs
}
