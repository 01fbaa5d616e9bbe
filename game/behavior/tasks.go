package behavior

import (
	"math"

	"github.com/botarena/botarena/common/utils/vector"
	"github.com/botarena/botarena/game/bot"
)

// Task moves a combatant and reports whether it could run.
type Task func(s *Scheduler, c *bot.Combatant, board Board) bool

const (
	TaskRetreat     = "Retreat"
	TaskCollectAmmo = "CollectAmmo"
	TaskShootTarget = "ShootTarget"
	TaskPatrol      = "Patrol"
)

// A patrol destination closer than this is replaced.
const patrolArrival = 5.0

func defaultTasks() map[string]Task {
	return map[string]Task{
		TaskRetreat:     retreat,
		TaskCollectAmmo: collectAmmo,
		TaskShootTarget: shootTarget,
		TaskPatrol:      patrol,
	}
}

func (s *Scheduler) locateKey(board Board, key string) (vector.Vector2, bool) {
	id, ok := board.GetEntity(key)
	if !ok || s.arena == nil {
		return vector.MakeNullVector2(), false
	}

	return s.arena.Locate(id)
}

// retreat moves away from the selected target.
func retreat(s *Scheduler, c *bot.Combatant, board Board) bool {
	target, ok := s.locateKey(board, bot.KeySelectedTarget)
	if !ok {
		return false
	}

	self := c.GetPosition()
	destination := self.Toward(target, -s.settings.RetreatStep)
	if self.Equals(target) {
		destination = self.Add(vector.MakeUnitVector2(c.GetOrientation() + math.Pi).MultScalar(s.settings.RetreatStep))
	}

	c.SetMoveToLocation(s.clamp(destination))
	return true
}

// collectAmmo moves to the ammo box published by the decision loop.
func collectAmmo(s *Scheduler, c *bot.Combatant, board Board) bool {
	box, ok := s.locateKey(board, bot.KeyAmmoBox)
	if !ok {
		return false
	}

	c.SetMoveToLocation(box)
	return true
}

// shootTarget closes in to engagement range and holds there; aiming and
// firing stay with the decision loop.
func shootTarget(s *Scheduler, c *bot.Combatant, board Board) bool {
	target, ok := s.locateKey(board, bot.KeySelectedTarget)
	if !ok {
		return false
	}

	self := c.GetPosition()
	distance := self.DistanceTo(target)

	if distance <= s.settings.EngageRange {
		c.SetMoveToLocation(self)
		return true
	}

	c.SetMoveToLocation(self.Toward(target, distance-s.settings.EngageRange))
	return true
}

// patrol wanders to random points around the combatant.
func patrol(s *Scheduler, c *bot.Combatant, board Board) bool {
	self := c.GetPosition()

	if current, ok := board.GetVector(bot.KeyMoveLocation); ok && s.Active(c.GetID()) == TaskPatrol {
		if current.DistanceTo(self) > patrolArrival {
			return true
		}
	}

	heading := s.rnd.Float64() * 2 * math.Pi
	step := s.settings.PatrolStep * (0.5 + s.rnd.Float64()/2)

	c.SetMoveToLocation(s.clamp(self.Add(vector.MakeUnitVector2(heading).MultScalar(step))))
	return true
}
