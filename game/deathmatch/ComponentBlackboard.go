package deathmatch

import (
	"github.com/bytearena/ecs"

	"github.com/botarena/botarena/common/types"
	"github.com/botarena/botarena/common/utils/vector"
)

// Blackboard is the key/value store a combatant shares with its behavior
// rules. The sensor timeline never writes to it but the CLI may read it
// while a step runs, hence the synchronized map.
type Blackboard struct {
	values *types.SyncMap
}

func NewBlackboard() *Blackboard {
	return &Blackboard{
		values: types.NewSyncMap(),
	}
}

func (deathmatch DeathmatchGame) CastBlackboard(data interface{}) *Blackboard {
	return data.(*Blackboard)
}

func (b *Blackboard) SetValue(key string, value interface{}) {
	b.values.Set(key, value)
}

func (b *Blackboard) ClearValue(key string) {
	b.values.Remove(key)
}

func (b *Blackboard) Has(key string) bool {
	return b.values.Has(key)
}

func (b *Blackboard) GetBool(key string) bool {
	v, _ := b.values.GetGeneric(key).(bool)
	return v
}

func (b *Blackboard) GetVector(key string) (vector.Vector2, bool) {
	v, ok := b.values.GetGeneric(key).(vector.Vector2)
	return v, ok
}

func (b *Blackboard) GetEntity(key string) (ecs.EntityID, bool) {
	v, ok := b.values.GetGeneric(key).(ecs.EntityID)
	return v, ok
}

func (b *Blackboard) Snapshot() map[string]interface{} {
	return b.values.Snapshot()
}
