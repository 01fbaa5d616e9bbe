package deathmatch

import (
	"sort"
	"sync"

	"github.com/bytearena/ecs"
	"github.com/dhconnelly/rtreego"

	"github.com/botarena/botarena/common/utils/vector"
	"github.com/botarena/botarena/game/bot"
)

// PickupIndex is the spatial index of the pickups of an arena.
type PickupIndex struct {
	mu   sync.RWMutex
	tree *rtreego.Rtree
	byID map[ecs.EntityID]*Pickup
}

func NewPickupIndex() *PickupIndex {
	return &PickupIndex{
		tree: rtreego.NewTree(2, 25, 50),
		byID: make(map[ecs.EntityID]*Pickup),
	}
}

func (idx *PickupIndex) Insert(p *Pickup) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.tree.Insert(p)
	idx.byID[p.id] = p
}

func (idx *PickupIndex) Remove(id ecs.EntityID) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	p, ok := idx.byID[id]
	if !ok {
		return false
	}

	delete(idx.byID, id)
	return idx.tree.Delete(p)
}

func (idx *PickupIndex) Get(id ecs.EntityID) (*Pickup, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	p, ok := idx.byID[id]
	return p, ok
}

func (idx *PickupIndex) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.byID)
}

// Within returns the pickups whose center lies within radius of origin,
// nearest first.
func (idx *PickupIndex) Within(origin vector.Vector2, radius float64) []*Pickup {
	if !(radius > 0) {
		return nil
	}

	bb, err := rtreego.NewRect(
		rtreego.Point{origin.GetX() - radius, origin.GetY() - radius},
		[]float64{radius * 2, radius * 2},
	)
	if err != nil {
		return nil
	}

	idx.mu.RLock()
	candidates := idx.tree.SearchIntersect(bb)
	idx.mu.RUnlock()

	res := make([]*Pickup, 0, len(candidates))
	for _, candidate := range candidates {
		p := candidate.(*Pickup)
		if p.position.DistanceTo(origin) <= radius {
			res = append(res, p)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].position.DistanceTo(origin) < res[j].position.DistanceTo(origin)
	})

	return res
}

// SweepNearby implements bot.PickupScanner.
func (idx *PickupIndex) SweepNearby(origin vector.Vector2, radius float64) []bot.Pickup {
	found := idx.Within(origin, radius)

	res := make([]bot.Pickup, len(found))
	for i, p := range found {
		res[i] = bot.Pickup{
			ID:       p.id,
			Position: p.position,
			Resupply: p.amount > 0,
		}
	}

	return res
}
