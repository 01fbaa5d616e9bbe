package types

import "sync"

// SyncMap is a string-keyed map safe for concurrent use.
type SyncMap struct {
	data map[string]interface{}
	lock *sync.RWMutex
}

func NewSyncMap() *SyncMap {
	return &SyncMap{
		data: make(map[string]interface{}, 0),
		lock: &sync.RWMutex{},
	}
}

func (wmap *SyncMap) GetGeneric(id string) interface{} {
	var res interface{}
	present := false

	wmap.lock.RLock()
	if res, present = wmap.data[id]; !present {
		res = nil
	}
	wmap.lock.RUnlock()

	return res
}

func (wmap *SyncMap) Has(id string) bool {
	wmap.lock.RLock()
	_, present := wmap.data[id]
	wmap.lock.RUnlock()

	return present
}

func (wmap *SyncMap) Set(id string, item interface{}) {
	wmap.lock.Lock()
	wmap.data[id] = item
	wmap.lock.Unlock()
}

func (wmap *SyncMap) Remove(id string) {
	wmap.lock.Lock()
	delete(wmap.data, id)
	wmap.lock.Unlock()
}

func (wmap *SyncMap) Size() int {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	return len(wmap.data)
}

// Snapshot returns a shallow copy of the content.
func (wmap *SyncMap) Snapshot() map[string]interface{} {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	res := make(map[string]interface{}, len(wmap.data))
	for k, v := range wmap.data {
		res[k] = v
	}

	return res
}
