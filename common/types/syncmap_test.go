package types_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/botarena/botarena/common/types"
)

func TestSyncMapConcurrentWrites(t *testing.T) {
	m := types.NewSyncMap()

	wg := sync.WaitGroup{}
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Set(strconv.Itoa(i), i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 32, m.Size())
	assert.Equal(t, 7, m.GetGeneric("7"))

	m.Remove("7")
	assert.Nil(t, m.GetGeneric("7"))
	assert.False(t, m.Has("7"))
	assert.Len(t, m.Snapshot(), 31)
}
