package influxdb_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/botarena/botarena/common/influxdb"
)

func TestAdd(t *testing.T) {
	counter := influxdb.NewCounter()

	counter.Add(1)

	assert.Equal(t, 1, counter.GetAndReset())
	assert.Equal(t, 0, counter.GetAndReset())
}

func TestConcurrentAdd(t *testing.T) {
	counter := influxdb.NewCounter()

	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.Add(2)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter.Get())
}

func TestStubClientNeverFails(t *testing.T) {
	t.Setenv("INFLUXDB_ADDR", "")
	t.Setenv("INFLUXDB_DB", "")

	client, err := influxdb.NewClient("arena-sim")
	assert.NoError(t, err)
	defer client.TearDown()

	assert.True(t, client.IsStub())
	client.WriteAppMetric("shots", map[string]interface{}{"value": 3})
}
