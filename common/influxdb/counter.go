package influxdb

import "sync/atomic"

// Counter accumulates events between two metric reports. It is safe to
// share between the simulation goroutine and the report loop.
type Counter struct {
	count atomic.Int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Add(n int) {
	c.count.Add(int64(n))
}

func (c *Counter) Inc() {
	c.count.Add(1)
}

func (c *Counter) Get() int {
	return int(c.count.Load())
}

// GetAndReset returns the value accumulated since the previous call.
func (c *Counter) GetAndReset() int {
	return int(c.count.Swap(0))
}
