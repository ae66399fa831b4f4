package period

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tutils/bashrand/counter"
)

var _ counter.Counter = &periodCounter{}

type periodCounter struct {
	value      atomic.Int64
	ratePerSec atomic.Int64
	period     time.Duration

	lastValue int64
	lastTime  time.Time
	mut       sync.Mutex
}

// NewPeriodCounter returns a counter whose rate is refreshed at most once per period.
func NewPeriodCounter(period time.Duration) counter.Counter {
	return &periodCounter{
		period:   period,
		lastTime: time.Now(),
	}
}

// Value implements Counter.
func (c *periodCounter) Value() int64 {
	return c.value.Load()
}

// RatePerSec implements Counter.
func (c *periodCounter) RatePerSec() int64 {
	c.check()
	return c.ratePerSec.Load()
}

// Add implements Counter.
func (c *periodCounter) Add(n int64) {
	c.value.Add(n)
	c.check()
}

func (c *periodCounter) check() {
	if !c.mut.TryLock() {
		return
	}
	defer c.mut.Unlock()

	elapsed := time.Since(c.lastTime)
	if elapsed < c.period {
		return
	}

	value := c.Value()
	c.ratePerSec.Store(int64(float64(value-c.lastValue) / elapsed.Seconds()))
	c.lastValue = value
	c.lastTime = time.Now()
}
