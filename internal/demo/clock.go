package demo

import (
	"sort"
	"sync"
	"time"
)

// Clock supplies the current time to the store so timestamp-producing actions
// stay deterministic under test.
type Clock interface {
	Now() time.Time
}

// Scheduler defers a single-shot callback. The store uses it to simulate
// backend latency: every deferred callback re-checks its precondition before
// mutating, so firing late or against superseded state is harmless.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// SystemClock implements Clock and Scheduler over the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// VirtualClock implements Clock and Scheduler with manually advanced time.
// Advance runs due callbacks in firing order, which makes the store's
// fake-async workflows fully deterministic in tests.
type VirtualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*virtualTimer
}

type virtualTimer struct {
	at  time.Time
	seq int
	fn  func()
}

// NewVirtualClock starts a virtual clock at the given instant.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

func (c *VirtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *VirtualClock) AfterFunc(d time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.timers = append(c.timers, &virtualTimer{at: c.now.Add(d), seq: c.seq, fn: fn})
}

// Advance moves the clock forward and fires every callback that became due,
// in schedule order. Callbacks run outside the clock's lock so they may
// schedule further work.
func (c *VirtualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	deadline := c.now
	c.mu.Unlock()

	for {
		fn := c.popDue(deadline)
		if fn == nil {
			return
		}
		fn()
	}
}

func (c *VirtualClock) popDue(deadline time.Time) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at.Equal(c.timers[j].at) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at.Before(c.timers[j].at)
	})
	for i, t := range c.timers {
		if !t.at.After(deadline) {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return t.fn
		}
	}
	return nil
}
