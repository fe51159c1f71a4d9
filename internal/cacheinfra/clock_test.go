package cacheinfra

import (
	"sync"
	"time"
)

// fakeClock is a manually advanced Clock. Tick delivers the current time to every
// ticker created so far.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) NewTicker(time.Duration) (<-chan time.Time, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan time.Time, 1)
	c.tickers = append(c.tickers, ch)
	return ch, func() {}
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Tick() {
	c.mu.Lock()
	now := c.now
	tickers := append([]chan time.Time(nil), c.tickers...)
	c.mu.Unlock()

	for _, ch := range tickers {
		select {
		case ch <- now:
		default:
		}
	}
}
