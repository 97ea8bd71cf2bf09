package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake returns a FakeClock pinned to initial
// Time only moves when Advance is called; every timer, ticker and sleep
// registers a pending waiter that fires once the clock passes its deadline
func Fake(initial time.Time) *FakeClock {
	c := &FakeClock{current: initial}
	c.registered = sync.NewCond(&c.mu)
	return c
}

// FakeClock is a deterministic Clock for tests
// Safe for concurrent use. AfterFunc callbacks run synchronously inside
// Advance in deadline order, so they must not call Advance themselves
type FakeClock struct {
	mu         sync.Mutex
	current    time.Time
	waiters    []*waiter
	registered *sync.Cond
}

type waiter struct {
	deadline time.Time

	// ch receives the fire time; nil for AfterFunc waiters
	ch chan time.Time
	// fn runs synchronously during Advance; nil for channel waiters
	fn func()
	// interval is non-zero for tickers, which reschedule after firing
	interval time.Duration

	stopped bool
	fired   bool
}

// Now returns the current fake time
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// After returns a channel that receives once the clock advances past d
// A non-positive d delivers immediately
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan time.Time, 1)
	if d <= 0 {
		ch <- c.current
		return ch
	}
	c.add(&waiter{deadline: c.current.Add(d), ch: ch})
	return ch
}

// AfterFunc schedules f to run when the clock advances past d
// A non-positive d runs f before AfterFunc returns
func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	c.mu.Lock()
	if d <= 0 {
		c.mu.Unlock()
		f()
		return &Timer{
			stop:  func() bool { return false },
			reset: func(time.Duration) bool { return false },
		}
	}

	w := &waiter{deadline: c.current.Add(d), fn: f}
	c.add(w)
	c.mu.Unlock()

	return &Timer{stop: c.stopWaiter(w), reset: c.resetWaiter(w)}
}

// NewTimer returns a one-shot Timer firing once the clock advances past d
func (c *FakeClock) NewTimer(d time.Duration) *Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan time.Time, 1)
	w := &waiter{deadline: c.current.Add(d), ch: ch}
	if d <= 0 {
		ch <- c.current
		w.fired = true
	} else {
		c.add(w)
	}
	return &Timer{C: ch, stop: c.stopWaiter(w), reset: c.resetWaiter(w)}
}

// NewTicker returns a Ticker firing every d of advanced time
// Panics if d <= 0, matching time.NewTicker
func (c *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan time.Time, 1)
	w := &waiter{deadline: c.current.Add(d), ch: ch, interval: d}
	c.add(w)

	return &Ticker{
		C: ch,
		stop: func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			w.stopped = true
		},
		reset: func(d time.Duration) {
			c.mu.Lock()
			defer c.mu.Unlock()
			w.interval = d
			w.deadline = c.current.Add(d)
			w.stopped = false
		},
	}
}

// Sleep blocks the calling goroutine until the clock advances past d
func (c *FakeClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	<-c.After(d)
}

// Advance moves the clock forward by d and fires every waiter whose
// deadline falls within the new time, in deadline order
// Channel sends never block; a full channel drops the tick
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	target := c.current
	c.mu.Unlock()

	for {
		due := c.takeExpired(target)
		if len(due) == 0 {
			return
		}
		sort.Slice(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })
		for _, w := range due {
			switch {
			case w.fn != nil:
				w.fn()
			case w.ch != nil:
				select {
				case w.ch <- target:
				default:
				}
			}
		}
	}
}

// WaitForTimers blocks until at least n waiters are pending, closing the
// race between a goroutine arming a timer and the test advancing the clock
func (c *FakeClock) WaitForTimers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.pendingLocked() < n {
		c.registered.Wait()
	}
}

// PendingCount returns the number of armed waiters
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingLocked()
}

// add registers w and wakes WaitForTimers; callers hold c.mu
func (c *FakeClock) add(w *waiter) {
	c.waiters = append(c.waiters, w)
	c.registered.Broadcast()
}

func (c *FakeClock) pendingLocked() int {
	n := 0
	for _, w := range c.waiters {
		if !w.stopped {
			n++
		}
	}
	return n
}

// takeExpired removes due waiters from the pending list, rescheduling
// tickers for their next interval
func (c *FakeClock) takeExpired(target time.Time) []*waiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	var due, keep []*waiter
	for _, w := range c.waiters {
		switch {
		case w.stopped:
			// dropped
		case !w.deadline.After(target):
			due = append(due, w)
		default:
			keep = append(keep, w)
		}
	}
	for _, w := range due {
		if w.interval > 0 {
			w.deadline = w.deadline.Add(w.interval)
			keep = append(keep, w)
		} else {
			w.fired = true
		}
	}
	c.waiters = keep
	return due
}

func (c *FakeClock) stopWaiter(w *waiter) func() bool {
	return func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if w.stopped || w.fired {
			return false
		}
		w.stopped = true
		return true
	}
}

func (c *FakeClock) resetWaiter(w *waiter) func(time.Duration) bool {
	return func(d time.Duration) bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		active := !w.stopped && !w.fired
		w.stopped = false
		w.fired = false
		w.deadline = c.current.Add(d)
		// fired waiters were removed from the pending list; stopped ones
		// may still be awaiting collection
		if !c.contains(w) {
			c.add(w)
		}
		return active
	}
}

func (c *FakeClock) contains(w *waiter) bool {
	for _, p := range c.waiters {
		if p == w {
			return true
		}
	}
	return false
}
