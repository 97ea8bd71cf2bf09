// Package clock abstracts the parts of package time that the
// application schedules against, so tests can drive timers
// deterministically with a fake
package clock

import "time"

// Clock is the scheduling surface used by production code
// Inject Real() in the wired application and Fake() in tests
type Clock interface {
	// Now returns the current time
	Now() time.Time

	// After returns a channel that receives once d has elapsed
	After(d time.Duration) <-chan time.Time

	// AfterFunc calls f in its own goroutine once d has elapsed
	// The returned Timer's C is nil, matching time.AfterFunc
	AfterFunc(d time.Duration, f func()) *Timer

	// NewTimer returns a one-shot Timer whose C receives once d has
	// elapsed; Reset re-arms it for select-loop debouncing
	NewTimer(d time.Duration) *Timer

	// NewTicker returns a Ticker that delivers on C every d
	NewTicker(d time.Duration) *Ticker

	// Sleep pauses the calling goroutine for at least d
	Sleep(d time.Duration)
}

// Timer is a scheduled one-shot event
type Timer struct {
	// C delivers the fire time; nil for AfterFunc timers
	C <-chan time.Time

	stop  func() bool
	reset func(time.Duration) bool
}

// Stop cancels the timer; it reports whether the timer was still pending
func (t *Timer) Stop() bool { return t.stop() }

// Reset re-arms the timer to fire after d; it reports whether the timer
// was still pending
func (t *Timer) Reset(d time.Duration) bool { return t.reset(d) }

// Ticker delivers periodic events on C until stopped
// C is buffered with capacity 1; ticks are dropped when the consumer
// falls behind, matching time.Ticker
type Ticker struct {
	C <-chan time.Time

	stop  func()
	reset func(time.Duration)
}

// Stop turns the ticker off; it does not close C
func (t *Ticker) Stop() { t.stop() }

// Reset restarts the tick cycle with interval d
func (t *Ticker) Reset(d time.Duration) { t.reset(d) }

// Real returns a Clock backed by package time
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

func (realClock) AfterFunc(d time.Duration, f func()) *Timer {
	t := time.AfterFunc(d, f)
	return &Timer{stop: t.Stop, reset: t.Reset}
}

func (realClock) NewTimer(d time.Duration) *Timer {
	t := time.NewTimer(d)
	return &Timer{C: t.C, stop: t.Stop, reset: t.Reset}
}

func (realClock) NewTicker(d time.Duration) *Ticker {
	t := time.NewTicker(d)
	return &Ticker{C: t.C, stop: t.Stop, reset: t.Reset}
}

func (realClock) Sleep(d time.Duration) { time.Sleep(d) }
