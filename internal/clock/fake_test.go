package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestFakeNowTracksAdvance(t *testing.T) {
	c := Fake(epoch)
	if got := c.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	c.Advance(90 * time.Second)
	if got, want := c.Now(), epoch.Add(90*time.Second); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeAfter(t *testing.T) {
	c := Fake(epoch)
	ch := c.After(3 * time.Second)

	c.Advance(2 * time.Second)
	select {
	case <-ch:
		t.Fatal("After fired before its deadline")
	default:
	}

	c.Advance(time.Second)
	select {
	case <-ch:
	default:
		t.Fatal("After did not fire at its deadline")
	}
}

func TestFakeAfterNonPositiveFiresImmediately(t *testing.T) {
	c := Fake(epoch)
	for _, d := range []time.Duration{0, -time.Second} {
		select {
		case <-c.After(d):
		default:
			t.Fatalf("After(%v) did not fire immediately", d)
		}
	}
}

func TestFakeTimerResetRearms(t *testing.T) {
	c := Fake(epoch)
	timer := c.NewTimer(4 * time.Second)

	// A reset before the deadline pushes the whole window out
	c.Advance(3 * time.Second)
	if !timer.Reset(4 * time.Second) {
		t.Fatal("Reset on a pending timer reported inactive")
	}
	c.Advance(3 * time.Second)
	select {
	case <-timer.C:
		t.Fatal("timer fired inside the reset window")
	default:
	}

	c.Advance(time.Second)
	select {
	case <-timer.C:
	default:
		t.Fatal("timer did not fire after the reset window elapsed")
	}

	// Reset after firing arms it again
	if timer.Reset(2 * time.Second) {
		t.Fatal("Reset on a fired timer reported active")
	}
	c.Advance(2 * time.Second)
	select {
	case <-timer.C:
	default:
		t.Fatal("re-armed timer did not fire")
	}
}

func TestFakeTimerStop(t *testing.T) {
	c := Fake(epoch)
	timer := c.NewTimer(time.Second)
	if !timer.Stop() {
		t.Fatal("Stop on a pending timer reported false")
	}
	c.Advance(5 * time.Second)
	select {
	case <-timer.C:
		t.Fatal("stopped timer fired")
	default:
	}
	if timer.Stop() {
		t.Fatal("second Stop reported true")
	}
}

func TestFakeAfterFuncRunsDuringAdvance(t *testing.T) {
	c := Fake(epoch)
	var calls atomic.Int32
	c.AfterFunc(2*time.Second, func() { calls.Add(1) })

	c.Advance(time.Second)
	if calls.Load() != 0 {
		t.Fatal("callback ran before its deadline")
	}
	c.Advance(time.Second)
	if calls.Load() != 1 {
		t.Fatalf("callback ran %d times, want 1", calls.Load())
	}
	c.Advance(10 * time.Second)
	if calls.Load() != 1 {
		t.Fatalf("one-shot callback ran %d times, want 1", calls.Load())
	}
}

func TestFakeTickerFiresPerInterval(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Second)
	defer ticker.Stop()

	ticks := 0
	for i := 0; i < 3; i++ {
		c.Advance(time.Second)
		select {
		case <-ticker.C:
			ticks++
		default:
		}
	}
	if ticks != 3 {
		t.Fatalf("got %d ticks, want 3", ticks)
	}

	// Spanning several intervals in one advance drops overflow ticks
	c.Advance(5 * time.Second)
	drained := 0
	for {
		select {
		case <-ticker.C:
			drained++
			continue
		default:
		}
		break
	}
	if drained != 1 {
		t.Fatalf("drained %d ticks after a 5s advance, want 1 (capacity 1)", drained)
	}
}

func TestFakeTickerStop(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Second)
	ticker.Stop()
	c.Advance(3 * time.Second)
	select {
	case <-ticker.C:
		t.Fatal("stopped ticker delivered a tick")
	default:
	}
}

func TestFakeSleepUnblocksOnAdvance(t *testing.T) {
	c := Fake(epoch)
	done := make(chan struct{})
	go func() {
		c.Sleep(2 * time.Second)
		close(done)
	}()

	c.WaitForTimers(1)
	c.Advance(2 * time.Second)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Sleep did not return after Advance")
	}
}

func TestFakePendingCount(t *testing.T) {
	c := Fake(epoch)
	if got := c.PendingCount(); got != 0 {
		t.Fatalf("PendingCount = %d, want 0", got)
	}
	timer := c.NewTimer(time.Second)
	c.After(time.Second)
	if got := c.PendingCount(); got != 2 {
		t.Fatalf("PendingCount = %d, want 2", got)
	}
	timer.Stop()
	if got := c.PendingCount(); got != 1 {
		t.Fatalf("PendingCount after Stop = %d, want 1", got)
	}
}
