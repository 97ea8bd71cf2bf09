package overlay

import (
	"time"

	"github.com/easel-works/easel/internal/clock"
)

// _infoBarTimeout is how long the info bar stays visible after the last
// qualifying activity (artwork change or pointer movement)
const _infoBarTimeout = 4 * time.Second

// infoBar tracks the metadata bar's visibility window with a single
// rearmed timer. Not safe for concurrent use: it is owned by the
// controller loop, which is also the only reader of C()
type infoBar struct {
	clk     clock.Clock
	timer   *clock.Timer
	visible bool
}

func newInfoBar(clk clock.Clock) *infoBar {
	t := clk.NewTimer(_infoBarTimeout)
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	return &infoBar{clk: clk, timer: t}
}

// Touch marks activity: the bar becomes visible and the countdown
// restarts. The previous countdown is cancelled first, so at most one
// is ever live
func (b *infoBar) Touch() {
	b.visible = true
	if !b.timer.Stop() {
		select {
		case <-b.timer.C:
		default:
		}
	}
	b.timer.Reset(_infoBarTimeout)
}

// Expire hides the bar. Called when C delivers
func (b *infoBar) Expire() {
	b.visible = false
}

// C delivers once the activity window has elapsed
func (b *infoBar) C() <-chan time.Time {
	return b.timer.C
}

// Visible reports whether the bar is inside its activity window
func (b *infoBar) Visible() bool {
	return b.visible
}

// Stop cancels the countdown without changing visibility
func (b *infoBar) Stop() {
	b.timer.Stop()
}
