// Package overlay owns the artwork presentation state machine: which
// piece is on screen, which one is decoding behind it, and when the
// surface may first become visible.
package overlay

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/clock"
	"github.com/easel-works/easel/internal/domain"
)

const (
	// _initialLoadAttempts bounds the startup lookups for an artwork
	// that may still be fetching on the backend
	_initialLoadAttempts = 3
	// _initialLoadDelay is the fixed spacing between startup lookups
	_initialLoadDelay = 200 * time.Millisecond
	// _safetyRevealTimeout forces the surface visible even if no image
	// ever finishes decoding
	_safetyRevealTimeout = 3 * time.Second
)

// State is the controller's observable snapshot, published after every
// transition
type State struct {
	// Displayed is the artwork currently promoted to the surface
	Displayed *domain.Artwork
	// Image is the decoded frame backing Displayed
	Image *domain.DecodedImage
	// Pending is the artwork whose image is still decoding
	Pending *domain.Artwork
	// Loading is true while nothing is displayable or a navigation is
	// in flight
	Loading bool
	// Revealed latches true once the surface may be shown; it never
	// goes back to false
	Revealed bool
	// InfoBarVisible is true inside the activity window after an
	// artwork change or pointer movement
	InfoBarVisible bool
}

// controller loop messages
type message interface{}

type artworkMsg struct{ art domain.Artwork }

type decodeDoneMsg struct{ img *domain.DecodedImage }

type decodeFailedMsg struct {
	artworkID string
	err       error
}

type navFailedMsg struct{ err error }

type nextMsg struct{}

type prevMsg struct{}

type pointerMsg struct{}

type dismissMsg struct{}

// Controller drives the overlay's buffer state machine. A single
// goroutine owns all state; every stimulus (artwork notifications,
// decode completions, navigation, pointer movement, timers) enters
// through its loop, so transitions need no locking.
type Controller struct {
	logger  *zap.Logger
	clk     clock.Clock
	service domain.ArtworkService
	decoder domain.ImageDecoder
	host    domain.OverlayHost

	msgs   chan message
	states chan State
	done   chan struct{}

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	// loop-owned fields below, touched only from runLoop
	state   State
	infoBar *infoBar
	safety  *clock.Timer
}

// NewController creates the overlay controller
func NewController(
	logger *zap.Logger,
	clk clock.Clock,
	service domain.ArtworkService,
	decoder domain.ImageDecoder,
	host domain.OverlayHost,
) *Controller {
	return &Controller{
		logger:  logger,
		clk:     clk,
		service: service,
		decoder: decoder,
		host:    host,
		msgs:    make(chan message, 16),
		states:  make(chan State, 1),
		done:    make(chan struct{}),
		state:   State{Loading: true},
		infoBar: newInfoBar(clk),
	}
}

// Start launches the controller loop and the initial artwork lookup.
// It returns immediately (non-blocking).
func (c *Controller) Start(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.running = true

	c.wg.Add(2)
	go c.runLoop(ctx)
	go c.initialLoad(ctx)

	c.logger.Info("Overlay controller started")
	return nil
}

// Stop tears the controller down: the loop exits, in-flight decodes are
// abandoned, and the snapshot channel is closed
func (c *Controller) Stop(context.Context) error {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return nil
	}
	c.running = false
	c.cancel()
	c.mu.Unlock()

	c.wg.Wait()
	close(c.states)

	c.logger.Info("Overlay controller stopped")
	return nil
}

// States returns the snapshot stream. The channel conflates: a slow
// consumer always receives the most recent snapshot, never a stale one
func (c *Controller) States() <-chan State {
	return c.states
}

// Next advances to a new artwork. Loading turns on immediately; the
// artwork itself arrives later through the service's change channel
func (c *Controller) Next() {
	c.send(nextMsg{})
}

// Previous steps back through history. Loading turns on immediately
func (c *Controller) Previous() {
	c.send(prevMsg{})
}

// PointerMoved records pointer activity, keeping the info bar visible
func (c *Controller) PointerMoved() {
	c.send(pointerMsg{})
}

// Dismiss hides the surface without tearing anything down
func (c *Controller) Dismiss() {
	c.send(dismissMsg{})
}

// send enqueues a message for the loop, giving up once the controller
// has stopped
func (c *Controller) send(m message) {
	select {
	case c.msgs <- m:
	case <-c.done:
	}
}

// post is send for goroutines that also hold the loop context
func (c *Controller) post(ctx context.Context, m message) {
	select {
	case c.msgs <- m:
	case <-ctx.Done():
	case <-c.done:
	}
}

// runLoop is the single goroutine that owns the overlay state.
// Stimuli are serialized here, which is what makes the transition rules
// (latest pending wins, stale decodes ignored) deterministic.
func (c *Controller) runLoop(ctx context.Context) {
	defer c.wg.Done()
	defer close(c.done)

	c.safety = c.clk.NewTimer(_safetyRevealTimeout)
	defer c.safety.Stop()
	defer c.infoBar.Stop()

	changes := c.service.Changes()

	// baseline snapshot so the host paints the loading state
	c.publish()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Overlay controller loop stopped")
			return

		case art, ok := <-changes:
			if !ok {
				c.logger.Info("Artwork change channel closed")
				return
			}
			c.handleArtworkChanged(ctx, art)

		case <-c.safety.C:
			c.handleSafetyTimeout()

		case <-c.infoBar.C():
			c.infoBar.Expire()
			c.publish()

		case m := <-c.msgs:
			c.handle(ctx, m)
		}
	}
}

// initialLoad asks the backend for the current artwork a few times,
// stopping at the first success. Exhausting every attempt is not an
// error: the safety timer reveals the surface regardless
func (c *Controller) initialLoad(ctx context.Context) {
	defer c.wg.Done()

	for attempt := 1; attempt <= _initialLoadAttempts; attempt++ {
		art, err := c.service.CurrentArtwork(ctx)
		if err == nil && art != nil {
			c.post(ctx, artworkMsg{art: *art})
			return
		}
		c.logger.Debug("Current artwork not available yet",
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt == _initialLoadAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-c.clk.After(_initialLoadDelay):
		}
	}

	c.logger.Warn("No artwork after initial load, waiting for safety reveal")
}

func (c *Controller) handle(ctx context.Context, m message) {
	switch m := m.(type) {
	case artworkMsg:
		c.handleArtworkChanged(ctx, m.art)

	case decodeDoneMsg:
		c.handleDecodeDone(m.img)

	case decodeFailedMsg:
		c.handleDecodeFailed(m.artworkID, m.err)

	case navFailedMsg:
		c.state.Loading = c.state.Displayed == nil
		c.logger.Warn("Navigation failed", zap.Error(m.err))
		c.publish()

	case nextMsg:
		c.state.Loading = true
		c.publish()
		c.forward(ctx, c.service.NextArtwork)

	case prevMsg:
		c.state.Loading = true
		c.publish()
		c.forward(ctx, c.service.PreviousArtwork)

	case pointerMsg:
		c.infoBar.Touch()
		c.publish()

	case dismissMsg:
		c.host.DismissOverlays()
		c.logger.Info("Overlays dismissed")
	}
}

// handleArtworkChanged reacts to a new artwork notification:
// 1. the info bar wakes up,
// 2. notifications for the artwork already displayed or already
//    decoding are dropped,
// 3. anything else becomes the new pending artwork and starts a decode,
//    superseding whatever was pending before.
func (c *Controller) handleArtworkChanged(ctx context.Context, art domain.Artwork) {
	c.infoBar.Touch()

	switch {
	case c.state.Displayed != nil && c.state.Displayed.ID == art.ID:
		c.logger.Debug("Duplicate artwork notification ignored",
			zap.String("artwork_id", art.ID))

	case c.state.Pending != nil && c.state.Pending.ID == art.ID:
		c.logger.Debug("Artwork already decoding",
			zap.String("artwork_id", art.ID))

	default:
		a := art
		c.state.Pending = &a
		c.startDecode(ctx, a)
		c.logger.Debug("Artwork pending",
			zap.String("artwork_id", art.ID),
			zap.String("title", art.Title))
	}

	c.publish()
}

// startDecode renders the artwork's image off the loop. Completion
// comes back as a message, and by then the pending slot may refer to a
// newer artwork, so the result carries the artwork ID for the staleness
// check
func (c *Controller) startDecode(ctx context.Context, art domain.Artwork) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		img, err := c.decoder.Decode(ctx, art)
		if err != nil {
			c.post(ctx, decodeFailedMsg{artworkID: art.ID, err: err})
			return
		}
		c.post(ctx, decodeDoneMsg{img: img})
	}()
}

// handleDecodeDone promotes the pending artwork once its image is
// ready. Results for anything other than the current pending artwork
// are stale and discarded
func (c *Controller) handleDecodeDone(img *domain.DecodedImage) {
	if c.state.Pending == nil || c.state.Pending.ID != img.ArtworkID {
		c.logger.Debug("Stale decode discarded",
			zap.String("artwork_id", img.ArtworkID))
		return
	}

	c.state.Displayed = c.state.Pending
	c.state.Image = img
	c.state.Pending = nil
	c.state.Loading = false

	if !c.state.Revealed {
		c.state.Revealed = true
		c.safety.Stop()
		c.host.RevealOverlays()
		c.logger.Info("Overlay revealed",
			zap.String("artwork_id", img.ArtworkID))
	}

	c.logger.Info("Artwork displayed",
		zap.String("artwork_id", img.ArtworkID),
		zap.String("title", c.state.Displayed.Title))
	c.publish()
}

func (c *Controller) handleDecodeFailed(artworkID string, err error) {
	if c.state.Pending == nil || c.state.Pending.ID != artworkID {
		c.logger.Debug("Stale decode failure ignored",
			zap.String("artwork_id", artworkID))
		return
	}

	c.state.Pending = nil
	c.state.Loading = c.state.Displayed == nil
	c.logger.Warn("Artwork decode failed",
		zap.String("artwork_id", artworkID),
		zap.Error(err))
	c.publish()
}

// handleSafetyTimeout guarantees the surface never stays hidden
// indefinitely: if nothing has decoded by now, reveal anyway
func (c *Controller) handleSafetyTimeout() {
	if c.state.Revealed {
		return
	}
	c.state.Revealed = true
	c.host.RevealOverlays()
	c.logger.Warn("Overlay revealed by safety timeout, no artwork decoded yet")
	c.publish()
}

// forward runs a navigation call off the loop. Success shows up later
// as an artwork notification; only failures come back as messages
func (c *Controller) forward(ctx context.Context, op func(context.Context) error) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		if err := op(ctx); err != nil {
			c.post(ctx, navFailedMsg{err: err})
		}
	}()
}

// publish pushes the current snapshot, replacing an unread older one so
// the consumer always observes the latest state
func (c *Controller) publish() {
	snap := c.state
	snap.InfoBarVisible = c.infoBar.Visible()

	for {
		select {
		case c.states <- snap:
			return
		default:
		}
		select {
		case <-c.states:
		default:
		}
	}
}
