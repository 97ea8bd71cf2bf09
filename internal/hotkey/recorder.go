package hotkey

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/clock"
	"github.com/easel-works/easel/internal/domain"
)

// savedIndicatorTTL is how long the "saved" confirmation stays up
// before clearing itself
const savedIndicatorTTL = 2000 * time.Millisecond

// Recorder captures a key combination from the host input port and
// persists it through the settings service
//
// It is Idle or Recording; while Recording it owns exactly one key
// listener, released the moment a qualifying press arrives or the
// recorder is closed
type Recorder struct {
	logger   *zap.Logger
	clk      clock.Clock
	input    domain.InputPort
	settings domain.SettingsService

	mu         sync.Mutex
	recording  bool
	value      string
	persisted  string
	saveErr    error
	savedFlag  bool
	detach     func()
	clearTimer *clock.Timer
	onChange   func(domain.HotkeyCaptureState)
}

// NewRecorder creates a recorder in the Idle state with an empty
// working value; call Load to seed it from the persisted binding
func NewRecorder(logger *zap.Logger, clk clock.Clock, input domain.InputPort, settings domain.SettingsService) *Recorder {
	return &Recorder{
		logger:   logger,
		clk:      clk,
		input:    input,
		settings: settings,
	}
}

// OnChange registers the single observer notified after every state
// transition
func (r *Recorder) OnChange(fn func(domain.HotkeyCaptureState)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
	r.publish()
}

// Load seeds the working value from the settings service
func (r *Recorder) Load(ctx context.Context) error {
	accel, err := r.settings.Hotkey(ctx)
	if err != nil {
		return fmt.Errorf("load hotkey: %w", err)
	}

	r.mu.Lock()
	r.value = accel
	r.persisted = accel
	r.mu.Unlock()
	r.publish()
	return nil
}

// BeginCapture enters Recording and attaches the key listener
// A second call while already Recording is a no-op, so at most one
// listener is ever attached
func (r *Recorder) BeginCapture() {
	r.mu.Lock()
	if r.recording {
		r.mu.Unlock()
		return
	}
	r.recording = true
	r.saveErr = nil
	r.savedFlag = false
	r.stopClearTimerLocked()

	detach, err := r.input.AttachKeyListener(r.handleKey)
	if err != nil {
		r.recording = false
		r.saveErr = err
		r.mu.Unlock()
		r.logger.Warn("Failed to attach capture listener", zap.Error(err))
		r.publish()
		return
	}
	r.detach = detach
	r.mu.Unlock()

	r.logger.Debug("Hotkey capture started")
	r.publish()
}

// handleKey receives every press while Recording
// Bare modifiers leave the capture open; the first qualifying press
// becomes the working value and releases the listener
func (r *Recorder) handleKey(kp domain.KeyPress) {
	accel, ok := Normalize(kp)
	if !ok {
		return
	}

	r.mu.Lock()
	if !r.recording {
		// Stale event after teardown
		r.mu.Unlock()
		return
	}
	r.value = accel
	r.recording = false
	r.detachLocked()
	r.mu.Unlock()

	r.logger.Info("Hotkey captured", zap.String("accelerator", accel))
	r.publish()
}

// Save persists the working value through the settings service
// On success a transient saved indicator is shown for two seconds; on
// failure the error is surfaced and the working value stays visible
// for correction
func (r *Recorder) Save(ctx context.Context) error {
	r.mu.Lock()
	if r.recording {
		r.mu.Unlock()
		return fmt.Errorf("cannot save while recording")
	}
	value := r.value
	r.mu.Unlock()

	err := r.settings.SetHotkey(ctx, value)

	r.mu.Lock()
	if err != nil {
		r.saveErr = err
		r.savedFlag = false
		r.mu.Unlock()
		r.logger.Warn("Failed to save hotkey", zap.String("accelerator", value), zap.Error(err))
		r.publish()
		return err
	}

	r.persisted = value
	r.saveErr = nil
	r.savedFlag = true
	r.stopClearTimerLocked()
	r.clearTimer = r.clk.AfterFunc(savedIndicatorTTL, r.clearSaved)
	r.mu.Unlock()

	r.logger.Info("Hotkey saved", zap.String("accelerator", value))
	r.publish()
	return nil
}

// clearSaved drops the transient saved indicator
func (r *Recorder) clearSaved() {
	r.mu.Lock()
	r.savedFlag = false
	r.clearTimer = nil
	r.mu.Unlock()
	r.publish()
}

// State returns the current capture state
func (r *Recorder) State() domain.HotkeyCaptureState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Close releases any dangling listener and timer
func (r *Recorder) Close() {
	r.mu.Lock()
	r.recording = false
	r.detachLocked()
	r.stopClearTimerLocked()
	r.mu.Unlock()
}

func (r *Recorder) detachLocked() {
	if r.detach != nil {
		r.detach()
		r.detach = nil
	}
}

func (r *Recorder) stopClearTimerLocked() {
	if r.clearTimer != nil {
		r.clearTimer.Stop()
		r.clearTimer = nil
	}
}

func (r *Recorder) snapshotLocked() domain.HotkeyCaptureState {
	return domain.HotkeyCaptureState{
		Recording: r.recording,
		Value:     r.value,
		Dirty:     r.value != r.persisted,
		Saved:     r.savedFlag,
		Err:       r.saveErr,
	}
}

func (r *Recorder) publish() {
	r.mu.Lock()
	fn := r.onChange
	st := r.snapshotLocked()
	r.mu.Unlock()
	if fn != nil {
		fn(st)
	}
}
