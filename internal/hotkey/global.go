package hotkey

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// bindFunc claims an OS-level shortcut and invokes onTrigger for every
// press until the returned release func is called
// The platform implementation lives in bind.go; tests swap in a fake
type bindFunc func(c Combo, onTrigger func()) (release func() error, err error)

// Manager owns the process-wide global shortcut registration
// Rebinding releases the previous registration before claiming the new
// combination, so at most one shortcut is ever held
type Manager struct {
	logger *zap.Logger

	mu      sync.Mutex
	bind    bindFunc
	release func() error
	current string
	handler func()
}

// NewManager creates a manager with no registration and no handler
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		logger: logger,
		bind:   bindGlobal,
	}
}

// SetHandler installs the function invoked when the shortcut fires
// The handler runs on the binding's event goroutine
func (m *Manager) SetHandler(fn func()) {
	m.mu.Lock()
	m.handler = fn
	m.mu.Unlock()
}

// Rebind parses accel and swaps the OS registration over to it
// On failure the previous registration is already gone; callers decide
// whether to retry with the old value
func (m *Manager) Rebind(accel string) error {
	combo, err := Parse(accel)
	if err != nil {
		return fmt.Errorf("rebind: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.releaseLocked()

	release, err := m.bind(combo, m.trigger)
	if err != nil {
		m.current = ""
		return fmt.Errorf("register shortcut %q: %w", accel, err)
	}
	m.release = release
	m.current = accel

	m.logger.Info("Registered global hotkey", zap.String("accelerator", accel))
	return nil
}

// Current returns the accelerator currently registered, if any
func (m *Manager) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Close releases the active registration
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.releaseLocked()
	m.current = ""
}

func (m *Manager) releaseLocked() {
	if m.release == nil {
		return
	}
	if err := m.release(); err != nil {
		m.logger.Warn("Failed to release previous hotkey", zap.Error(err))
	}
	m.release = nil
}

func (m *Manager) trigger() {
	m.mu.Lock()
	fn := m.handler
	m.mu.Unlock()
	if fn == nil {
		return
	}
	m.logger.Info("Hotkey pressed, toggling artwork display")
	fn()
}
