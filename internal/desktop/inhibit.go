package desktop

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

const (
	_screenSaverDest = "org.freedesktop.ScreenSaver"
	_screenSaverPath = "/org/freedesktop/ScreenSaver"
	_inhibitMethod   = "org.freedesktop.ScreenSaver.Inhibit"
	_uninhibitMethod = "org.freedesktop.ScreenSaver.UnInhibit"
	_applicationName = "easel"
)

// ScreenSaverInhibitor keeps the screen awake while artwork is on display.
// On desktops without a session bus it degrades to a logged no-op rather
// than failing the reveal.
type ScreenSaverInhibitor struct {
	logger  *zap.Logger
	connect func() (DBusClient, error)

	mu     sync.Mutex
	conn   DBusClient
	cookie uint32
	active bool
}

// NewScreenSaverInhibitor creates an inhibitor that connects lazily on the
// first Inhibit call
func NewScreenSaverInhibitor(logger *zap.Logger) *ScreenSaverInhibitor {
	return &ScreenSaverInhibitor{
		logger: logger,
		connect: func() (DBusClient, error) {
			return NewStdDBusClient()
		},
	}
}

// Inhibit asks the desktop to keep the screen awake. Idempotent: a second
// call while active is a no-op.
func (i *ScreenSaverInhibitor) Inhibit(ctx context.Context, reason string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.active {
		return nil
	}

	if i.conn == nil {
		conn, err := i.connect()
		if err != nil {
			i.logger.Debug("No session bus, screensaver inhibition disabled", zap.Error(err))
			return nil
		}
		i.conn = conn
	}

	var cookie uint32
	err := i.conn.Call(_screenSaverDest, _screenSaverPath, _inhibitMethod,
		[]any{_applicationName, reason}, &cookie)
	if err != nil {
		return fmt.Errorf("failed to inhibit screensaver: %w", err)
	}

	i.cookie = cookie
	i.active = true
	i.logger.Debug("Screensaver inhibited", zap.Uint32("cookie", cookie))
	return nil
}

// Uninhibit releases a previous inhibition; a no-op when none is active
func (i *ScreenSaverInhibitor) Uninhibit(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.uninhibitLocked()
}

func (i *ScreenSaverInhibitor) uninhibitLocked() error {
	if !i.active || i.conn == nil {
		return nil
	}

	err := i.conn.Call(_screenSaverDest, _screenSaverPath, _uninhibitMethod,
		[]any{i.cookie}, nil)
	if err != nil {
		return fmt.Errorf("failed to uninhibit screensaver: %w", err)
	}

	i.logger.Debug("Screensaver inhibition released", zap.Uint32("cookie", i.cookie))
	i.active = false
	i.cookie = 0
	return nil
}

// Close releases any active inhibition and the bus connection
func (i *ScreenSaverInhibitor) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.uninhibitLocked(); err != nil {
		i.logger.Warn("Failed to release inhibition on close", zap.Error(err))
	}

	if i.conn == nil {
		return nil
	}
	err := i.conn.Close()
	i.conn = nil
	return err
}
