package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/clock"
)

// _reloadDebounce coalesces the burst of events an editor save produces
const _reloadDebounce = 500 * time.Millisecond

// Watcher re-applies the stored hotkey when the settings file changes on
// disk, so edits made by hand take effect without a restart
type Watcher struct {
	logger  *zap.Logger
	clk     clock.Clock
	store   *Store
	watcher *fsnotify.Watcher
	apply   func(ctx context.Context) error

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher for the store's settings file
func NewWatcher(logger *zap.Logger, clk clock.Clock, store *Store, service *Service) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		logger:  logger,
		clk:     clk,
		store:   store,
		watcher: fsw,
		apply:   service.ApplyStored,
	}, nil
}

// Start begins monitoring the settings directory. Watching the directory
// rather than the file survives the atomic rename the store performs.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	dir := filepath.Dir(w.store.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		w.resetState()
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := w.watcher.Add(dir); err != nil {
		w.resetState()
		return fmt.Errorf("failed to watch settings directory %s: %w", dir, err)
	}

	w.logger.Info("Settings watcher started", zap.String("path", w.store.Path()))

	w.wg.Add(1)
	go w.watchLoop(runCtx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit
func (w *Watcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	if w.cancel != nil {
		w.cancel()
	}
	w.running = false
	w.mu.Unlock()

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("Failed to close file watcher", zap.Error(err))
	}
	w.wg.Wait()

	w.logger.Info("Settings watcher stopped")
	return nil
}

func (w *Watcher) resetState() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.running = false
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

// watchLoop filters events down to the settings file and debounces the
// reload, since a single save can surface as several events
func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()

	base := filepath.Base(w.store.Path())
	var debounce *clock.Timer

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				if debounce != nil {
					debounce.Stop()
				}
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			relevant := event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Rename == fsnotify.Rename
			if !relevant {
				continue
			}

			w.logger.Debug("Settings file changed", zap.String("op", event.Op.String()))
			if debounce != nil {
				debounce.Reset(_reloadDebounce)
			} else {
				debounce = w.clk.AfterFunc(_reloadDebounce, func() {
					w.reload(ctx)
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				if debounce != nil {
					debounce.Stop()
				}
				return
			}
			w.logger.Warn("Settings watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	w.logger.Info("Reloading settings")
	if err := w.apply(ctx); err != nil {
		w.logger.Warn("Failed to reload settings", zap.Error(err))
	}
}
