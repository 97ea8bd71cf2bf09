package gallery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/clock"
	"github.com/easel-works/easel/internal/domain"
)

const (
	// _cacheSize is how many artworks are kept ready for instant display
	_cacheSize = 5

	// _prefetchInterval is how often the background loop tops up the cache
	_prefetchInterval = 2 * time.Second

	// History is trimmed to half once it grows past the limit
	_historyLimit = 50
	_historyDrain = 25
)

// Service hands out artworks for display. A background loop keeps a small
// cache of prefetched pieces so navigation feels instant, and a bounded
// history allows stepping backwards.
type Service struct {
	logger  *zap.Logger
	clk     clock.Clock
	sources []source
	seen    *SeenStore

	events chan domain.Artwork

	mu              sync.Mutex
	cache           []domain.Artwork
	history         []domain.Artwork
	historyIndex    int // -1 means viewing the live head
	running         bool
	cancel          context.CancelFunc
	wg              sync.WaitGroup
	lastDropWarning time.Time
}

// NewService creates a Service backed by the four museum sources
func NewService(logger *zap.Logger, clk clock.Clock, client *Client, seen *SeenStore) (*Service, error) {
	nga, err := newNGASource(logger, client)
	if err != nil {
		return nil, err
	}

	sources := []source{
		newMetSource(logger, client),
		newAICSource(logger, client),
		newCMASource(logger, client),
		nga,
	}
	return newServiceWithSources(logger, clk, sources, seen), nil
}

func newServiceWithSources(logger *zap.Logger, clk clock.Clock, sources []source, seen *SeenStore) *Service {
	return &Service{
		logger:       logger,
		clk:          clk,
		sources:      sources,
		seen:         seen,
		events:       make(chan domain.Artwork, 10),
		historyIndex: -1,
	}
}

// Start runs the prefetch loop until the context is cancelled
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	s.logger.Info("Artwork prefetcher started", zap.Int("sources", len(s.sources)))

	if s.seen != nil {
		if err := s.seen.Prune(runCtx, s.clk.Now()); err != nil {
			s.logger.Warn("History prune failed", zap.Error(err))
		}
	}

	s.wg.Add(1)
	go s.prefetchLoop(runCtx)

	// Block until context is cancelled
	<-runCtx.Done()

	s.logger.Info("Artwork prefetcher stopped")
	return runCtx.Err()
}

// Stop gracefully stops the service
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.running = false
	s.mu.Unlock()

	// Wait for the prefetch goroutine to terminate before closing the
	// channel to prevent "send on closed channel" panics
	s.logger.Debug("Waiting for prefetch goroutine to finish")
	s.wg.Wait()

	close(s.events)

	s.logger.Info("Artwork service shutdown complete")
	return nil
}

// Changes returns a read-only channel that emits each displayed artwork
func (s *Service) Changes() <-chan domain.Artwork {
	return s.events
}

// CurrentArtwork returns the artwork currently on display, or nil when
// nothing has been shown yet
func (s *Service) CurrentArtwork(ctx context.Context) (*domain.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.historyIndex >= 0 && s.historyIndex < len(s.history) {
		art := s.history[s.historyIndex]
		return &art, nil
	}
	if len(s.history) > 0 {
		art := s.history[len(s.history)-1]
		return &art, nil
	}
	return nil, nil
}

// NextArtwork advances the display. Replaying forward through history takes
// priority; once caught up it pops the prefetch cache, falling back to a
// live fetch when the cache is empty.
func (s *Service) NextArtwork(ctx context.Context) error {
	s.mu.Lock()
	if s.historyIndex >= 0 && s.historyIndex+1 < len(s.history) {
		s.historyIndex++
		art := s.history[s.historyIndex]
		s.mu.Unlock()

		s.emit(ctx, art)
		return nil
	}
	s.historyIndex = -1

	var art *domain.Artwork
	if len(s.cache) > 0 {
		popped := s.cache[0]
		s.cache = s.cache[1:]
		art = &popped
	}
	s.mu.Unlock()

	if art == nil {
		s.logger.Debug("Cache empty, fetching live")
		fetched, err := s.fetchFresh(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch next artwork: %w", err)
		}
		art = fetched
	}

	s.mu.Lock()
	s.history = append(s.history, *art)
	if len(s.history) > _historyLimit {
		s.history = append([]domain.Artwork{}, s.history[_historyDrain:]...)
	}
	s.mu.Unlock()

	s.emit(ctx, *art)
	return nil
}

// PreviousArtwork steps back through history
func (s *Service) PreviousArtwork(ctx context.Context) error {
	s.mu.Lock()

	if len(s.history) == 0 {
		s.mu.Unlock()
		return fmt.Errorf("no history to step back into")
	}

	switch {
	case s.historyIndex == 0:
		s.mu.Unlock()
		return fmt.Errorf("already at the beginning of history")
	case s.historyIndex > 0:
		s.historyIndex--
	default:
		// Viewing the live head; jump behind it
		if len(s.history) < 2 {
			s.mu.Unlock()
			return fmt.Errorf("no previous artwork")
		}
		s.historyIndex = len(s.history) - 2
	}

	art := s.history[s.historyIndex]
	s.mu.Unlock()

	s.emit(ctx, art)
	return nil
}

// prefetchLoop tops up the cache on a fixed cadence
func (s *Service) prefetchLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := s.clk.NewTicker(_prefetchInterval)
	defer ticker.Stop()

	s.logger.Debug("Prefetch loop started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Prefetch loop stopped")
			return
		case <-ticker.C:
			s.prefetchOne(ctx)
		}
	}
}

// prefetchOne adds a single artwork to the cache. The fetch happens outside
// the lock; the length is re-checked before pushing because a concurrent
// consumer may have refilled the cache in the meantime.
func (s *Service) prefetchOne(ctx context.Context) {
	s.mu.Lock()
	full := len(s.cache) >= _cacheSize
	s.mu.Unlock()
	if full {
		return
	}

	art, err := s.fetchFresh(ctx)
	if err != nil {
		s.logger.Warn("Prefetch failed", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cache) >= _cacheSize {
		return
	}
	s.cache = append(s.cache, *art)

	s.logger.Debug("Cached artwork",
		zap.String("id", art.ID),
		zap.String("title", art.Title),
		zap.Int("cached", len(s.cache)))
}

// fetchFresh fetches one artwork, re-rolling once when the first pick was
// shown within the repeat window. Best effort: history lookups never block
// a fetch from succeeding.
func (s *Service) fetchFresh(ctx context.Context) (*domain.Artwork, error) {
	art, err := fetchAny(ctx, s.logger, s.sources)
	if err != nil {
		return nil, err
	}
	if s.seen == nil {
		return art, nil
	}

	recent, err := s.seen.SeenRecently(ctx, art.ID, s.clk.Now())
	if err != nil {
		s.logger.Warn("History lookup failed", zap.Error(err))
		return art, nil
	}
	if !recent {
		return art, nil
	}

	s.logger.Debug("Artwork shown recently, fetching a replacement", zap.String("id", art.ID))
	replacement, err := fetchAny(ctx, s.logger, s.sources)
	if err != nil {
		return art, nil
	}
	return replacement, nil
}

// emit records the artwork as seen and publishes it to consumers.
// Non-blocking send: a slow consumer drops events rather than stalling
// navigation.
func (s *Service) emit(ctx context.Context, art domain.Artwork) {
	if s.seen != nil {
		if err := s.seen.MarkSeen(ctx, art, s.clk.Now()); err != nil {
			s.logger.Warn("Failed to record artwork in history", zap.Error(err))
		}
	}

	select {
	case s.events <- art:
		s.logger.Info("Artwork changed",
			zap.String("id", art.ID),
			zap.String("title", art.Title),
			zap.String("source", art.Source))
	default:
		s.logDropWarning()
	}
}

// logDropWarning warns about a full events channel, rate-limited to avoid
// log spam during rapid navigation
func (s *Service) logDropWarning() {
	s.mu.Lock()
	defer s.mu.Unlock()

	const warningInterval = 5 * time.Second
	now := s.clk.Now()

	if now.Sub(s.lastDropWarning) >= warningInterval {
		s.logger.Warn("Events channel full, dropping artwork change")
		s.lastDropWarning = now
	}
}
