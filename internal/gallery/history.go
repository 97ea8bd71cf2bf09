package gallery

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/easel-works/easel/internal/domain"
)

const _createSeenTable = `
CREATE TABLE IF NOT EXISTS seen_artworks (
	artwork_id TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	title      TEXT NOT NULL,
	seen_at    INTEGER NOT NULL
)`

// SeenStore records which artworks have been displayed so that recently
// shown pieces can be skipped when fetching fresh ones.
type SeenStore struct {
	logger *zap.Logger
	db     *sql.DB
	window time.Duration
}

// OpenSeenStore opens (or creates) the history database at path. The window
// controls how long an artwork counts as recently shown.
func OpenSeenStore(logger *zap.Logger, path string, window time.Duration) (*SeenStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(_createSeenTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	logger.Debug("History database opened", zap.String("path", path))

	return &SeenStore{
		logger: logger,
		db:     db,
		window: window,
	}, nil
}

// MarkSeen records that an artwork was displayed at the given time
func (s *SeenStore) MarkSeen(ctx context.Context, art domain.Artwork, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO seen_artworks (artwork_id, source, title, seen_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(artwork_id) DO UPDATE SET seen_at = excluded.seen_at`,
		art.ID, art.Source, art.Title, at.Unix())
	if err != nil {
		return fmt.Errorf("failed to record artwork: %w", err)
	}
	return nil
}

// SeenRecently reports whether the artwork was displayed within the window
func (s *SeenStore) SeenRecently(ctx context.Context, artworkID string, now time.Time) (bool, error) {
	if s.window <= 0 {
		return false, nil
	}

	cutoff := now.Add(-s.window).Unix()
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM seen_artworks WHERE artwork_id = ? AND seen_at >= ?`,
		artworkID, cutoff).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query history: %w", err)
	}
	return count > 0, nil
}

// Prune drops entries that fell out of the window
func (s *SeenStore) Prune(ctx context.Context, now time.Time) error {
	if s.window <= 0 {
		return nil
	}

	cutoff := now.Add(-s.window).Unix()
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM seen_artworks WHERE seen_at < ?`, cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}

	if dropped, err := res.RowsAffected(); err == nil && dropped > 0 {
		s.logger.Debug("Pruned history entries", zap.Int64("dropped", dropped))
	}
	return nil
}

// Close releases the underlying database
func (s *SeenStore) Close() error {
	return s.db.Close()
}
