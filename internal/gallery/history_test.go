package gallery

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/domain"
)

func TestSeenStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	store, err := OpenSeenStore(zap.NewNop(), ":memory:", 72*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	art := domain.Artwork{ID: "met-436535", Source: "The Metropolitan Museum of Art", Title: "Wheat Field with Cypresses"}
	if err := store.MarkSeen(ctx, art, testEpoch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recent, err := store.SeenRecently(ctx, art.ID, testEpoch.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !recent {
		t.Error("expected the artwork to count as recently seen")
	}

	recent, err = store.SeenRecently(ctx, art.ID, testEpoch.Add(73*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recent {
		t.Error("expected the artwork to age out of the window")
	}

	recent, err = store.SeenRecently(ctx, "aic-27992", testEpoch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recent {
		t.Error("expected an unknown artwork to not be recent")
	}
}

func TestSeenStoreUpdatesTimestamp(t *testing.T) {
	ctx := context.Background()

	store, err := OpenSeenStore(zap.NewNop(), ":memory:", 72*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	art := domain.Artwork{ID: "cma-126769", Source: "Cleveland Museum of Art", Title: "Water Lilies"}
	if err := store.MarkSeen(ctx, art, testEpoch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.MarkSeen(ctx, art, testEpoch.Add(100*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recent, err := store.SeenRecently(ctx, art.ID, testEpoch.Add(101*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !recent {
		t.Error("expected the second sighting to refresh the timestamp")
	}
}

func TestSeenStoreZeroWindow(t *testing.T) {
	ctx := context.Background()

	store, err := OpenSeenStore(zap.NewNop(), ":memory:", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	art := domain.Artwork{ID: "nga-1", Source: "National Gallery of Art", Title: "The Skater"}
	if err := store.MarkSeen(ctx, art, testEpoch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recent, err := store.SeenRecently(ctx, art.ID, testEpoch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recent {
		t.Error("expected a zero window to disable recency checks")
	}
}

func TestSeenStorePrune(t *testing.T) {
	ctx := context.Background()

	store, err := OpenSeenStore(zap.NewNop(), ":memory:", 72*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	old := domain.Artwork{ID: "met-1", Source: "The Metropolitan Museum of Art", Title: "Old"}
	fresh := domain.Artwork{ID: "met-2", Source: "The Metropolitan Museum of Art", Title: "Fresh"}
	if err := store.MarkSeen(ctx, old, testEpoch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.MarkSeen(ctx, fresh, testEpoch.Add(100*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Prune(ctx, testEpoch.Add(100*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM seen_artworks`).Scan(&count); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected one surviving entry after prune, got %d", count)
	}
}

func TestSeenStorePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := OpenSeenStore(zap.NewNop(), path, 72*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	art := domain.Artwork{ID: "aic-27992", Source: "Art Institute of Chicago", Title: "A Sunday on La Grande Jatte"}
	if err := store.MarkSeen(ctx, art, testEpoch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reopened, err := OpenSeenStore(zap.NewNop(), path, 72*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reopened.Close()

	recent, err := reopened.SeenRecently(ctx, art.ID, testEpoch.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !recent {
		t.Error("expected the sighting to survive a reopen")
	}
}
