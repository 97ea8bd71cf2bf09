package gallery

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/easel-works/easel/internal/domain"
	"go.uber.org/zap"
)

// source produces one artwork from a single museum collection
type source interface {
	Name() string
	Fetch(ctx context.Context) (*domain.Artwork, error)
}

// fetchAny tries each source in rotation, starting from a random offset so
// no single museum dominates the frame. Returns the first success.
func fetchAny(ctx context.Context, logger *zap.Logger, sources []source) (*domain.Artwork, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no artwork sources configured")
	}

	start := rand.IntN(len(sources))
	var lastErr error
	for i := 0; i < len(sources); i++ {
		src := sources[(start+i)%len(sources)]

		art, err := src.Fetch(ctx)
		if err != nil {
			logger.Warn("Artwork source failed",
				zap.String("source", src.Name()),
				zap.Error(err))
			lastErr = err
			continue
		}
		return art, nil
	}

	return nil, fmt.Errorf("all artwork sources failed: %w", lastErr)
}

// sampleN returns up to n elements drawn randomly from items
func sampleN[T any](items []T, n int) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// stripHTML removes markup tags from museum-supplied titles
func stripHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// orDefault returns fallback when value is empty or whitespace
func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
