package gallery

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/url"

	"github.com/easel-works/easel/internal/domain"
	"go.uber.org/zap"
)

var _metTerms = []string{
	"painting", "landscape", "portrait", "still life", "sculpture",
	"impressionism", "renaissance", "abstract", "nature", "mythology",
}

// metSource draws from the Metropolitan Museum of Art open access API
type metSource struct {
	logger  *zap.Logger
	client  *Client
	baseURL string
}

func newMetSource(logger *zap.Logger, client *Client) *metSource {
	return &metSource{
		logger:  logger,
		client:  client,
		baseURL: "https://collectionapi.metmuseum.org/public/collection/v1",
	}
}

func (s *metSource) Name() string { return "Met" }

type metSearchResponse struct {
	ObjectIDs []int64 `json:"objectIDs"`
}

type metObjectResponse struct {
	ObjectID          int64  `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ObjectDate        string `json:"objectDate"`
	Medium            string `json:"medium"`
	PrimaryImage      string `json:"primaryImage"`
}

func (s *metSource) Fetch(ctx context.Context) (*domain.Artwork, error) {
	term := _metTerms[rand.IntN(len(_metTerms))]
	searchURL := fmt.Sprintf("%s/search?hasImages=true&q=%s", s.baseURL, url.QueryEscape(term))

	var search metSearchResponse
	if err := s.client.getJSON(ctx, searchURL, nil, &search); err != nil {
		return nil, fmt.Errorf("met search failed: %w", err)
	}
	if len(search.ObjectIDs) == 0 {
		return nil, fmt.Errorf("met search returned no results for %q", term)
	}

	// Not every object exposes a public image, so try a handful of candidates
	for _, id := range sampleN(search.ObjectIDs, 5) {
		var obj metObjectResponse
		objectURL := fmt.Sprintf("%s/objects/%d", s.baseURL, id)
		if err := s.client.getJSON(ctx, objectURL, nil, &obj); err != nil {
			s.logger.Debug("Met object lookup failed", zap.Int64("id", id), zap.Error(err))
			continue
		}
		if obj.PrimaryImage == "" {
			continue
		}

		image, err := s.client.downloadImage(ctx, obj.PrimaryImage)
		if err != nil {
			s.logger.Debug("Met image download failed", zap.Int64("id", id), zap.Error(err))
			continue
		}

		return &domain.Artwork{
			ID:          fmt.Sprintf("met-%d", obj.ObjectID),
			Title:       orDefault(stripHTML(obj.Title), "Untitled"),
			Artist:      orDefault(obj.ArtistDisplayName, "Unknown Artist"),
			Date:        obj.ObjectDate,
			Medium:      obj.Medium,
			Source:      "The Metropolitan Museum of Art",
			ImageBase64: image,
		}, nil
	}

	return nil, fmt.Errorf("met returned no usable artwork for %q", term)
}
