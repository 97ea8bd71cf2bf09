package gallery

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/url"

	"github.com/easel-works/easel/internal/domain"
	"go.uber.org/zap"
)

var _cmaTerms = []string{
	"painting", "landscape", "portrait", "impressionist", "modern",
	"still life", "abstract", "nature", "classical", "oil",
}

// cmaSource draws from the Cleveland Museum of Art open access API
type cmaSource struct {
	logger  *zap.Logger
	client  *Client
	baseURL string
}

func newCMASource(logger *zap.Logger, client *Client) *cmaSource {
	return &cmaSource{
		logger:  logger,
		client:  client,
		baseURL: "https://openaccess-api.clevelandart.org/api",
	}
}

func (s *cmaSource) Name() string { return "CMA" }

type cmaSearchResponse struct {
	Data []cmaArtwork `json:"data"`
}

type cmaArtwork struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	CreationDate string       `json:"creation_date"`
	Technique    string       `json:"technique"`
	Creators     []cmaCreator `json:"creators"`
	Images       cmaImages    `json:"images"`
}

type cmaCreator struct {
	Description string `json:"description"`
}

type cmaImages struct {
	Web cmaImage `json:"web"`
}

type cmaImage struct {
	URL string `json:"url"`
}

func (s *cmaSource) Fetch(ctx context.Context) (*domain.Artwork, error) {
	term := _cmaTerms[rand.IntN(len(_cmaTerms))]
	skip := rand.IntN(100)
	searchURL := fmt.Sprintf(
		"%s/artworks/?q=%s&has_image=1&cc0=1&type=Painting&limit=20&skip=%d",
		s.baseURL, url.QueryEscape(term), skip)

	var search cmaSearchResponse
	if err := s.client.getJSON(ctx, searchURL, nil, &search); err != nil {
		return nil, fmt.Errorf("cma search failed: %w", err)
	}

	var withImages []cmaArtwork
	for _, art := range search.Data {
		if art.Images.Web.URL != "" {
			withImages = append(withImages, art)
		}
	}
	if len(withImages) == 0 {
		return nil, fmt.Errorf("cma search returned no illustrated artworks for %q", term)
	}

	for _, art := range sampleN(withImages, 5) {
		image, err := s.client.downloadImage(ctx, art.Images.Web.URL)
		if err != nil {
			s.logger.Debug("CMA image download failed", zap.Int64("id", art.ID), zap.Error(err))
			continue
		}

		artist := "Unknown Artist"
		if len(art.Creators) > 0 {
			artist = orDefault(art.Creators[0].Description, "Unknown Artist")
		}

		return &domain.Artwork{
			ID:          fmt.Sprintf("cma-%d", art.ID),
			Title:       orDefault(stripHTML(art.Title), "Untitled"),
			Artist:      artist,
			Date:        art.CreationDate,
			Medium:      art.Technique,
			Source:      "Cleveland Museum of Art",
			ImageBase64: image,
		}, nil
	}

	return nil, fmt.Errorf("cma returned no usable artwork for %q", term)
}
