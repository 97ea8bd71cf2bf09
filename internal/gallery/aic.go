package gallery

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"

	"github.com/easel-works/easel/internal/domain"
	"go.uber.org/zap"
)

// _defaultIIIFURL is used when a search response omits its IIIF base
const _defaultIIIFURL = "https://www.artic.edu/iiif/2"

var _aicTerms = []string{
	"painting", "landscape", "impressionist", "modern", "watercolor",
	"oil", "portrait", "nature", "classical", "abstract",
}

// aicSource draws from the Art Institute of Chicago public API
type aicSource struct {
	logger  *zap.Logger
	client  *Client
	baseURL string
}

func newAICSource(logger *zap.Logger, client *Client) *aicSource {
	return &aicSource{
		logger:  logger,
		client:  client,
		baseURL: "https://api.artic.edu/api/v1",
	}
}

func (s *aicSource) Name() string { return "AIC" }

type aicSearchResponse struct {
	Data   []aicArtwork `json:"data"`
	Config aicConfig    `json:"config"`
}

type aicConfig struct {
	IIIFURL string `json:"iiif_url"`
}

type aicArtwork struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	ArtistDisplay string `json:"artist_display"`
	DateDisplay   string `json:"date_display"`
	MediumDisplay string `json:"medium_display"`
	ImageID       string `json:"image_id"`
}

func (s *aicSource) Fetch(ctx context.Context) (*domain.Artwork, error) {
	term := _aicTerms[rand.IntN(len(_aicTerms))]
	page := 1 + rand.IntN(5)
	searchURL := fmt.Sprintf(
		"%s/artworks/search?q=%s&fields=id,title,artist_display,date_display,medium_display,image_id&limit=20&page=%d",
		s.baseURL, url.QueryEscape(term), page)

	header := http.Header{}
	header.Set("AIC-User-Agent", _userAgent)

	var search aicSearchResponse
	if err := s.client.getJSON(ctx, searchURL, header, &search); err != nil {
		return nil, fmt.Errorf("aic search failed: %w", err)
	}

	iiifURL := search.Config.IIIFURL
	if iiifURL == "" {
		iiifURL = _defaultIIIFURL
	}

	var withImages []aicArtwork
	for _, art := range search.Data {
		if art.ImageID != "" {
			withImages = append(withImages, art)
		}
	}
	if len(withImages) == 0 {
		return nil, fmt.Errorf("aic search returned no illustrated artworks for %q", term)
	}

	for _, art := range sampleN(withImages, 5) {
		imageURL := fmt.Sprintf("%s/%s/full/843,/0/default.jpg", iiifURL, art.ImageID)
		image, err := s.client.downloadImage(ctx, imageURL)
		if err != nil {
			s.logger.Debug("AIC image download failed", zap.Int64("id", art.ID), zap.Error(err))
			continue
		}

		return &domain.Artwork{
			ID:          fmt.Sprintf("aic-%d", art.ID),
			Title:       orDefault(stripHTML(art.Title), "Untitled"),
			Artist:      orDefault(art.ArtistDisplay, "Unknown Artist"),
			Date:        art.DateDisplay,
			Medium:      art.MediumDisplay,
			Source:      "Art Institute of Chicago",
			ImageBase64: image,
		}, nil
	}

	return nil, fmt.Errorf("aic returned no usable artwork for %q", term)
}
