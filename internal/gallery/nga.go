package gallery

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/easel-works/easel/internal/domain"
	"go.uber.org/zap"
)

// The National Gallery has no search API, so a small curated catalog of
// open access highlights ships with the binary.
//
//go:embed resources/nga_catalog.json
var ngaCatalogJSON []byte

type ngaEntry struct {
	UUID   string `json:"uuid"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Date   string `json:"date"`
	Medium string `json:"medium"`
}

// ngaSource serves works from the National Gallery of Art IIIF endpoint
type ngaSource struct {
	logger  *zap.Logger
	client  *Client
	iiifURL string
	catalog []ngaEntry
}

func newNGASource(logger *zap.Logger, client *Client) (*ngaSource, error) {
	var catalog []ngaEntry
	if err := json.Unmarshal(ngaCatalogJSON, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse embedded nga catalog: %w", err)
	}

	return &ngaSource{
		logger:  logger,
		client:  client,
		iiifURL: "https://api.nga.gov/iiif",
		catalog: catalog,
	}, nil
}

func (s *ngaSource) Name() string { return "NGA" }

func (s *ngaSource) Fetch(ctx context.Context) (*domain.Artwork, error) {
	if len(s.catalog) == 0 {
		return nil, fmt.Errorf("nga catalog is empty")
	}

	for _, entry := range sampleN(s.catalog, 5) {
		imageURL := fmt.Sprintf("%s/%s/full/!843,843/0/default.jpg", s.iiifURL, entry.UUID)
		image, err := s.client.downloadImage(ctx, imageURL)
		if err != nil {
			s.logger.Debug("NGA image download failed", zap.String("uuid", entry.UUID), zap.Error(err))
			continue
		}

		return &domain.Artwork{
			ID:          fmt.Sprintf("nga-%s", entry.UUID),
			Title:       orDefault(entry.Title, "Untitled"),
			Artist:      orDefault(entry.Artist, "Unknown Artist"),
			Date:        entry.Date,
			Medium:      entry.Medium,
			Source:      "National Gallery of Art",
			ImageBase64: image,
		}, nil
	}

	return nil, fmt.Errorf("nga returned no usable artwork")
}
