package gallery

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// _maxImageSize limits downloads to 10MB to prevent memory issues
	_maxImageSize = 10 * 1024 * 1024

	// _minImageSize rejects bodies too small to be a real reproduction;
	// museum CDNs occasionally serve tiny error pages with an image content type
	_minImageSize = 1000

	_userAgent = "easel/0.1 (Terminal Art Frame)"
)

// Client is the HTTP layer shared by every museum source
type Client struct {
	logger *zap.Logger
	client *http.Client
}

// NewClient creates a Client with the given request timeout
func NewClient(logger *zap.Logger, timeout time.Duration) *Client {
	return &Client{
		logger: logger,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// getJSON performs a GET request and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, url string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", _userAgent)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// downloadImage fetches an image and returns it encoded as a data URI.
// The response must carry an image content type and a body of at least
// _minImageSize bytes.
func (c *Client) downloadImage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", _userAgent)
	if referer := refererFor(url); referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("invalid content type: %s", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, _maxImageSize))
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	if len(data) < _minImageSize {
		return "", fmt.Errorf("image too small: %d bytes", len(data))
	}

	mime := strings.TrimSpace(strings.Split(contentType, ";")[0])

	c.logger.Debug("Image fetched successfully",
		zap.String("url", url),
		zap.Int("size", len(data)),
		zap.String("contentType", mime))

	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}

// refererFor returns the Referer to send for a given image URL.
// The Art Institute's IIIF server rejects requests without one.
func refererFor(url string) string {
	if strings.Contains(url, "artic.edu") {
		return "https://www.artic.edu/"
	}
	return ""
}
