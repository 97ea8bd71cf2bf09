package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // GIF format support
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/domain"
)

// Decoder turns artwork payloads into screen-bounded images
type Decoder struct {
	logger *zap.Logger
	res    *domain.ScreenResolution
}

// NewDecoder creates a decoder that fits images within the given resolution
func NewDecoder(logger *zap.Logger, res *domain.ScreenResolution) *Decoder {
	return &Decoder{
		logger: logger,
		res:    res,
	}
}

// Decode unwraps the artwork's base64 payload, decodes the image and scales
// it down to fit the screen. Aspect ratio is preserved; artwork is never
// cropped or upscaled.
func (d *Decoder) Decode(ctx context.Context, art domain.Artwork) (*domain.DecodedImage, error) {
	if art.ImageBase64 == "" {
		return nil, fmt.Errorf("artwork %s has no image payload", art.ID)
	}

	payload, err := payloadOf(art.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("artwork %s: %w", art.ID, err)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	// 1. Decode image from bytes
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Validate image dimensions before any resize math
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	// 2. Fit within the screen
	fitted := imaging.Fit(img, d.res.Width, d.res.Height, imaging.Lanczos)

	d.logger.Debug("Image decoded",
		zap.String("id", art.ID),
		zap.String("format", format),
		zap.Int("w", fitted.Bounds().Dx()),
		zap.Int("h", fitted.Bounds().Dy()))

	return &domain.DecodedImage{
		ArtworkID: art.ID,
		Image:     fitted,
	}, nil
}

// payloadOf strips the data URI wrapper from an artwork payload.
// Payloads normally arrive as data:<mime>;base64,<data>; bare base64 is
// accepted too.
func payloadOf(raw string) (string, error) {
	if !strings.HasPrefix(raw, "data:") {
		return raw, nil
	}
	idx := strings.Index(raw, "base64,")
	if idx < 0 {
		return "", fmt.Errorf("payload is not base64 encoded")
	}
	return raw[idx+len("base64,"):], nil
}
