package render

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
)

// Each text row carries two pixel rows: the upper half block is colored
// with the top pixel in the foreground and the bottom pixel as background.
const _halfBlock = "▀"

// Renderer converts decoded images into ANSI rows for terminal display
type Renderer struct {
	logger  *zap.Logger
	profile termenv.Profile
}

// NewRenderer creates a renderer emitting colors for the given profile
func NewRenderer(logger *zap.Logger, profile termenv.Profile) *Renderer {
	return &Renderer{
		logger:  logger,
		profile: profile,
	}
}

// Render scales img to fit a cols x rows cell grid and returns one string
// per terminal row. The result is smaller than the grid when the aspect
// ratio demands it; callers center it.
func (r *Renderer) Render(img image.Image, cols, rows int) []string {
	if img == nil || cols <= 0 || rows <= 0 {
		return nil
	}

	fitted := imaging.Fit(img, cols, rows*2, imaging.Lanczos)
	bounds := fitted.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	lines := make([]string, 0, (h+1)/2)
	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		sb.Reset()
		for x := 0; x < w; x++ {
			cell := termenv.String(_halfBlock).
				Foreground(r.profile.Color(hexAt(fitted, x, y)))
			if y+1 < h {
				cell = cell.Background(r.profile.Color(hexAt(fitted, x, y+1)))
			}
			sb.WriteString(cell.String())
		}
		lines = append(lines, sb.String())
	}

	r.logger.Debug("Frame rendered",
		zap.Int("cols", w),
		zap.Int("rows", len(lines)))

	return lines
}

func hexAt(img *image.NRGBA, x, y int) string {
	c := img.NRGBAAt(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
