package storage

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/pixelforge/imgtier/internal/domain"
)

// Thumbnailer scales canonical images down to fit a size×size box.
type Thumbnailer struct {
	quality int
}

func NewThumbnailer() *Thumbnailer {
	return &Thumbnailer{quality: JPEGQuality}
}

// Generate resizes src so that neither dimension exceeds size, preserving
// aspect ratio and never upscaling, then JPEG-encodes the result. Returns
// the encoded bytes and the final dimensions.
func (t *Thumbnailer) Generate(src image.Image, size int) ([]byte, int, int, error) {
	if src == nil || size <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: invalid source or size %d", domain.ErrThumbnailGeneration, size)
	}

	thumb := imaging.Fit(src, size, size, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(t.quality)); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", domain.ErrThumbnailGeneration, err)
	}

	bounds := thumb.Bounds()
	return buf.Bytes(), bounds.Dx(), bounds.Dy(), nil
}
