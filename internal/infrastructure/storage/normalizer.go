package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"path"
	"strings"

	"github.com/pixelforge/imgtier/internal/adapter/storage"
	"github.com/pixelforge/imgtier/internal/domain"
)

const JPEGQuality = 85

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// Normalizer converts uploads into the canonical form all thumbnails are
// derived from: opaque RGB, JPEG-encoded at the default quality.
type Normalizer struct {
	quality int
}

func NewNormalizer() *Normalizer {
	return &Normalizer{quality: JPEGQuality}
}

// Normalize validates the filename extension, decodes the bytes and
// re-encodes them as JPEG. The extension gates acceptance before any decode
// attempt; decode failures surface separately because the extension can lie
// about the content.
func (n *Normalizer) Normalize(data []byte, filename string) (*storage.NormalizedImage, error) {
	ext := strings.ToLower(path.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeFailed, err)
	}

	img = flattenAlpha(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: n.quality}); err != nil {
		return nil, fmt.Errorf("encoding canonical jpeg: %w", err)
	}

	bounds := img.Bounds()
	return &storage.NormalizedImage{
		Data:   buf.Bytes(),
		Source: img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// flattenAlpha drops the alpha channel of a translucent image, keeping the
// raw RGB values rather than compositing onto a background.
func flattenAlpha(img image.Image) image.Image {
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		return img
	}

	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return out
}
