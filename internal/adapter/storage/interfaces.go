package storage

import (
	"context"
	"image"
	"io"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// AssetStorage is the object store holding canonical images and thumbnails.
type AssetStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	GetURL(key string) string
	GetSignedURL(key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// NormalizedImage is a canonical upload: opaque RGB, JPEG-encoded.
type NormalizedImage struct {
	Data   []byte
	Source image.Image
	Width  int
	Height int
}

type ImageNormalizer interface {
	Normalize(data []byte, filename string) (*NormalizedImage, error)
}

// ThumbnailGenerator scales a decoded canonical image to fit a size×size
// box, preserving aspect ratio, and returns JPEG bytes plus the final
// dimensions. It never upscales.
type ThumbnailGenerator interface {
	Generate(src image.Image, size int) ([]byte, int, int, error)
}

// LinkSigner issues and verifies tamper-evident, time-bounded thumbnail
// access tokens. Verification needs only the shared secret; no datastore
// lookup is involved.
type LinkSigner interface {
	Issue(thumbnailID uuid.UUID, ttlSeconds int64) (string, time.Time, error)
	Verify(token string) (uuid.UUID, error)
}
