package entity

import (
	"time"

	"github.com/google/uuid"
)

// Thumbnail is one derived raster. Size is the bounding edge used when
// resizing; for a given image each configured tier size yields exactly one
// thumbnail. ExpiringLink and LinkExpiresAt are set together, at most once.
type Thumbnail struct {
	ID            uuid.UUID
	ImageID       uuid.UUID
	Size          int
	Key           string
	ExpiringLink  *string
	LinkExpiresAt *time.Time
	CreatedAt     time.Time
}

func NewThumbnail(imageID uuid.UUID, size int, key string) *Thumbnail {
	return &Thumbnail{
		ID:        uuid.New(),
		ImageID:   imageID,
		Size:      size,
		Key:       key,
		CreatedAt: time.Now().UTC(),
	}
}

func (t *Thumbnail) AttachLink(token string, expiresAt time.Time) {
	t.ExpiringLink = &token
	t.LinkExpiresAt = &expiresAt
}
