package entity

import (
	"time"

	"github.com/google/uuid"
)

// Image is one normalized upload. Key locates the canonical JPEG in the
// asset store. OriginalLink is set at most once, during the upload that
// created the image, and only when the owner's tier permits it.
type Image struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Key          string
	OriginalLink *string
	CreatedAt    time.Time
}

func NewImage(userID uuid.UUID) *Image {
	return &Image{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}
