package response

import (
	"time"

	"github.com/pixelforge/imgtier/internal/domain/entity"
	"github.com/pixelforge/imgtier/internal/pkg/pagination"
)

type ThumbnailResponse struct {
	ID            string     `json:"id"`
	ImageID       string     `json:"image_id"`
	Size          int        `json:"size"`
	Key           string     `json:"key"`
	ExpiringLink  *string    `json:"expiring_link,omitempty"`
	LinkExpiresAt *time.Time `json:"link_expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ThumbnailFromEntity(t *entity.Thumbnail) ThumbnailResponse {
	return ThumbnailResponse{
		ID:            t.ID.String(),
		ImageID:       t.ImageID.String(),
		Size:          t.Size,
		Key:           t.Key,
		ExpiringLink:  t.ExpiringLink,
		LinkExpiresAt: t.LinkExpiresAt,
		CreatedAt:     t.CreatedAt,
	}
}

func ThumbnailsFromEntities(thumbnails []entity.Thumbnail) []ThumbnailResponse {
	out := make([]ThumbnailResponse, 0, len(thumbnails))
	for i := range thumbnails {
		out = append(out, ThumbnailFromEntity(&thumbnails[i]))
	}
	return out
}

type ThumbnailListResponse struct {
	Thumbnails []ThumbnailResponse `json:"thumbnails"`
	Pagination *pagination.Info    `json:"pagination"`
}
