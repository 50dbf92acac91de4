package response

import (
	"time"

	"github.com/pixelforge/imgtier/internal/domain/entity"
	"github.com/pixelforge/imgtier/internal/pkg/pagination"
	"github.com/pixelforge/imgtier/internal/usecase/upload"
)

type ImageResponse struct {
	ID           string    `json:"id"`
	Key          string    `json:"key"`
	OriginalLink *string   `json:"original_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ImageFromEntity(image *entity.Image) ImageResponse {
	return ImageResponse{
		ID:           image.ID.String(),
		Key:          image.Key,
		OriginalLink: image.OriginalLink,
		CreatedAt:    image.CreatedAt,
	}
}

type UploadResponse struct {
	Message    string              `json:"message"`
	Image      ImageResponse       `json:"image"`
	Thumbnails []ThumbnailResponse `json:"thumbnails"`
	LinkError  string              `json:"link_error,omitempty"`
}

func UploadResultToResponse(result *upload.UploadResult) UploadResponse {
	resp := UploadResponse{
		Message:    "Image uploaded successfully.",
		Image:      ImageFromEntity(result.Image),
		Thumbnails: ThumbnailsFromEntities(result.Thumbnails),
	}
	if result.LinkError != nil {
		resp.LinkError = result.LinkError.Error()
	}
	return resp
}

type ImageDetailResponse struct {
	Image      ImageResponse       `json:"image"`
	Thumbnails []ThumbnailResponse `json:"thumbnails"`
}

type ImageListResponse struct {
	Images     []ImageResponse  `json:"images"`
	Pagination *pagination.Info `json:"pagination"`
}

func ImagesFromEntities(images []entity.Image) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for i := range images {
		out = append(out, ImageFromEntity(&images[i]))
	}
	return out
}
