package response

import (
	"time"

	"github.com/pixelforge/imgtier/internal/domain/entity"
)

type TierResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	ThumbnailSizes     []int     `json:"thumbnail_sizes"`
	AllowExpiringLinks bool      `json:"allow_expiring_links"`
	AllowOriginalLink  bool      `json:"allow_original_link"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func TierFromEntity(tier *entity.Tier) TierResponse {
	return TierResponse{
		ID:                 tier.ID.String(),
		Name:               tier.Name,
		ThumbnailSizes:     tier.ThumbnailSizes,
		AllowExpiringLinks: tier.AllowExpiringLinks,
		AllowOriginalLink:  tier.AllowOriginalLink,
		CreatedAt:          tier.CreatedAt,
		UpdatedAt:          tier.UpdatedAt,
	}
}

func TiersFromEntities(tiers []entity.Tier) []TierResponse {
	out := make([]TierResponse, 0, len(tiers))
	for i := range tiers {
		out = append(out, TierFromEntity(&tiers[i]))
	}
	return out
}
