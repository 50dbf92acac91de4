package request

type TierRequest struct {
	Name               string `json:"name" binding:"required,min=1,max=255"`
	ThumbnailSizes     []int  `json:"thumbnail_sizes" binding:"required"`
	AllowExpiringLinks bool   `json:"allow_expiring_links"`
	AllowOriginalLink  bool   `json:"allow_original_link"`
}
