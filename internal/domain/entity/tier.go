package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tier is an entitlement profile. It controls which thumbnail sizes an
// upload produces and which link features the owning user may use.
type Tier struct {
	ID                 uuid.UUID
	Name               string
	ThumbnailSizes     []int
	AllowExpiringLinks bool
	AllowOriginalLink  bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewTier(name string, sizes []int, allowExpiringLinks, allowOriginalLink bool) *Tier {
	now := time.Now().UTC()
	return &Tier{
		ID:                 uuid.New(),
		Name:               name,
		ThumbnailSizes:     sizes,
		AllowExpiringLinks: allowExpiringLinks,
		AllowOriginalLink:  allowOriginalLink,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// UniqueSizes returns the configured sizes with duplicates removed,
// preserving configuration order. Tiers are allowed to carry duplicate
// entries; the pipeline must not produce two thumbnails for one size.
func (t *Tier) UniqueSizes() []int {
	seen := make(map[int]struct{}, len(t.ThumbnailSizes))
	sizes := make([]int, 0, len(t.ThumbnailSizes))
	for _, s := range t.ThumbnailSizes {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		sizes = append(sizes, s)
	}
	return sizes
}
