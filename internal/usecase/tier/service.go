package tier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pixelforge/imgtier/internal/adapter/repository"
	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/domain/entity"
)

// Service manages entitlement profiles. Tiers are created and edited by
// administrative calls and only ever read during an upload.
type Service struct {
	tierRepo repository.TierRepository
	userRepo repository.UserRepository
}

func NewService(tierRepo repository.TierRepository, userRepo repository.UserRepository) *Service {
	return &Service{tierRepo: tierRepo, userRepo: userRepo}
}

type CreateInput struct {
	Name               string
	ThumbnailSizes     []int
	AllowExpiringLinks bool
	AllowOriginalLink  bool
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Tier, error) {
	if err := validate(input.Name, input.ThumbnailSizes); err != nil {
		return nil, err
	}

	tier := entity.NewTier(input.Name, input.ThumbnailSizes, input.AllowExpiringLinks, input.AllowOriginalLink)
	if err := s.tierRepo.Create(ctx, tier); err != nil {
		return nil, err
	}
	return tier, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tier, error) {
	return s.tierRepo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]entity.Tier, error) {
	return s.tierRepo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input CreateInput) (*entity.Tier, error) {
	if err := validate(input.Name, input.ThumbnailSizes); err != nil {
		return nil, err
	}

	tier, err := s.tierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tier.Name = input.Name
	tier.ThumbnailSizes = input.ThumbnailSizes
	tier.AllowExpiringLinks = input.AllowExpiringLinks
	tier.AllowOriginalLink = input.AllowOriginalLink
	tier.UpdatedAt = time.Now().UTC()

	if err := s.tierRepo.Update(ctx, tier); err != nil {
		return nil, err
	}
	return tier, nil
}

// Delete rejects removal of a tier that users are still assigned to.
// Cascading would silently strip entitlements, so it is a conflict instead.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.userRepo.CountByTierID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrTierInUse
	}
	return s.tierRepo.Delete(ctx, id)
}

func validate(name string, sizes []int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", domain.ErrInvalidTier)
	}
	for _, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("%w: thumbnail sizes must be positive, got %d", domain.ErrInvalidTier, size)
		}
	}
	return nil
}
