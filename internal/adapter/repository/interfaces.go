package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixelforge/imgtier/internal/domain/entity"
	"github.com/pixelforge/imgtier/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByTierID(ctx context.Context, tierID uuid.UUID) (int, error)
}

type TierRepository interface {
	Create(ctx context.Context, tier *entity.Tier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tier, error)
	GetByName(ctx context.Context, name string) (*entity.Tier, error)
	List(ctx context.Context) ([]entity.Tier, error)
	Update(ctx context.Context, tier *entity.Tier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ImageRepository interface {
	// CreateWithThumbnails persists an image and its full thumbnail set in
	// one transaction. Either every row commits or none does.
	CreateWithThumbnails(ctx context.Context, image *entity.Image, thumbnails []entity.Thumbnail) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Image, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]entity.Image, *pagination.Info, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ThumbnailRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Thumbnail, error)
	GetByImageAndSize(ctx context.Context, imageID uuid.UUID, size int) (*entity.Thumbnail, error)
	ListByImageID(ctx context.Context, imageID uuid.UUID) ([]entity.Thumbnail, error)
	List(ctx context.Context, params pagination.Params) ([]entity.Thumbnail, *pagination.Info, error)
	SetExpiringLink(ctx context.Context, thumbnail *entity.Thumbnail) error
	Delete(ctx context.Context, id uuid.UUID) error
}
