package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixelforge/imgtier/internal/domain/entity"
	"github.com/pixelforge/imgtier/internal/pkg/pagination"
	"github.com/pixelforge/imgtier/internal/usecase/auth"
	"github.com/pixelforge/imgtier/internal/usecase/tier"
	"github.com/pixelforge/imgtier/internal/usecase/upload"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.Token, *entity.User, error)
}

type TierService interface {
	Create(ctx context.Context, input tier.CreateInput) (*entity.Tier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tier, error)
	List(ctx context.Context) ([]entity.Tier, error)
	Update(ctx context.Context, id uuid.UUID, input tier.CreateInput) (*entity.Tier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UploadService interface {
	Upload(ctx context.Context, input upload.UploadInput) (*upload.UploadResult, error)
	GetImage(ctx context.Context, userID, imageID uuid.UUID) (*entity.Image, []entity.Thumbnail, error)
	ListImages(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]entity.Image, *pagination.Info, error)
	DeleteImage(ctx context.Context, userID, imageID uuid.UUID) error
}

type ThumbnailService interface {
	List(ctx context.Context, params pagination.Params) ([]entity.Thumbnail, *pagination.Info, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Thumbnail, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Resolve(ctx context.Context, token string) (string, error)
}
