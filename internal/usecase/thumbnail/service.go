package thumbnail

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pixelforge/imgtier/internal/adapter/repository"
	"github.com/pixelforge/imgtier/internal/adapter/storage"
	"github.com/pixelforge/imgtier/internal/domain/entity"
	"github.com/pixelforge/imgtier/internal/pkg/pagination"
)

const signedURLValidity = 15 * time.Minute

// Service serves thumbnail read paths, including resolution of expiring
// link tokens into fetchable asset URLs.
type Service struct {
	thumbnailRepo repository.ThumbnailRepository
	assets        storage.AssetStorage
	signer        storage.LinkSigner
}

func NewService(thumbnailRepo repository.ThumbnailRepository, assets storage.AssetStorage, signer storage.LinkSigner) *Service {
	return &Service{thumbnailRepo: thumbnailRepo, assets: assets, signer: signer}
}

func (s *Service) List(ctx context.Context, params pagination.Params) ([]entity.Thumbnail, *pagination.Info, error) {
	return s.thumbnailRepo.List(ctx, params)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entity.Thumbnail, error) {
	return s.thumbnailRepo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	thumbnail, err := s.thumbnailRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.thumbnailRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.assets.Delete(ctx, thumbnail.Key)
	return nil
}

// Resolve verifies an expiring link token and exchanges it for a short-lived
// presigned URL to the thumbnail asset. Token verification needs no
// datastore access; the lookup only recovers the asset key.
func (s *Service) Resolve(ctx context.Context, token string) (string, error) {
	thumbnailID, err := s.signer.Verify(token)
	if err != nil {
		return "", err
	}

	thumbnail, err := s.thumbnailRepo.GetByID(ctx, thumbnailID)
	if err != nil {
		return "", err
	}

	url, err := s.assets.GetSignedURL(thumbnail.Key, signedURLValidity)
	if err != nil {
		return "", fmt.Errorf("resolving thumbnail url: %w", err)
	}
	return url, nil
}
