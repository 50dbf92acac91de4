package upload

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/pixelforge/imgtier/internal/adapter/repository"
	"github.com/pixelforge/imgtier/internal/adapter/storage"
	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/domain/entity"
	"github.com/pixelforge/imgtier/internal/pkg/pagination"
)

const canonicalContentType = "image/jpeg"

// Service orchestrates one upload: normalize, derive the tier's thumbnail
// set, persist everything atomically, then optionally issue an expiring
// link. Thumbnail derivation is all-or-nothing; link issuance is
// best-effort once the upload has committed.
type Service struct {
	userRepo      repository.UserRepository
	tierRepo      repository.TierRepository
	imageRepo     repository.ImageRepository
	thumbnailRepo repository.ThumbnailRepository
	assets        storage.AssetStorage
	normalizer    storage.ImageNormalizer
	thumbnailer   storage.ThumbnailGenerator
	signer        storage.LinkSigner
}

func NewService(
	userRepo repository.UserRepository,
	tierRepo repository.TierRepository,
	imageRepo repository.ImageRepository,
	thumbnailRepo repository.ThumbnailRepository,
	assets storage.AssetStorage,
	normalizer storage.ImageNormalizer,
	thumbnailer storage.ThumbnailGenerator,
	signer storage.LinkSigner,
) *Service {
	return &Service{
		userRepo:      userRepo,
		tierRepo:      tierRepo,
		imageRepo:     imageRepo,
		thumbnailRepo: thumbnailRepo,
		assets:        assets,
		normalizer:    normalizer,
		thumbnailer:   thumbnailer,
		signer:        signer,
	}
}

type UploadInput struct {
	UserID   uuid.UUID
	Data     []byte
	Filename string
	// OriginalURL is recorded on the image only when the tier permits it.
	OriginalURL string
	// ExpirySeconds is the raw caller-supplied value; empty means no
	// expiring link was requested. Coercion happens at issuance so a bad
	// value cannot fail an otherwise-successful upload.
	ExpirySeconds string
}

type UploadResult struct {
	Image      *entity.Image
	Thumbnails []entity.Thumbnail
	// LinkError reports a failed link issuance. The upload itself has
	// already committed when it is set.
	LinkError error
}

func (s *Service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	tier, err := s.tierOf(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	normalized, err := s.normalizer.Normalize(input.Data, input.Filename)
	if err != nil {
		return nil, err
	}

	image := entity.NewImage(input.UserID)
	image.Key = fmt.Sprintf("images/%s.jpg", image.ID)

	var storedKeys []string
	if err := s.assets.Upload(ctx, image.Key, bytes.NewReader(normalized.Data), canonicalContentType, int64(len(normalized.Data))); err != nil {
		return nil, fmt.Errorf("storing canonical image: %w", err)
	}
	storedKeys = append(storedKeys, image.Key)

	sizes := tier.UniqueSizes()
	thumbnails := make([]entity.Thumbnail, 0, len(sizes))
	for _, size := range sizes {
		data, _, _, err := s.thumbnailer.Generate(normalized.Source, size)
		if err != nil {
			s.discardAssets(ctx, storedKeys)
			return nil, err
		}

		key := fmt.Sprintf("thumbnails/%s/%d.jpg", image.ID, size)
		if err := s.assets.Upload(ctx, key, bytes.NewReader(data), canonicalContentType, int64(len(data))); err != nil {
			s.discardAssets(ctx, storedKeys)
			return nil, fmt.Errorf("storing thumbnail (size %d): %w", size, err)
		}
		storedKeys = append(storedKeys, key)

		thumbnails = append(thumbnails, *entity.NewThumbnail(image.ID, size, key))
	}

	if tier.AllowOriginalLink && input.OriginalURL != "" {
		image.OriginalLink = &input.OriginalURL
	}

	if err := s.imageRepo.CreateWithThumbnails(ctx, image, thumbnails); err != nil {
		s.discardAssets(ctx, storedKeys)
		return nil, fmt.Errorf("committing upload: %w", err)
	}

	result := &UploadResult{Image: image, Thumbnails: thumbnails}

	if input.ExpirySeconds != "" && tier.AllowExpiringLinks {
		result.LinkError = s.issueLink(ctx, input.ExpirySeconds, result)
	}

	return result, nil
}

// tierOf resolves the uploader's tier. A user without an assigned tier
// cannot upload.
func (s *Service) tierOf(ctx context.Context, userID uuid.UUID) (*entity.Tier, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TierID == nil {
		return nil, domain.ErrTierNotFound
	}
	return s.tierRepo.GetByID(ctx, *user.TierID)
}

// issueLink signs a token for the thumbnail at the first configured size.
// The target is fixed: the original product always linked the first size,
// and read paths depend on that.
func (s *Service) issueLink(ctx context.Context, expiryRaw string, result *UploadResult) error {
	if len(result.Thumbnails) == 0 {
		return domain.ErrThumbnailNotFound
	}
	target := &result.Thumbnails[0]

	ttl, err := strconv.ParseInt(expiryRaw, 10, 64)
	if err != nil {
		return domain.ErrInvalidDuration
	}

	token, expiresAt, err := s.signer.Issue(target.ID, ttl)
	if err != nil {
		return err
	}

	target.AttachLink(token, expiresAt)
	if err := s.thumbnailRepo.SetExpiringLink(ctx, target); err != nil {
		return fmt.Errorf("persisting expiring link: %w", err)
	}
	return nil
}

func (s *Service) discardAssets(ctx context.Context, keys []string) {
	for _, key := range keys {
		_ = s.assets.Delete(ctx, key)
	}
}

func (s *Service) GetImage(ctx context.Context, userID, imageID uuid.UUID) (*entity.Image, []entity.Thumbnail, error) {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, nil, err
	}
	if image.UserID != userID {
		return nil, nil, domain.ErrForbidden
	}

	thumbnails, err := s.thumbnailRepo.ListByImageID(ctx, imageID)
	if err != nil {
		return nil, nil, err
	}
	return image, thumbnails, nil
}

func (s *Service) ListImages(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]entity.Image, *pagination.Info, error) {
	return s.imageRepo.ListByUserID(ctx, userID, params)
}

// DeleteImage removes the image record (thumbnail rows cascade with it)
// and then clears the stored assets.
func (s *Service) DeleteImage(ctx context.Context, userID, imageID uuid.UUID) error {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if image.UserID != userID {
		return domain.ErrForbidden
	}

	thumbnails, err := s.thumbnailRepo.ListByImageID(ctx, imageID)
	if err != nil {
		return err
	}

	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		return err
	}

	keys := []string{image.Key}
	for _, t := range thumbnails {
		keys = append(keys, t.Key)
	}
	s.discardAssets(ctx, keys)
	return nil
}
