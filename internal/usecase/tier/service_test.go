package tier_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/domain/entity"
	"github.com/pixelforge/imgtier/internal/mocks"
	"github.com/pixelforge/imgtier/internal/usecase/tier"
)

func newTierService(ctrl *gomock.Controller) (*tier.Service, *mocks.MockTierRepository, *mocks.MockUserRepository) {
	tierRepo := mocks.NewMockTierRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	return tier.NewService(tierRepo, userRepo), tierRepo, userRepo
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a tier with the given sizes and flags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, tierRepo, _ := newTierService(ctrl)
		tierRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		created, err := svc.Create(ctx, tier.CreateInput{
			Name:               "Premium",
			ThumbnailSizes:     []int{200, 400},
			AllowExpiringLinks: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Premium", created.Name)
		assert.Equal(t, []int{200, 400}, created.ThumbnailSizes)
		assert.True(t, created.AllowExpiringLinks)
		assert.False(t, created.AllowOriginalLink)
		assert.NotEqual(t, uuid.Nil, created.ID)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _ := newTierService(ctrl)

		_, err := svc.Create(ctx, tier.CreateInput{Name: "  ", ThumbnailSizes: []int{200}})
		assert.ErrorIs(t, err, domain.ErrInvalidTier)
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _ := newTierService(ctrl)

		_, err := svc.Create(ctx, tier.CreateInput{Name: "Bad", ThumbnailSizes: []int{200, 0}})
		assert.ErrorIs(t, err, domain.ErrInvalidTier)

		_, err = svc.Create(ctx, tier.CreateInput{Name: "Bad", ThumbnailSizes: []int{-100}})
		assert.ErrorIs(t, err, domain.ErrInvalidTier)
	})

	t.Run("propagates duplicate-name conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, tierRepo, _ := newTierService(ctrl)
		tierRepo.EXPECT().Create(ctx, gomock.Any()).Return(domain.ErrTierAlreadyExists)

		_, err := svc.Create(ctx, tier.CreateInput{Name: "Basic", ThumbnailSizes: []int{200}})
		assert.ErrorIs(t, err, domain.ErrTierAlreadyExists)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces sizes and flags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, tierRepo, _ := newTierService(ctrl)
		existing := entity.NewTier("Basic", []int{200}, false, false)
		tierRepo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)
		tierRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		updated, err := svc.Update(ctx, existing.ID, tier.CreateInput{
			Name:              "Enterprise",
			ThumbnailSizes:    []int{200, 400},
			AllowOriginalLink: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Enterprise", updated.Name)
		assert.Equal(t, []int{200, 400}, updated.ThumbnailSizes)
		assert.True(t, updated.AllowOriginalLink)
	})

	t.Run("returns not found for unknown tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, tierRepo, _ := newTierService(ctrl)
		id := uuid.New()
		tierRepo.EXPECT().GetByID(ctx, id).Return(nil, domain.ErrTierNotFound)

		_, err := svc.Update(ctx, id, tier.CreateInput{Name: "X", ThumbnailSizes: []int{100}})
		assert.ErrorIs(t, err, domain.ErrTierNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an unused tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, tierRepo, userRepo := newTierService(ctrl)
		id := uuid.New()
		userRepo.EXPECT().CountByTierID(ctx, id).Return(0, nil)
		tierRepo.EXPECT().Delete(ctx, id).Return(nil)

		assert.NoError(t, svc.Delete(ctx, id))
	})

	t.Run("refuses to delete a tier with assigned users", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, userRepo := newTierService(ctrl)
		id := uuid.New()
		userRepo.EXPECT().CountByTierID(ctx, id).Return(3, nil)

		assert.ErrorIs(t, svc.Delete(ctx, id), domain.ErrTierInUse)
	})
}
