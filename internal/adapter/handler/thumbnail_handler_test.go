package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pixelforge/imgtier/internal/adapter/handler"
	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/domain/entity"
	"github.com/pixelforge/imgtier/internal/mocks"
)

func thumbnailRouter(h *handler.ThumbnailHandler) *gin.Engine {
	router := setupRouter()
	router.GET("/thumbnails", h.List)
	router.GET("/thumbnails/:id", h.Get)
	router.DELETE("/thumbnails/:id", h.Delete)
	router.GET("/links/:token", h.ResolveLink)
	return router
}

func TestThumbnailHandler_Get(t *testing.T) {
	t.Run("returns a thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		thumbnailSvc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(thumbnailSvc))

		stored := entity.NewThumbnail(uuid.New(), 200, "thumbnails/x/200.jpg")
		thumbnailSvc.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)

		req := httptest.NewRequest(http.MethodGet, "/thumbnails/"+stored.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(200), resp["size"])
	})

	t.Run("returns not found for a missing thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		thumbnailSvc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(thumbnailSvc))

		id := uuid.New()
		thumbnailSvc.EXPECT().GetByID(gomock.Any(), id).Return(nil, domain.ErrThumbnailNotFound)

		req := httptest.NewRequest(http.MethodGet, "/thumbnails/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns error for invalid thumbnail ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		thumbnailSvc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(thumbnailSvc))

		req := httptest.NewRequest(http.MethodGet, "/thumbnails/invalid-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestThumbnailHandler_ResolveLink(t *testing.T) {
	t.Run("redirects to the asset url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		thumbnailSvc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(thumbnailSvc))

		thumbnailSvc.EXPECT().Resolve(gomock.Any(), "good-token").
			Return("https://assets.example.com/thumbnails/x/200.jpg?sig=abc", nil)

		req := httptest.NewRequest(http.MethodGet, "/links/good-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://assets.example.com/thumbnails/x/200.jpg?sig=abc", w.Header().Get("Location"))
	})

	t.Run("returns gone for an expired link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		thumbnailSvc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(thumbnailSvc))

		thumbnailSvc.EXPECT().Resolve(gomock.Any(), "stale-token").Return("", domain.ErrLinkExpired)

		req := httptest.NewRequest(http.MethodGet, "/links/stale-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusGone, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "LINK_EXPIRED", resp["code"])
	})

	t.Run("returns unauthorized for a bad signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		thumbnailSvc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(thumbnailSvc))

		thumbnailSvc.EXPECT().Resolve(gomock.Any(), "forged-token").Return("", domain.ErrInvalidSignature)

		req := httptest.NewRequest(http.MethodGet, "/links/forged-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_SIGNATURE", resp["code"])
	})

	t.Run("returns not found for an orphaned token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		thumbnailSvc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(thumbnailSvc))

		thumbnailSvc.EXPECT().Resolve(gomock.Any(), "orphan-token").Return("", domain.ErrThumbnailNotFound)

		req := httptest.NewRequest(http.MethodGet, "/links/orphan-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestThumbnailHandler_Delete(t *testing.T) {
	t.Run("deletes a thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		thumbnailSvc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(thumbnailSvc))

		id := uuid.New()
		thumbnailSvc.EXPECT().Delete(gomock.Any(), id).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/thumbnails/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
