package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pixelforge/imgtier/internal/adapter/handler"
	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/domain/entity"
	"github.com/pixelforge/imgtier/internal/mocks"
	"github.com/pixelforge/imgtier/internal/usecase/auth"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func jsonRequest(t *testing.T, method, url string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("registers a user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/auth/register", h.Register)

		user := entity.NewUser("new@example.com", "hash", "New User", nil)
		authSvc.EXPECT().Register(gomock.Any(), auth.RegisterInput{
			Email:    "new@example.com",
			Password: "password123",
			Name:     "New User",
		}).Return(user, nil)

		req := jsonRequest(t, http.MethodPost, "/auth/register", map[string]string{
			"email":    "new@example.com",
			"password": "password123",
			"name":     "New User",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "new@example.com", resp["email"])
	})

	t.Run("rejects a short password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/auth/register", h.Register)

		req := jsonRequest(t, http.MethodPost, "/auth/register", map[string]string{
			"email":    "new@example.com",
			"password": "short",
			"name":     "New User",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns conflict for a taken email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/auth/register", h.Register)

		authSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserAlreadyExists)

		req := jsonRequest(t, http.MethodPost, "/auth/register", map[string]string{
			"email":    "taken@example.com",
			"password": "password123",
			"name":     "Someone",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "USER_EXISTS", resp["code"])
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns an access token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/auth/login", h.Login)

		user := entity.NewUser("user@example.com", "hash", "User", nil)
		token := &auth.Token{AccessToken: "jwt-token", ExpiresAt: time.Now().Add(time.Hour)}
		authSvc.EXPECT().Login(gomock.Any(), auth.LoginInput{
			Email:    "user@example.com",
			Password: "password123",
		}).Return(token, user, nil)

		req := jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{
			"email":    "user@example.com",
			"password": "password123",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "jwt-token", resp["access_token"])
		assert.NotNil(t, resp["user"])
	})

	t.Run("returns unauthorized for bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/auth/login", h.Login)

		authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, nil, domain.ErrInvalidCredentials)

		req := jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{
			"email":    "user@example.com",
			"password": "wrong",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_CREDENTIALS", resp["code"])
	})
}
