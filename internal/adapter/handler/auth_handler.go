package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelforge/imgtier/internal/adapter/handler/dto/request"
	"github.com/pixelforge/imgtier/internal/adapter/handler/dto/response"
	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/pkg/httputil"
	"github.com/pixelforge/imgtier/internal/usecase/auth"
)

type AuthHandler struct {
	authSvc AuthService
}

func NewAuthHandler(authSvc AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user account on the default tier
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.RegisterRequest	true	"Registration data"
//	@Success		201		{object}	response.UserResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		409		{object}	httputil.ErrorResponse	"Email already exists"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			httputil.ErrorWithCode(c, http.StatusConflict, "USER_EXISTS", "email already registered")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.UserFromEntity(user))
}

// Login godoc
//
//	@Summary		Login user
//	@Description	Authenticate and return an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.LoginRequest	true	"Login credentials"
//	@Success		200		{object}	response.LoginResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse	"Invalid credentials"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	token, user, err := h.authSvc.Login(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.LoginResponse{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
		User:        response.UserFromEntity(user),
	})
}
