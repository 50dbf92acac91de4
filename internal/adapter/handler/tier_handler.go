package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pixelforge/imgtier/internal/adapter/handler/dto/request"
	"github.com/pixelforge/imgtier/internal/adapter/handler/dto/response"
	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/pkg/httputil"
	"github.com/pixelforge/imgtier/internal/usecase/tier"
)

type TierHandler struct {
	tierSvc TierService
}

func NewTierHandler(tierSvc TierService) *TierHandler {
	return &TierHandler{tierSvc: tierSvc}
}

// Create godoc
//
//	@Summary	Create a tier
//	@Tags		tiers
//	@Accept		json
//	@Produce	json
//	@Param		request	body		request.TierRequest	true	"Tier definition"
//	@Success	201		{object}	response.TierResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	409		{object}	httputil.ErrorResponse	"Name already taken"
//	@Router		/tiers [post]
func (h *TierHandler) Create(c *gin.Context) {
	var req request.TierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	created, err := h.tierSvc.Create(c.Request.Context(), tier.CreateInput{
		Name:               req.Name,
		ThumbnailSizes:     req.ThumbnailSizes,
		AllowExpiringLinks: req.AllowExpiringLinks,
		AllowOriginalLink:  req.AllowOriginalLink,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	httputil.Created(c, response.TierFromEntity(created))
}

// List godoc
//
//	@Summary	List tiers
//	@Tags		tiers
//	@Produce	json
//	@Success	200	{array}	response.TierResponse
//	@Router		/tiers [get]
func (h *TierHandler) List(c *gin.Context) {
	tiers, err := h.tierSvc.List(c.Request.Context())
	if err != nil {
		httputil.InternalError(c)
		return
	}
	httputil.OK(c, response.TiersFromEntities(tiers))
}

// Get godoc
//
//	@Summary	Get a tier
//	@Tags		tiers
//	@Produce	json
//	@Param		id	path		string	true	"Tier ID"
//	@Success	200	{object}	response.TierResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/tiers/{id} [get]
func (h *TierHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid tier id")
		return
	}

	found, err := h.tierSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	httputil.OK(c, response.TierFromEntity(found))
}

// Update godoc
//
//	@Summary	Update a tier
//	@Tags		tiers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Tier ID"
//	@Param		request	body		request.TierRequest	true	"Tier definition"
//	@Success	200		{object}	response.TierResponse
//	@Failure	404		{object}	httputil.ErrorResponse
//	@Router		/tiers/{id} [put]
func (h *TierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid tier id")
		return
	}

	var req request.TierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	updated, err := h.tierSvc.Update(c.Request.Context(), id, tier.CreateInput{
		Name:               req.Name,
		ThumbnailSizes:     req.ThumbnailSizes,
		AllowExpiringLinks: req.AllowExpiringLinks,
		AllowOriginalLink:  req.AllowOriginalLink,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	httputil.OK(c, response.TierFromEntity(updated))
}

// Delete godoc
//
//	@Summary	Delete a tier
//	@Tags		tiers
//	@Param		id	path	string	true	"Tier ID"
//	@Success	204
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Failure	409	{object}	httputil.ErrorResponse	"Tier still assigned to users"
//	@Router		/tiers/{id} [delete]
func (h *TierHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid tier id")
		return
	}

	if err := h.tierSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	httputil.NoContent(c)
}

func (h *TierHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTierNotFound):
		httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "tier not found")
	case errors.Is(err, domain.ErrTierAlreadyExists):
		httputil.ErrorWithCode(c, http.StatusConflict, "TIER_EXISTS", "tier name already taken")
	case errors.Is(err, domain.ErrTierInUse):
		httputil.ErrorWithCode(c, http.StatusConflict, "TIER_IN_USE", "tier is assigned to existing users")
	case errors.Is(err, domain.ErrInvalidTier):
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_TIER", err.Error())
	default:
		httputil.InternalError(c)
	}
}
