package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pixelforge/imgtier/internal/adapter/handler/dto/response"
	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/pkg/httputil"
	"github.com/pixelforge/imgtier/internal/pkg/pagination"
)

type ThumbnailHandler struct {
	thumbnailSvc ThumbnailService
}

func NewThumbnailHandler(thumbnailSvc ThumbnailService) *ThumbnailHandler {
	return &ThumbnailHandler{thumbnailSvc: thumbnailSvc}
}

// List godoc
//
//	@Summary	List thumbnails
//	@Tags		thumbnails
//	@Produce	json
//	@Param		page		query		int	false	"Page"
//	@Param		per_page	query		int	false	"Items per page"
//	@Success	200			{object}	response.ThumbnailListResponse
//	@Router		/thumbnails [get]
func (h *ThumbnailHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	thumbnails, info, err := h.thumbnailSvc.List(c.Request.Context(), pagination.NewParams(page, perPage))
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ThumbnailListResponse{
		Thumbnails: response.ThumbnailsFromEntities(thumbnails),
		Pagination: info,
	})
}

// Get godoc
//
//	@Summary	Get a thumbnail
//	@Tags		thumbnails
//	@Produce	json
//	@Param		id	path		string	true	"Thumbnail ID"
//	@Success	200	{object}	response.ThumbnailResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/thumbnails/{id} [get]
func (h *ThumbnailHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid thumbnail id")
		return
	}

	thumbnail, err := h.thumbnailSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	httputil.OK(c, response.ThumbnailFromEntity(thumbnail))
}

// Delete godoc
//
//	@Summary	Delete a thumbnail
//	@Tags		thumbnails
//	@Param		id	path	string	true	"Thumbnail ID"
//	@Success	204
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/thumbnails/{id} [delete]
func (h *ThumbnailHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid thumbnail id")
		return
	}

	if err := h.thumbnailSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	httputil.NoContent(c)
}

// ResolveLink godoc
//
//	@Summary		Resolve an expiring link
//	@Description	Verify a signed token and redirect to the thumbnail asset
//	@Tags			links
//	@Param			token	path	string	true	"Signed link token"
//	@Success		302
//	@Failure		401	{object}	httputil.ErrorResponse	"Bad signature"
//	@Failure		410	{object}	httputil.ErrorResponse	"Link expired"
//	@Router			/links/{token} [get]
func (h *ThumbnailHandler) ResolveLink(c *gin.Context) {
	url, err := h.thumbnailSvc.Resolve(c.Request.Context(), c.Param("token"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLinkExpired):
			httputil.ErrorWithCode(c, http.StatusGone, "LINK_EXPIRED", "link has expired")
		case errors.Is(err, domain.ErrInvalidSignature):
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "INVALID_SIGNATURE", "link signature is invalid")
		case errors.Is(err, domain.ErrThumbnailNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "thumbnail not found")
		default:
			httputil.InternalError(c)
		}
		return
	}

	c.Redirect(http.StatusFound, url)
}

func (h *ThumbnailHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrThumbnailNotFound) {
		httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "thumbnail not found")
		return
	}
	httputil.InternalError(c)
}
