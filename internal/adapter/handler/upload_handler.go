package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pixelforge/imgtier/internal/adapter/handler/dto/response"
	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/pkg/httputil"
	"github.com/pixelforge/imgtier/internal/pkg/pagination"
	"github.com/pixelforge/imgtier/internal/usecase/upload"
)

const maxUploadSize = 10 << 20 // 10MB

type UploadHandler struct {
	uploadSvc UploadService
}

func NewUploadHandler(uploadSvc UploadService) *UploadHandler {
	return &UploadHandler{uploadSvc: uploadSvc}
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Normalize the upload and derive thumbnails per the caller's tier
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image					formData	file	true	"Image file (jpg, jpeg or png)"
//	@Param			image_url				formData	string	false	"Link to the original image (tier-gated)"
//	@Param			expiring_link_seconds	formData	string	false	"TTL for an expiring thumbnail link"
//	@Success		201	{object}	response.UploadResponse
//	@Failure		400	{object}	httputil.ErrorResponse
//	@Router			/images [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "could not read uploaded file")
		return
	}

	userID := httputil.GetUserID(c)

	result, err := h.uploadSvc.Upload(c.Request.Context(), upload.UploadInput{
		UserID:        userID,
		Data:          data,
		Filename:      header.Filename,
		OriginalURL:   c.PostForm("image_url"),
		ExpirySeconds: c.PostForm("expiring_link_seconds"),
	})
	if err != nil {
		h.handleUploadError(c, err)
		return
	}

	httputil.Created(c, response.UploadResultToResponse(result))
}

// GetImage godoc
//
//	@Summary	Get one of your images with its thumbnails
//	@Tags		images
//	@Produce	json
//	@Param		id	path		string	true	"Image ID"
//	@Success	200	{object}	response.ImageDetailResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/images/{id} [get]
func (h *UploadHandler) GetImage(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid image id")
		return
	}

	image, thumbnails, err := h.uploadSvc.GetImage(c.Request.Context(), httputil.GetUserID(c), imageID)
	if err != nil {
		h.handleImageError(c, err)
		return
	}

	httputil.OK(c, response.ImageDetailResponse{
		Image:      response.ImageFromEntity(image),
		Thumbnails: response.ThumbnailsFromEntities(thumbnails),
	})
}

// ListImages godoc
//
//	@Summary	List your images
//	@Tags		images
//	@Produce	json
//	@Param		page		query		int	false	"Page"
//	@Param		per_page	query		int	false	"Items per page"
//	@Success	200			{object}	response.ImageListResponse
//	@Router		/images [get]
func (h *UploadHandler) ListImages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	images, info, err := h.uploadSvc.ListImages(c.Request.Context(), httputil.GetUserID(c), pagination.NewParams(page, perPage))
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ImageListResponse{
		Images:     response.ImagesFromEntities(images),
		Pagination: info,
	})
}

// DeleteImage godoc
//
//	@Summary	Delete one of your images and all of its thumbnails
//	@Tags		images
//	@Param		id	path	string	true	"Image ID"
//	@Success	204
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/images/{id} [delete]
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid image id")
		return
	}

	if err := h.uploadSvc.DeleteImage(c.Request.Context(), httputil.GetUserID(c), imageID); err != nil {
		h.handleImageError(c, err)
		return
	}
	httputil.NoContent(c)
}

func (h *UploadHandler) handleUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		httputil.ErrorWithCode(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT", "Invalid file format. Please upload a JPG or PNG image.")
	case errors.Is(err, domain.ErrDecodeFailed):
		httputil.ErrorWithCode(c, http.StatusBadRequest, "DECODE_FAILED", "uploaded file is not a readable image")
	case errors.Is(err, domain.ErrThumbnailGeneration):
		httputil.ErrorWithCode(c, http.StatusBadRequest, "THUMBNAIL_FAILED", "thumbnail generation failed")
	case errors.Is(err, domain.ErrTierNotFound):
		httputil.ErrorWithCode(c, http.StatusForbidden, "NO_TIER", "no tier assigned to this account")
	case errors.Is(err, domain.ErrUserNotFound):
		httputil.ErrorWithCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "unknown user")
	default:
		httputil.InternalError(c)
	}
}

func (h *UploadHandler) handleImageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrImageNotFound):
		httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "image not found")
	case errors.Is(err, domain.ErrForbidden):
		httputil.ErrorWithCode(c, http.StatusForbidden, "FORBIDDEN", "access denied")
	default:
		httputil.InternalError(c)
	}
}
