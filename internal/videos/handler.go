package videos

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studiocast/catalog/internal/models"
	"github.com/studiocast/catalog/pkg/response"
)

// CreateRequest is the body for POST /api/videos. Description is optional and
// passed through unmodified, including absence.
type CreateRequest struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	URL          string  `json:"url"`
	ThumbnailURL string  `json:"thumbnailUrl"`
}

// Handler handles video catalog HTTP endpoints. It owns all input validation;
// the store trusts what it receives.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a video handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// List handles GET /api/videos. The full catalog is returned on every call,
// newest id first.
func (h *Handler) List(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list videos", zap.Error(err))
		response.Internal(c, "failed to fetch the videos")
		return
	}
	if list == nil {
		list = []models.Video{}
	}
	response.OK(c, list)
}

// Create handles POST /api/videos. Required fields are checked in order and only
// the first failure is reported.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.Title == "" {
		response.BadRequest(c, "title is required")
		return
	}
	if req.URL == "" {
		response.BadRequest(c, "url is required")
		return
	}
	if req.ThumbnailURL == "" {
		response.BadRequest(c, "thumbnailUrl is required")
		return
	}

	v := &models.Video{
		Title:        req.Title,
		Description:  req.Description,
		URL:          req.URL,
		ThumbnailURL: &req.ThumbnailURL,
	}
	if err := h.store.Create(c.Request.Context(), v); err != nil {
		h.logger.Error("create video", zap.Error(err))
		response.Internal(c, "failed to create the video")
		return
	}
	response.Created(c, v)
}

// Delete handles DELETE /api/videos?id=. A missing id is a client error; a
// nonexistent id and a storage failure both surface as the same 500 so the
// client contract stays unchanged, with the distinguishing cause logged.
func (h *Handler) Delete(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		response.BadRequest(c, "id is required")
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.logger.Warn("delete video: not found", zap.Int64("id", id))
		} else {
			h.logger.Error("delete video", zap.Int64("id", id), zap.Error(err))
		}
		response.Internal(c, "failed to delete the video")
		return
	}
	response.Deleted(c)
}
