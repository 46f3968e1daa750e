package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"video-catalog-api/internal/domain/video"
	"video-catalog-api/internal/interfaces/httpserver/requests"
	"video-catalog-api/internal/interfaces/httpserver/responses"
	"video-catalog-api/internal/utils/platformerrors"
)

// VideoHandler exposes HTTP entrypoints for the video catalog.
type VideoHandler struct {
	service video.Service
	log     zerolog.Logger
}

// NewVideoHandler constructs the handler.
func NewVideoHandler(service video.Service, log zerolog.Logger) *VideoHandler {
	return &VideoHandler{
		service: service,
		log:     log.With().Str("handler", "video").Logger(),
	}
}

// List handles GET /videos
// @Summary List videos
// @Description Returns a filtered, paginated listing of catalog entries
// @Tags Videos
// @Produce json
// @Param category query string false "Exact category name"
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.VideoListResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	filter := video.NewFilter()
	if name := c.Query("category"); name != "" {
		filter.WithCategory(name)
	}

	page, ok := h.intQuery(c, "page", filter.Page)
	if !ok {
		return
	}
	limit, ok := h.intQuery(c, "limit", filter.Limit)
	if !ok {
		return
	}
	filter.WithPage(page).WithLimit(limit)

	videos, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to list videos")
		return
	}

	c.JSON(http.StatusOK, responses.MapVideoListToResponse(videos, total, filter.Page, filter.Limit))
}

// Get handles GET /videos/:id
// @Summary Get one video
// @Tags Videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} responses.VideoResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to get video")
		return
	}

	c.JSON(http.StatusOK, responses.MapVideoToResponse(v))
}

// Create handles POST /videos
// @Summary Create a video
// @Tags Videos
// @Accept json
// @Produce json
// @Param request body requests.CreateVideoRequest true "Video payload"
// @Success 201 {object} responses.VideoResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var req requests.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, h.log, platformerrors.ErrorTypeValidation, "invalid request body", "video-create-body-001")
		return
	}

	v, err := h.service.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to create video")
		return
	}

	c.JSON(http.StatusCreated, responses.MapVideoToResponse(v))
}

// Update handles PUT /videos/:id
// @Summary Partially update a video
// @Description Changes only the supplied fields; absent fields keep their stored value
// @Tags Videos
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param request body requests.UpdateVideoRequest true "Sparse update payload"
// @Success 200 {object} responses.VideoResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /videos/{id} [put]
func (h *VideoHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req requests.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, h.log, platformerrors.ErrorTypeValidation, "invalid request body", "video-update-body-001")
		return
	}

	v, err := h.service.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to update video")
		return
	}

	c.JSON(http.StatusOK, responses.MapVideoToResponse(v))
}

// Delete handles DELETE /videos/:id
// @Summary Delete a video
// @Tags Videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		responses.HandleError(c, h.log, err, "failed to delete video")
		return
	}

	c.JSON(http.StatusOK, responses.MessageResponse{Message: "video deleted"})
}

func (h *VideoHandler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		responses.HandleNewError(c, h.log, platformerrors.ErrorTypeValidation, "id must be a positive integer", "video-path-id-001")
		return 0, false
	}
	return id, true
}

func (h *VideoHandler) intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		responses.HandleNewError(c, h.log, platformerrors.ErrorTypeValidation, name+" must be a positive integer", "video-list-"+name+"-001")
		return 0, false
	}
	return n, true
}
