package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"video-catalog-api/internal/domain/category"
	"video-catalog-api/internal/interfaces/httpserver/requests"
	"video-catalog-api/internal/interfaces/httpserver/responses"
	"video-catalog-api/internal/utils/platformerrors"
)

// CategoryHandler exposes HTTP entrypoints for categories.
type CategoryHandler struct {
	service category.Service
	log     zerolog.Logger
}

// NewCategoryHandler constructs the handler.
func NewCategoryHandler(service category.Service, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /categories
// @Summary List categories
// @Description Returns all categories, name ascending
// @Tags Categories
// @Produce json
// @Success 200 {array} responses.CategoryResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to list categories")
		return
	}

	c.JSON(http.StatusOK, responses.MapCategoriesToResponse(categories))
}

// Create handles POST /categories
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body requests.CreateCategoryRequest true "Category payload"
// @Success 201 {object} responses.CategoryResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req requests.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, h.log, platformerrors.ErrorTypeValidation, "invalid request body", "category-create-body-001")
		return
	}

	cat, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to create category")
		return
	}

	c.JSON(http.StatusCreated, responses.MapCategoryToResponse(cat))
}
