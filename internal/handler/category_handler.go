package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-reports-api/internal/middleware"
	"github.com/noah-isme/campus-reports-api/internal/models"
	appErrors "github.com/noah-isme/campus-reports-api/pkg/errors"
	"github.com/noah-isme/campus-reports-api/pkg/response"
)

type categoryService interface {
	List(ctx context.Context) ([]models.Category, bool, error)
}

// CategoryHandler serves the event category catalogue.
type CategoryHandler struct {
	service categoryService
}

// NewCategoryHandler constructs the handler.
func NewCategoryHandler(service categoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List godoc
// @Summary List event categories
// @Tags Categories
// @Produce json
// @Success 200 {object} response.Envelope{data=[]models.Category}
// @Router /event-categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	categories, cacheHit, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, categories, middleware.ExtractMeta(c))
}
