package api

import (
	"errors"
	"net/http"

	"skillsynclab/backend/internal/domain"
	"skillsynclab/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler holds the category service dependency.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest defines the expected JSON for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory handles POST /categories.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	created, err := h.categoryService.CreateCategory(c.Request.Context(), &domain.Category{Name: req.Name})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCategories handles GET /categories.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// UpdateCategory handles PUT /categories/:id.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	updated, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			abortNotFound(c, "Category not found")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCategory handles DELETE /categories/:id.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			abortNotFound(c, "Category not found")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
