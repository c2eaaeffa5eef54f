package api

import (
	"errors"
	"net/http"

	"skillsynclab/backend/internal/domain"
	"skillsynclab/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DiscussionHandler holds the discussion service dependency.
type DiscussionHandler struct {
	discussionService service.DiscussionService
}

// NewDiscussionHandler creates a new DiscussionHandler.
func NewDiscussionHandler(discussionService service.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{discussionService: discussionService}
}

// CreateDiscussion handles POST /api/discussions.
func (h *DiscussionHandler) CreateDiscussion(c *gin.Context) {
	var discussion domain.Discussion
	if err := c.ShouldBindJSON(&discussion); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid discussion payload: "+err.Error())
		return
	}

	created, err := h.discussionService.CreateDiscussion(c.Request.Context(), &discussion)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAllDiscussions handles GET /api/discussions.
func (h *DiscussionHandler) GetAllDiscussions(c *gin.Context) {
	discussions, err := h.discussionService.GetAllDiscussions(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if discussions == nil {
		discussions = []domain.Discussion{}
	}
	c.JSON(http.StatusOK, discussions)
}

// GetDiscussionByID handles GET /api/discussions/:id.
func (h *DiscussionHandler) GetDiscussionByID(c *gin.Context) {
	discussion, err := h.discussionService.GetDiscussionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if discussion == nil {
		abortNotFound(c, "Discussion not found")
		return
	}
	c.JSON(http.StatusOK, discussion)
}

// UpdateDiscussion handles PUT /api/discussions/:id with a full-replace payload.
func (h *DiscussionHandler) UpdateDiscussion(c *gin.Context) {
	var discussion domain.Discussion
	if err := c.ShouldBindJSON(&discussion); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid discussion payload: "+err.Error())
		return
	}

	updated, err := h.discussionService.UpdateDiscussion(c.Request.Context(), c.Param("id"), &discussion)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if updated == nil {
		abortNotFound(c, "Discussion not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDiscussion handles DELETE /api/discussions/:id.
func (h *DiscussionHandler) DeleteDiscussion(c *gin.Context) {
	err := h.discussionService.DeleteDiscussion(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDiscussionNotFound) {
			abortNotFound(c, "Discussion not found")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discussion deleted"})
}
