package api

import (
	"errors"
	"net/http"

	"skillsynclab/backend/internal/domain"
	"skillsynclab/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LearningPlanHandler holds the learning plan service dependency.
type LearningPlanHandler struct {
	planService service.LearningPlanService
}

// NewLearningPlanHandler creates a new LearningPlanHandler.
func NewLearningPlanHandler(planService service.LearningPlanService) *LearningPlanHandler {
	return &LearningPlanHandler{planService: planService}
}

// CreateLearningPlan handles POST /api/learning-plans.
func (h *LearningPlanHandler) CreateLearningPlan(c *gin.Context) {
	var plan domain.LearningPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid learning plan payload: "+err.Error())
		return
	}

	created, err := h.planService.CreateLearningPlan(c.Request.Context(), &plan)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAllLearningPlans handles GET /api/learning-plans.
func (h *LearningPlanHandler) GetAllLearningPlans(c *gin.Context) {
	plans, err := h.planService.GetAllLearningPlans(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if plans == nil {
		plans = []domain.LearningPlan{}
	}
	c.JSON(http.StatusOK, plans)
}

// GetLearningPlanByID handles GET /api/learning-plans/:id.
func (h *LearningPlanHandler) GetLearningPlanByID(c *gin.Context) {
	plan, err := h.planService.GetLearningPlanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if plan == nil {
		abortNotFound(c, "Learning plan not found")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdateLearningPlan handles PUT /api/learning-plans/:id with a full-replace payload.
func (h *LearningPlanHandler) UpdateLearningPlan(c *gin.Context) {
	var plan domain.LearningPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid learning plan payload: "+err.Error())
		return
	}

	updated, err := h.planService.UpdateLearningPlan(c.Request.Context(), c.Param("id"), &plan)
	if err != nil {
		if errors.Is(err, service.ErrLearningPlanNotFound) {
			abortNotFound(c, "Learning plan not found")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteLearningPlan handles DELETE /api/learning-plans/:id.
func (h *LearningPlanHandler) DeleteLearningPlan(c *gin.Context) {
	err := h.planService.DeleteLearningPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrLearningPlanNotFound) {
			abortNotFound(c, "Learning plan not found")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Learning plan deleted"})
}
