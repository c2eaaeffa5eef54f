package api

import (
	"errors"
	"net/http"

	"skillsynclab/backend/internal/domain"
	"skillsynclab/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecipeHandler holds the recipe service dependency.
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// CreateRecipe handles POST /api/recipes. The body is the full recipe
// document; the service fills defaults and assigns nested ids.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var recipe domain.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid recipe payload: "+err.Error())
		return
	}

	created, err := h.recipeService.CreateRecipe(c.Request.Context(), &recipe)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAllRecipes handles GET /api/recipes.
func (h *RecipeHandler) GetAllRecipes(c *gin.Context) {
	recipes, err := h.recipeService.GetAllRecipes(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipeByID handles GET /api/recipes/:id. A malformed id is a 400, an
// absent one a 404.
func (h *RecipeHandler) GetRecipeByID(c *gin.Context) {
	recipe, err := h.recipeService.GetRecipeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if recipe == nil {
		abortNotFound(c, "Recipe not found")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe handles PUT /api/recipes/:id with a full-replace payload.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var recipe domain.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid recipe payload: "+err.Error())
		return
	}

	updated, err := h.recipeService.UpdateRecipe(c.Request.Context(), c.Param("id"), &recipe)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if updated == nil {
		abortNotFound(c, "Recipe not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRecipe handles DELETE /api/recipes/:id.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	err := h.recipeService.DeleteRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			abortNotFound(c, "Recipe not found")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}
