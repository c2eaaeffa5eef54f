package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillsynclab/backend/internal/domain"
	"skillsynclab/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrRecipeNotFound = errors.New("recipe not found")
)

// --- Service Interface ---
type RecipeService interface {
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	GetAllRecipes(ctx context.Context) ([]domain.Recipe, error)
	// GetRecipeByID returns (nil, nil) when no recipe has the given id.
	GetRecipeByID(ctx context.Context, id string) (*domain.Recipe, error)
	// UpdateRecipe returns (nil, nil) when no recipe has the given id.
	UpdateRecipe(ctx context.Context, id string, updated *domain.Recipe) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
}

// --- Service Implementation ---

// recipeService implements the RecipeService interface.
type recipeService struct {
	recipeRepo repository.RecipeRepository
	log        *zap.SugaredLogger
}

// NewRecipeService creates a new instance of recipeService.
func NewRecipeService(recipeRepo repository.RecipeRepository, log *zap.SugaredLogger) RecipeService {
	return &recipeService{
		recipeRepo: recipeRepo,
		log:        log,
	}
}

// validateRecipeID enforces the recipe id format: a 24-character hex string.
// A malformed id is a validation error, never a not-found.
func validateRecipeID(id string) error {
	if _, err := primitive.ObjectIDFromHex(strings.TrimSpace(id)); err != nil {
		return ErrInvalidID
	}
	return nil
}

func validateRecipeFields(recipe *domain.Recipe) error {
	if strings.TrimSpace(recipe.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(recipe.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if recipe.Author == nil || strings.TrimSpace(recipe.Author.ID) == "" {
		return fmt.Errorf("%w: author with valid id is required", ErrValidation)
	}
	return nil
}

// CreateRecipe validates required fields, normalizes the payload, stamps
// timestamps and persists the recipe.
func (s *recipeService) CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	if err := validateRecipeFields(recipe); err != nil {
		return nil, err
	}

	NormalizeRecipe(recipe)
	now := time.Now().UTC()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	id, err := s.recipeRepo.Create(ctx, recipe)
	if err != nil {
		s.log.Errorw("failed to save recipe", "op", "create", "title", recipe.Title, "err", err)
		return nil, err
	}
	recipe.ID = id
	return recipe, nil
}

// GetAllRecipes returns every recipe, normalized before exposure. Stored
// documents predating a schema change may be missing fields.
func (s *recipeService) GetAllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepo.GetAll(ctx)
	if err != nil {
		s.log.Errorw("failed to fetch recipes", "op", "list", "err", err)
		return nil, err
	}
	for i := range recipes {
		NormalizeRecipe(&recipes[i])
	}
	return recipes, nil
}

// GetRecipeByID fetches and normalizes one recipe. An absent id is an empty
// result, not an error.
func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (*domain.Recipe, error) {
	if err := validateRecipeID(id); err != nil {
		return nil, err
	}

	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		s.log.Errorw("failed to fetch recipe", "op", "get", "id", id, "err", err)
		return nil, err
	}
	NormalizeRecipe(recipe)
	return recipe, nil
}

// UpdateRecipe replaces every field of the stored recipe with the payload,
// except the id and createdAt. Nested id assignment is re-run over the
// replaced lists.
func (s *recipeService) UpdateRecipe(ctx context.Context, id string, updated *domain.Recipe) (*domain.Recipe, error) {
	if err := validateRecipeID(id); err != nil {
		return nil, err
	}
	if updated.Author == nil || strings.TrimSpace(updated.Author.ID) == "" {
		return nil, fmt.Errorf("%w: author with valid id is required", ErrValidation)
	}

	existing, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		s.log.Errorw("failed to load recipe for update", "op", "update", "id", id, "err", err)
		return nil, err
	}

	replacement := *updated
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt
	NormalizeRecipe(&replacement)
	replacement.UpdatedAt = time.Now().UTC()

	if err := s.recipeRepo.Update(ctx, &replacement); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		s.log.Errorw("failed to update recipe", "op", "update", "id", id, "err", err)
		return nil, err
	}
	return &replacement, nil
}

// DeleteRecipe verifies existence, then deletes.
func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if err := validateRecipeID(id); err != nil {
		return err
	}

	if _, err := s.recipeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecipeNotFound
		}
		s.log.Errorw("failed to load recipe for delete", "op", "delete", "id", id, "err", err)
		return err
	}

	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecipeNotFound
		}
		s.log.Errorw("failed to delete recipe", "op", "delete", "id", id, "err", err)
		return err
	}
	return nil
}
