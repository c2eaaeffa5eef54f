package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skillsynclab/backend/internal/domain"
	"skillsynclab/backend/internal/repository"

	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrCategoryNotFound = errors.New("category not found")
)

// --- Service Interface ---
type CategoryService interface {
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// --- Service Implementation ---

// categoryService implements the CategoryService interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.SugaredLogger
}

// NewCategoryService creates a new instance of categoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.SugaredLogger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log,
	}
}

// CreateCategory persists a new category.
func (s *categoryService) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	id, err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		s.log.Errorw("failed to save category", "op", "create", "name", category.Name, "err", err)
		return nil, err
	}
	category.ID = id
	return category, nil
}

// GetAllCategories returns every category.
func (s *categoryService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.log.Errorw("failed to fetch categories", "op", "list", "err", err)
		return nil, err
	}
	return categories, nil
}

// UpdateCategory renames an existing category.
func (s *categoryService) UpdateCategory(ctx context.Context, id, name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		s.log.Errorw("failed to load category for update", "op", "update", "id", id, "err", err)
		return nil, err
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		s.log.Errorw("failed to update category", "op", "update", "id", id, "err", err)
		return nil, err
	}
	return category, nil
}

// DeleteCategory verifies existence, then deletes.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		s.log.Errorw("failed to delete category", "op", "delete", "id", id, "err", err)
		return err
	}
	return nil
}
