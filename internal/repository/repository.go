package repository

import (
	"context"

	"skillsynclab/backend/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AdminUserRepository defines the interface for interacting with user accounts.
type AdminUserRepository interface {
	Create(ctx context.Context, user *domain.AdminUser) (string, error)
	GetAll(ctx context.Context) ([]domain.AdminUser, error)
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.AdminUser) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for interacting with categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (string, error)
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// RecipeRepository defines the interface for interacting with recipe documents.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) (string, error)
	GetAll(ctx context.Context) ([]domain.Recipe, error)
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	Update(ctx context.Context, recipe *domain.Recipe) error
	Delete(ctx context.Context, id string) error
}

// LearningPlanRepository defines the interface for interacting with learning plans.
type LearningPlanRepository interface {
	Create(ctx context.Context, plan *domain.LearningPlan) (string, error)
	GetAll(ctx context.Context) ([]domain.LearningPlan, error)
	GetByID(ctx context.Context, id string) (*domain.LearningPlan, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]domain.LearningPlan, error)
	Update(ctx context.Context, plan *domain.LearningPlan) error
	Delete(ctx context.Context, id string) error
	DeleteByOwnerID(ctx context.Context, ownerID string) error
}

// DiscussionRepository defines the interface for interacting with discussions.
type DiscussionRepository interface {
	Create(ctx context.Context, discussion *domain.Discussion) (string, error)
	GetAll(ctx context.Context) ([]domain.Discussion, error)
	GetByID(ctx context.Context, id string) (*domain.Discussion, error)
	Update(ctx context.Context, discussion *domain.Discussion) error
	Delete(ctx context.Context, id string) error
}

// PostRepository covers the posts collection. Only the account-deletion
// cascade touches posts here; the feed itself is served by another system.
type PostRepository interface {
	DeleteByUserID(ctx context.Context, userID string) error
}

// AchievementRepository covers the achievements collection for the cascade path.
type AchievementRepository interface {
	DeleteByOwnerID(ctx context.Context, ownerID string) error
}

// NotificationRepository covers the notifications collection for the cascade path.
type NotificationRepository interface {
	DeleteByUserID(ctx context.Context, userID string) error
}
