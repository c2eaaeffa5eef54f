package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillsynclab/backend/internal/domain"
	"skillsynclab/backend/internal/repository"

	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrLearningPlanNotFound = errors.New("learning plan not found")
)

// --- Service Interface ---
type LearningPlanService interface {
	CreateLearningPlan(ctx context.Context, plan *domain.LearningPlan) (*domain.LearningPlan, error)
	GetAllLearningPlans(ctx context.Context) ([]domain.LearningPlan, error)
	// GetLearningPlanByID returns (nil, nil) when no plan has the given id.
	GetLearningPlanByID(ctx context.Context, id string) (*domain.LearningPlan, error)
	UpdateLearningPlan(ctx context.Context, id string, updated *domain.LearningPlan) (*domain.LearningPlan, error)
	DeleteLearningPlan(ctx context.Context, id string) error
}

// --- Service Implementation ---

// learningPlanService implements the LearningPlanService interface.
type learningPlanService struct {
	planRepo repository.LearningPlanRepository
	log      *zap.SugaredLogger
}

// NewLearningPlanService creates a new instance of learningPlanService.
func NewLearningPlanService(planRepo repository.LearningPlanRepository, log *zap.SugaredLogger) LearningPlanService {
	return &learningPlanService{
		planRepo: planRepo,
		log:      log,
	}
}

// CreateLearningPlan validates required fields, normalizes, stamps
// timestamps and persists.
func (s *learningPlanService) CreateLearningPlan(ctx context.Context, plan *domain.LearningPlan) (*domain.LearningPlan, error) {
	if strings.TrimSpace(plan.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(plan.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}

	NormalizeLearningPlan(plan)
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		s.log.Errorw("failed to save learning plan", "op", "create", "title", plan.Title, "err", err)
		return nil, err
	}
	plan.ID = id
	return plan, nil
}

// GetAllLearningPlans returns every plan, normalized before exposure.
func (s *learningPlanService) GetAllLearningPlans(ctx context.Context) ([]domain.LearningPlan, error) {
	plans, err := s.planRepo.GetAll(ctx)
	if err != nil {
		s.log.Errorw("failed to fetch learning plans", "op", "list", "err", err)
		return nil, err
	}
	for i := range plans {
		NormalizeLearningPlan(&plans[i])
	}
	return plans, nil
}

// GetLearningPlanByID fetches and normalizes one plan. An absent id is an
// empty result, not an error.
func (s *learningPlanService) GetLearningPlanByID(ctx context.Context, id string) (*domain.LearningPlan, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		s.log.Errorw("failed to fetch learning plan", "op", "get", "id", id, "err", err)
		return nil, err
	}
	NormalizeLearningPlan(plan)
	return plan, nil
}

// UpdateLearningPlan replaces every field of the stored plan except the id,
// createdAt and the ownership fields, re-running step and resource id
// assignment over the new lists. An absent plan fails with
// ErrLearningPlanNotFound.
func (s *learningPlanService) UpdateLearningPlan(ctx context.Context, id string, updated *domain.LearningPlan) (*domain.LearningPlan, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	existing, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLearningPlanNotFound
		}
		s.log.Errorw("failed to load learning plan for update", "op", "update", "id", id, "err", err)
		return nil, err
	}

	replacement := *updated
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt
	// Ownership is set at creation and only rewritten by the owner-rename
	// propagation, never by a plan update.
	replacement.PostOwnerID = existing.PostOwnerID
	replacement.PostOwnerName = existing.PostOwnerName
	NormalizeLearningPlan(&replacement)
	replacement.UpdatedAt = time.Now().UTC()

	if err := s.planRepo.Update(ctx, &replacement); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLearningPlanNotFound
		}
		s.log.Errorw("failed to update learning plan", "op", "update", "id", id, "err", err)
		return nil, err
	}
	return &replacement, nil
}

// DeleteLearningPlan verifies existence, then deletes.
func (s *learningPlanService) DeleteLearningPlan(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}

	if _, err := s.planRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLearningPlanNotFound
		}
		s.log.Errorw("failed to load learning plan for delete", "op", "delete", "id", id, "err", err)
		return err
	}

	if err := s.planRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLearningPlanNotFound
		}
		s.log.Errorw("failed to delete learning plan", "op", "delete", "id", id, "err", err)
		return err
	}
	return nil
}
