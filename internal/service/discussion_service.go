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
	ErrDiscussionNotFound = errors.New("discussion not found")
)

// --- Service Interface ---
type DiscussionService interface {
	CreateDiscussion(ctx context.Context, discussion *domain.Discussion) (*domain.Discussion, error)
	GetAllDiscussions(ctx context.Context) ([]domain.Discussion, error)
	// GetDiscussionByID returns (nil, nil) when no discussion has the given id.
	GetDiscussionByID(ctx context.Context, id string) (*domain.Discussion, error)
	// UpdateDiscussion returns (nil, nil) when no discussion has the given id.
	UpdateDiscussion(ctx context.Context, id string, updated *domain.Discussion) (*domain.Discussion, error)
	DeleteDiscussion(ctx context.Context, id string) error
}

// --- Service Implementation ---

// discussionService implements the DiscussionService interface.
type discussionService struct {
	discussionRepo repository.DiscussionRepository
	log            *zap.SugaredLogger
}

// NewDiscussionService creates a new instance of discussionService.
func NewDiscussionService(discussionRepo repository.DiscussionRepository, log *zap.SugaredLogger) DiscussionService {
	return &discussionService{
		discussionRepo: discussionRepo,
		log:            log,
	}
}

func validateDiscussionFields(discussion *domain.Discussion) error {
	if strings.TrimSpace(discussion.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(discussion.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	if discussion.Author == nil || strings.TrimSpace(discussion.Author.ID) == "" {
		return fmt.Errorf("%w: author with valid id is required", ErrValidation)
	}
	return nil
}

// CreateDiscussion validates required fields, normalizes, stamps timestamps
// and persists.
func (s *discussionService) CreateDiscussion(ctx context.Context, discussion *domain.Discussion) (*domain.Discussion, error) {
	if err := validateDiscussionFields(discussion); err != nil {
		return nil, err
	}

	NormalizeDiscussion(discussion)
	now := time.Now().UTC()
	discussion.CreatedAt = now
	discussion.UpdatedAt = now

	id, err := s.discussionRepo.Create(ctx, discussion)
	if err != nil {
		s.log.Errorw("failed to save discussion", "op", "create", "title", discussion.Title, "err", err)
		return nil, err
	}
	discussion.ID = id
	return discussion, nil
}

// GetAllDiscussions returns every discussion, normalized before exposure.
func (s *discussionService) GetAllDiscussions(ctx context.Context) ([]domain.Discussion, error) {
	discussions, err := s.discussionRepo.GetAll(ctx)
	if err != nil {
		s.log.Errorw("failed to fetch discussions", "op", "list", "err", err)
		return nil, err
	}
	for i := range discussions {
		NormalizeDiscussion(&discussions[i])
	}
	return discussions, nil
}

// GetDiscussionByID fetches and normalizes one discussion. An absent id is
// an empty result, not an error.
func (s *discussionService) GetDiscussionByID(ctx context.Context, id string) (*domain.Discussion, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	discussion, err := s.discussionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		s.log.Errorw("failed to fetch discussion", "op", "get", "id", id, "err", err)
		return nil, err
	}
	NormalizeDiscussion(discussion)
	return discussion, nil
}

// UpdateDiscussion replaces every field of the stored discussion except the
// id and createdAt, re-running comment id assignment over the new list.
func (s *discussionService) UpdateDiscussion(ctx context.Context, id string, updated *domain.Discussion) (*domain.Discussion, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}
	if updated.Author == nil || strings.TrimSpace(updated.Author.ID) == "" {
		return nil, fmt.Errorf("%w: author with valid id is required", ErrValidation)
	}

	existing, err := s.discussionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		s.log.Errorw("failed to load discussion for update", "op", "update", "id", id, "err", err)
		return nil, err
	}

	replacement := *updated
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt
	NormalizeDiscussion(&replacement)
	replacement.UpdatedAt = time.Now().UTC()

	if err := s.discussionRepo.Update(ctx, &replacement); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		s.log.Errorw("failed to update discussion", "op", "update", "id", id, "err", err)
		return nil, err
	}
	return &replacement, nil
}

// DeleteDiscussion verifies existence, then deletes.
func (s *discussionService) DeleteDiscussion(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}

	if _, err := s.discussionRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDiscussionNotFound
		}
		s.log.Errorw("failed to load discussion for delete", "op", "delete", "id", id, "err", err)
		return err
	}

	if err := s.discussionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDiscussionNotFound
		}
		s.log.Errorw("failed to delete discussion", "op", "delete", "id", id, "err", err)
		return err
	}
	return nil
}
