package service

import (
	"context"

	"skillsynclab/backend/internal/repository"

	"go.uber.org/zap"
)

// CascadePurger removes everything a user owns across the dependent
// collections when the account is deleted.
//
// The deletes run as an ordered sequence of independent filter-deletes, not
// a transaction: dependent collections first, the user record last (handled
// by the caller). A crash mid-cascade leaves orphaned dependents rather
// than a dangling reference to a deleted user; orphans are tolerated since
// nothing dereferences a user id that no longer resolves. The first failing
// delete aborts the sequence and propagates its error.
type CascadePurger struct {
	achievementRepo  repository.AchievementRepository
	planRepo         repository.LearningPlanRepository
	postRepo         repository.PostRepository
	notificationRepo repository.NotificationRepository
	log              *zap.SugaredLogger
}

// NewCascadePurger creates a new CascadePurger.
func NewCascadePurger(
	achievementRepo repository.AchievementRepository,
	planRepo repository.LearningPlanRepository,
	postRepo repository.PostRepository,
	notificationRepo repository.NotificationRepository,
	log *zap.SugaredLogger,
) *CascadePurger {
	return &CascadePurger{
		achievementRepo:  achievementRepo,
		planRepo:         planRepo,
		postRepo:         postRepo,
		notificationRepo: notificationRepo,
		log:              log,
	}
}

// PurgeUserData deletes all achievements, learning plans and posts owned by
// the user, and all notifications addressed to the user. The user record
// itself is not touched here.
func (p *CascadePurger) PurgeUserData(ctx context.Context, userID string) error {
	if err := p.achievementRepo.DeleteByOwnerID(ctx, userID); err != nil {
		p.log.Errorw("cascade delete failed", "collection", "achievements", "userId", userID, "err", err)
		return err
	}
	if err := p.planRepo.DeleteByOwnerID(ctx, userID); err != nil {
		p.log.Errorw("cascade delete failed", "collection", "learning_plans", "userId", userID, "err", err)
		return err
	}
	if err := p.postRepo.DeleteByUserID(ctx, userID); err != nil {
		p.log.Errorw("cascade delete failed", "collection", "posts", "userId", userID, "err", err)
		return err
	}
	if err := p.notificationRepo.DeleteByUserID(ctx, userID); err != nil {
		p.log.Errorw("cascade delete failed", "collection", "notifications", "userId", userID, "err", err)
		return err
	}
	return nil
}
