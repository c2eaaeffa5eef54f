package service

import (
	"context"
	"errors"
	"testing"

	"skillsynclab/backend/internal/domain"
)

func newTestPlan() *domain.LearningPlan {
	return &domain.LearningPlan{
		Title:       "Baking basics",
		Description: "from scratch",
		Author:      &domain.Author{ID: "u1"},
	}
}

func TestLearningPlanService_CreateAppliesDefaults(t *testing.T) {
	repo := newFakeLearningPlanRepo()
	svc := NewLearningPlanService(repo, testLogger())

	plan := newTestPlan()
	plan.Steps = []*domain.LearningStep{
		{Resources: []*domain.Resource{{}}},
	}

	created, err := svc.CreateLearningPlan(context.Background(), plan)
	if err != nil {
		t.Fatalf("CreateLearningPlan: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id assigned")
	}
	if created.Categories == nil {
		t.Fatalf("expected categories non-nil")
	}
	if *created.Difficulty != DefaultDifficulty {
		t.Fatalf("expected difficulty default, got %q", *created.Difficulty)
	}
	step := created.Steps[0]
	if step.ID == nil || *step.ID == "" {
		t.Fatalf("expected step id assigned")
	}
	res := step.Resources[0]
	if res.ID == nil || *res.ID == "" {
		t.Fatalf("expected resource id assigned")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps stamped")
	}
}

func TestLearningPlanService_CreateRejectsMissingFields(t *testing.T) {
	svc := NewLearningPlanService(newFakeLearningPlanRepo(), testLogger())
	ctx := context.Background()

	if _, err := svc.CreateLearningPlan(ctx, &domain.LearningPlan{Description: "d"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing title: expected ErrValidation, got %v", err)
	}
	if _, err := svc.CreateLearningPlan(ctx, &domain.LearningPlan{Title: "t"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing description: expected ErrValidation, got %v", err)
	}
}

func TestLearningPlanService_UpdatePreservesOwnership(t *testing.T) {
	repo := newFakeLearningPlanRepo()
	svc := NewLearningPlanService(repo, testLogger())
	ctx := context.Background()

	repo.plans["p1"] = domain.LearningPlan{
		ID: "p1", Title: "Baking basics", Description: "from scratch",
		PostOwnerID: "u1", PostOwnerName: "Alice",
	}

	replacement := newTestPlan()
	replacement.Title = "Baking, revised"
	replacement.PostOwnerID = "intruder"
	replacement.PostOwnerName = "Mallory"

	updated, err := svc.UpdateLearningPlan(ctx, "p1", replacement)
	if err != nil {
		t.Fatalf("UpdateLearningPlan: %v", err)
	}
	if updated.Title != "Baking, revised" {
		t.Fatalf("expected title replaced, got %q", updated.Title)
	}
	if updated.PostOwnerID != "u1" || updated.PostOwnerName != "Alice" {
		t.Fatalf("expected ownership preserved, got %q/%q", updated.PostOwnerID, updated.PostOwnerName)
	}
	if updated.ID != "p1" {
		t.Fatalf("expected id preserved, got %q", updated.ID)
	}
}

func TestLearningPlanService_UpdateAbsentFails(t *testing.T) {
	svc := NewLearningPlanService(newFakeLearningPlanRepo(), testLogger())

	if _, err := svc.UpdateLearningPlan(context.Background(), "missing", newTestPlan()); !errors.Is(err, ErrLearningPlanNotFound) {
		t.Fatalf("expected ErrLearningPlanNotFound, got %v", err)
	}
}

func TestLearningPlanService_GetAbsentReturnsNilNil(t *testing.T) {
	svc := NewLearningPlanService(newFakeLearningPlanRepo(), testLogger())

	got, err := svc.GetLearningPlanByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected no error for absent plan, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil plan, got %+v", got)
	}
}

func TestLearningPlanService_DeleteThenGet(t *testing.T) {
	repo := newFakeLearningPlanRepo()
	svc := NewLearningPlanService(repo, testLogger())
	ctx := context.Background()

	created, err := svc.CreateLearningPlan(ctx, newTestPlan())
	if err != nil {
		t.Fatalf("CreateLearningPlan: %v", err)
	}

	if err := svc.DeleteLearningPlan(ctx, created.ID); err != nil {
		t.Fatalf("DeleteLearningPlan: %v", err)
	}
	if err := svc.DeleteLearningPlan(ctx, created.ID); !errors.Is(err, ErrLearningPlanNotFound) {
		t.Fatalf("expected ErrLearningPlanNotFound on second delete, got %v", err)
	}
}

func TestLearningPlanService_GetAllNormalizesStoredDocuments(t *testing.T) {
	repo := newFakeLearningPlanRepo()
	repo.plans["p1"] = domain.LearningPlan{ID: "p1", Title: "Legacy plan", Description: "d"}
	svc := NewLearningPlanService(repo, testLogger())

	all, err := svc.GetAllLearningPlans(context.Background())
	if err != nil {
		t.Fatalf("GetAllLearningPlans: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(all))
	}
	p := all[0]
	if p.Author == nil || p.Author.ID != UnknownAuthorID {
		t.Fatalf("expected sentinel author on legacy document")
	}
	if p.Categories == nil || p.Steps == nil {
		t.Fatalf("expected lists filled on legacy document")
	}
}
