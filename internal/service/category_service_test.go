package service

import (
	"context"
	"errors"
	"testing"

	"skillsynclab/backend/internal/domain"
)

func TestCategoryService_CreateAndList(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &domain.Category{Name: "Baking"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id assigned")
	}

	all, err := svc.GetAllCategories(ctx)
	if err != nil {
		t.Fatalf("GetAllCategories: %v", err)
	}
	if len(all) != 1 || all[0].Name != "Baking" {
		t.Fatalf("unexpected categories: %+v", all)
	}
}

func TestCategoryService_CreateRejectsBlankName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), testLogger())

	if _, err := svc.CreateCategory(context.Background(), &domain.Category{Name: "  "}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCategoryService_Rename(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &domain.Category{Name: "Baking"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	renamed, err := svc.UpdateCategory(ctx, created.ID, "Pastry")
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if renamed.ID != created.ID || renamed.Name != "Pastry" {
		t.Fatalf("unexpected rename result: %+v", renamed)
	}

	if _, err := svc.UpdateCategory(ctx, "missing", "Pastry"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_Delete(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &domain.Category{Name: "Baking"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if err := svc.DeleteCategory(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if err := svc.DeleteCategory(ctx, created.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound on second delete, got %v", err)
	}
}
