package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillsynclab/backend/internal/domain"
)

type adminFixture struct {
	users         *fakeAdminUserRepo
	plans         *fakeLearningPlanRepo
	posts         *fakePostRepo
	achievements  *fakeAchievementRepo
	notifications *fakeNotificationRepo
	mailer        *fakeMailer
	files         *fakeFileStorage
	svc           AdminUserService
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		users:         newFakeAdminUserRepo(),
		plans:         newFakeLearningPlanRepo(),
		posts:         newFakePostRepo(),
		achievements:  newFakeAchievementRepo(),
		notifications: newFakeNotificationRepo(),
		mailer:        &fakeMailer{},
		files:         &fakeFileStorage{},
	}
	log := testLogger()
	purger := NewCascadePurger(f.achievements, f.plans, f.posts, f.notifications, log)
	f.svc = NewAdminUserService(f.users, f.plans, purger, f.mailer, f.files, log)
	return f
}

func newTestUser(fullname, email string) *domain.AdminUser {
	return &domain.AdminUser{
		Fullname: fullname,
		Email:    email,
		Password: "secret123",
	}
}

func TestAdminUserService_CreateAndGet(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	created, err := f.svc.CreateUser(ctx, newTestUser("Alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id assigned")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps stamped")
	}

	got, err := f.svc.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.Email != "alice@example.com" || got.Fullname != "Alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestAdminUserService_CreateDuplicateEmail(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	if _, err := f.svc.CreateUser(ctx, newTestUser("Alice", "alice@example.com")); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}
	if _, err := f.svc.CreateUser(ctx, newTestUser("Other Alice", "alice@example.com")); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAdminUserService_CreateRejectsMissingFields(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	cases := []*domain.AdminUser{
		{Email: "alice@example.com", Password: "secret123"},
		{Fullname: "Alice", Password: "secret123"},
		{Fullname: "Alice", Email: "alice@example.com"},
	}
	for i, u := range cases {
		if _, err := f.svc.CreateUser(ctx, u); !errors.Is(err, ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestAdminUserService_Login(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	created, err := f.svc.CreateUser(ctx, newTestUser("Alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	res, err := f.svc.Login(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Message != "Login Successful" || res.ID != created.ID || res.FullName != "Alice" {
		t.Fatalf("unexpected login result: %+v", res)
	}

	if _, err := f.svc.Login(ctx, "alice@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := f.svc.Login(ctx, "nobody@example.com", "secret123"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminUserService_EmailExists(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	if _, err := f.svc.CreateUser(ctx, newTestUser("Alice", "alice@example.com")); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	exists, err := f.svc.EmailExists(ctx, "alice@example.com")
	if err != nil || !exists {
		t.Fatalf("expected email to exist, got %v / %v", exists, err)
	}
	exists, err = f.svc.EmailExists(ctx, "nobody@example.com")
	if err != nil || exists {
		t.Fatalf("expected email to be free, got %v / %v", exists, err)
	}
}

func TestAdminUserService_UpdatePropagatesRename(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	created, err := f.svc.CreateUser(ctx, newTestUser("Alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	f.plans.plans["p1"] = domain.LearningPlan{
		ID: "p1", Title: "Baking basics", Description: "from scratch",
		PostOwnerID: created.ID, PostOwnerName: "Alice",
	}
	f.plans.plans["p2"] = domain.LearningPlan{
		ID: "p2", Title: "Knife skills", Description: "sharp",
		PostOwnerID: created.ID, PostOwnerName: "Alice",
	}
	f.plans.plans["p3"] = domain.LearningPlan{
		ID: "p3", Title: "Someone else's", Description: "untouched",
		PostOwnerID: "other", PostOwnerName: "Bob",
	}

	updated, err := f.svc.UpdateUser(ctx, created.ID, newTestUser("Alicia", "alice@example.com"))
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Fullname != "Alicia" {
		t.Fatalf("expected fullname replaced, got %q", updated.Fullname)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected id preserved")
	}

	for _, id := range []string{"p1", "p2"} {
		if got := f.plans.plans[id].PostOwnerName; got != "Alicia" {
			t.Fatalf("plan %s: expected owner name rewritten, got %q", id, got)
		}
	}
	if got := f.plans.plans["p3"].PostOwnerName; got != "Bob" {
		t.Fatalf("expected foreign plan untouched, got %q", got)
	}
}

func TestAdminUserService_UpdateAbsent(t *testing.T) {
	f := newAdminFixture()

	if _, err := f.svc.UpdateUser(context.Background(), "missing", newTestUser("Alice", "alice@example.com")); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminUserService_DeleteCascades(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	created, err := f.svc.CreateUser(ctx, newTestUser("Alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	uid := created.ID

	f.plans.plans["p1"] = domain.LearningPlan{ID: "p1", Title: "Mine", Description: "d", PostOwnerID: uid}
	f.plans.plans["p2"] = domain.LearningPlan{ID: "p2", Title: "Also mine", Description: "d", PostOwnerID: uid}
	f.plans.plans["p3"] = domain.LearningPlan{ID: "p3", Title: "Not mine", Description: "d", PostOwnerID: "other"}
	f.posts.posts["post1"] = domain.Post{ID: "post1", UserID: uid, CreatedAt: time.Now()}
	f.achievements.achievements["a1"] = domain.Achievement{ID: "a1", PostOwnerID: uid}
	f.notifications.notifications["n1"] = domain.Notification{ID: "n1", UserID: uid, Message: "hi"}
	f.notifications.notifications["n2"] = domain.Notification{ID: "n2", UserID: "other", Message: "hi"}

	if err := f.svc.DeleteUser(ctx, uid); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if _, err := f.svc.GetUserByID(ctx, uid); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}

	owned, err := f.plans.GetByOwnerID(ctx, uid)
	if err != nil {
		t.Fatalf("GetByOwnerID: %v", err)
	}
	if len(owned) != 0 {
		t.Fatalf("expected owned plans purged, %d remain", len(owned))
	}
	if _, ok := f.plans.plans["p3"]; !ok {
		t.Fatalf("expected foreign plan untouched")
	}
	if len(f.posts.posts) != 0 {
		t.Fatalf("expected posts purged, %d remain", len(f.posts.posts))
	}
	if len(f.achievements.achievements) != 0 {
		t.Fatalf("expected achievements purged, %d remain", len(f.achievements.achievements))
	}
	if _, ok := f.notifications.notifications["n1"]; ok {
		t.Fatalf("expected user notifications purged")
	}
	if _, ok := f.notifications.notifications["n2"]; !ok {
		t.Fatalf("expected foreign notification untouched")
	}
}

func TestAdminUserService_DeleteAbsent(t *testing.T) {
	f := newAdminFixture()

	if err := f.svc.DeleteUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminUserService_DeleteRemovesProfilePhoto(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	created, err := f.svc.CreateUser(ctx, newTestUser("Alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := f.svc.ProfilePhotoUploadURL(ctx, created.ID, "image/png"); err != nil {
		t.Fatalf("ProfilePhotoUploadURL: %v", err)
	}

	if err := f.svc.DeleteUser(ctx, created.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if len(f.files.deleted) != 1 || f.files.deleted[0] != "profile/"+created.ID {
		t.Fatalf("expected profile object deleted, got %v", f.files.deleted)
	}
}

func TestAdminUserService_SendVerificationCode(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	if err := f.svc.SendVerificationCode(ctx, "alice@example.com", "123456"); err != nil {
		t.Fatalf("SendVerificationCode: %v", err)
	}
	if len(f.mailer.sent) != 1 || f.mailer.sent[0].to != "alice@example.com" || f.mailer.sent[0].code != "123456" {
		t.Fatalf("unexpected sent mail: %+v", f.mailer.sent)
	}

	if err := f.svc.SendVerificationCode(ctx, "", "123456"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAdminUserService_ProfilePhotoURLs(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	created, err := f.svc.CreateUser(ctx, newTestUser("Alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if _, err := f.svc.ProfilePhotoURL(ctx, created.ID); !errors.Is(err, ErrNoProfilePhoto) {
		t.Fatalf("expected ErrNoProfilePhoto before upload, got %v", err)
	}

	uploadURL, err := f.svc.ProfilePhotoUploadURL(ctx, created.ID, "image/png")
	if err != nil {
		t.Fatalf("ProfilePhotoUploadURL: %v", err)
	}
	wantKey := "profile/" + created.ID
	if uploadURL != "https://storage.test/upload/"+wantKey {
		t.Fatalf("unexpected upload url: %q", uploadURL)
	}

	stored, err := f.svc.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if stored.ProfileImageKey != wantKey {
		t.Fatalf("expected key recorded, got %q", stored.ProfileImageKey)
	}

	downloadURL, err := f.svc.ProfilePhotoURL(ctx, created.ID)
	if err != nil {
		t.Fatalf("ProfilePhotoURL: %v", err)
	}
	if downloadURL != "https://storage.test/download/"+wantKey {
		t.Fatalf("unexpected download url: %q", downloadURL)
	}
}
