package service

import (
	"context"
	"time"

	"skillsynclab/backend/internal/domain"
	"skillsynclab/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. Each one mirrors the Mongo implementation's
// contract: ErrNotFound for absent ids, ErrDuplicateKey for a taken email,
// filter-deletes that tolerate matching nothing.

type fakeRecipeRepo struct {
	recipes map[string]domain.Recipe
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[string]domain.Recipe)}
}

func (f *fakeRecipeRepo) Create(_ context.Context, recipe *domain.Recipe) (string, error) {
	if recipe.ID == "" {
		recipe.ID = primitive.NewObjectID().Hex()
	}
	f.recipes[recipe.ID] = *recipe
	return recipe.ID, nil
}

func (f *fakeRecipeRepo) GetAll(_ context.Context) ([]domain.Recipe, error) {
	var out []domain.Recipe
	for _, r := range f.recipes {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecipeRepo) GetByID(_ context.Context, id string) (*domain.Recipe, error) {
	r, ok := f.recipes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (f *fakeRecipeRepo) Update(_ context.Context, recipe *domain.Recipe) error {
	if _, ok := f.recipes[recipe.ID]; !ok {
		return repository.ErrNotFound
	}
	f.recipes[recipe.ID] = *recipe
	return nil
}

func (f *fakeRecipeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.recipes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.recipes, id)
	return nil
}

type fakeDiscussionRepo struct {
	discussions map[string]domain.Discussion
}

func newFakeDiscussionRepo() *fakeDiscussionRepo {
	return &fakeDiscussionRepo{discussions: make(map[string]domain.Discussion)}
}

func (f *fakeDiscussionRepo) Create(_ context.Context, d *domain.Discussion) (string, error) {
	if d.ID == "" {
		d.ID = primitive.NewObjectID().Hex()
	}
	f.discussions[d.ID] = *d
	return d.ID, nil
}

func (f *fakeDiscussionRepo) GetAll(_ context.Context) ([]domain.Discussion, error) {
	var out []domain.Discussion
	for _, d := range f.discussions {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDiscussionRepo) GetByID(_ context.Context, id string) (*domain.Discussion, error) {
	d, ok := f.discussions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (f *fakeDiscussionRepo) Update(_ context.Context, d *domain.Discussion) error {
	if _, ok := f.discussions[d.ID]; !ok {
		return repository.ErrNotFound
	}
	f.discussions[d.ID] = *d
	return nil
}

func (f *fakeDiscussionRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.discussions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.discussions, id)
	return nil
}

type fakeLearningPlanRepo struct {
	plans map[string]domain.LearningPlan
}

func newFakeLearningPlanRepo() *fakeLearningPlanRepo {
	return &fakeLearningPlanRepo{plans: make(map[string]domain.LearningPlan)}
}

func (f *fakeLearningPlanRepo) Create(_ context.Context, p *domain.LearningPlan) (string, error) {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	f.plans[p.ID] = *p
	return p.ID, nil
}

func (f *fakeLearningPlanRepo) GetAll(_ context.Context) ([]domain.LearningPlan, error) {
	var out []domain.LearningPlan
	for _, p := range f.plans {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeLearningPlanRepo) GetByID(_ context.Context, id string) (*domain.LearningPlan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *fakeLearningPlanRepo) GetByOwnerID(_ context.Context, ownerID string) ([]domain.LearningPlan, error) {
	var out []domain.LearningPlan
	for _, p := range f.plans {
		if p.PostOwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeLearningPlanRepo) Update(_ context.Context, p *domain.LearningPlan) error {
	if _, ok := f.plans[p.ID]; !ok {
		return repository.ErrNotFound
	}
	f.plans[p.ID] = *p
	return nil
}

func (f *fakeLearningPlanRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.plans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.plans, id)
	return nil
}

func (f *fakeLearningPlanRepo) DeleteByOwnerID(_ context.Context, ownerID string) error {
	for id, p := range f.plans {
		if p.PostOwnerID == ownerID {
			delete(f.plans, id)
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]domain.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *domain.Category) (string, error) {
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	f.categories[c.ID] = *c
	return c.ID, nil
}

func (f *fakeCategoryRepo) GetAll(_ context.Context) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return repository.ErrNotFound
	}
	f.categories[c.ID] = *c
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

type fakeAdminUserRepo struct {
	users map[string]domain.AdminUser
}

func newFakeAdminUserRepo() *fakeAdminUserRepo {
	return &fakeAdminUserRepo{users: make(map[string]domain.AdminUser)}
}

func (f *fakeAdminUserRepo) Create(_ context.Context, u *domain.AdminUser) (string, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return "", repository.ErrDuplicateKey
		}
	}
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}
	f.users[u.ID] = *u
	return u.ID, nil
}

func (f *fakeAdminUserRepo) GetAll(_ context.Context) ([]domain.AdminUser, error) {
	var out []domain.AdminUser
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeAdminUserRepo) GetByID(_ context.Context, id string) (*domain.AdminUser, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeAdminUserRepo) GetByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdminUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdminUserRepo) Update(_ context.Context, u *domain.AdminUser) error {
	if _, ok := f.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeAdminUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakePostRepo struct {
	posts map[string]domain.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]domain.Post)}
}

func (f *fakePostRepo) DeleteByUserID(_ context.Context, userID string) error {
	for id, p := range f.posts {
		if p.UserID == userID {
			delete(f.posts, id)
		}
	}
	return nil
}

type fakeAchievementRepo struct {
	achievements map[string]domain.Achievement
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{achievements: make(map[string]domain.Achievement)}
}

func (f *fakeAchievementRepo) DeleteByOwnerID(_ context.Context, ownerID string) error {
	for id, a := range f.achievements {
		if a.PostOwnerID == ownerID {
			delete(f.achievements, id)
		}
	}
	return nil
}

type fakeNotificationRepo struct {
	notifications map[string]domain.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]domain.Notification)}
}

func (f *fakeNotificationRepo) DeleteByUserID(_ context.Context, userID string) error {
	for id, n := range f.notifications {
		if n.UserID == userID {
			delete(f.notifications, id)
		}
	}
	return nil
}

// fakeMailer records sent messages instead of dialing SMTP.
type fakeMailer struct {
	sent []struct{ to, code string }
}

func (f *fakeMailer) SendVerificationCode(to, code string) error {
	f.sent = append(f.sent, struct{ to, code string }{to, code})
	return nil
}

// fakeFileStorage hands out deterministic URLs.
type fakeFileStorage struct {
	deleted []string
}

func (f *fakeFileStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://storage.test/upload/" + objectKey, nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/download/" + objectKey, nil
}

func (f *fakeFileStorage) DeleteObject(_ context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}
