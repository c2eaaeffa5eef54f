package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillsynclab/backend/internal/domain"
	"skillsynclab/backend/internal/mail"
	"skillsynclab/backend/internal/repository"
	"skillsynclab/backend/internal/storage"

	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoProfilePhoto     = errors.New("user has no profile photo")
)

// LoginResult is the payload returned on a successful login.
type LoginResult struct {
	Message  string `json:"message"`
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

// --- Service Interface ---
type AdminUserService interface {
	CreateUser(ctx context.Context, user *domain.AdminUser) (*domain.AdminUser, error)
	GetAllUsers(ctx context.Context) ([]domain.AdminUser, error)
	GetUserByID(ctx context.Context, id string) (*domain.AdminUser, error)
	UpdateUser(ctx context.Context, id string, updated *domain.AdminUser) (*domain.AdminUser, error)
	DeleteUser(ctx context.Context, id string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	SendVerificationCode(ctx context.Context, email, code string) error
	ProfilePhotoUploadURL(ctx context.Context, id, contentType string) (string, error)
	ProfilePhotoURL(ctx context.Context, id string) (string, error)
}

// --- Service Implementation ---

// adminUserService implements the AdminUserService interface.
type adminUserService struct {
	userRepo repository.AdminUserRepository
	planRepo repository.LearningPlanRepository
	purger   *CascadePurger
	mailer   mail.Sender
	files    storage.FileStorage
	log      *zap.SugaredLogger
}

// NewAdminUserService creates a new instance of adminUserService.
func NewAdminUserService(
	userRepo repository.AdminUserRepository,
	planRepo repository.LearningPlanRepository,
	purger *CascadePurger,
	mailer mail.Sender,
	files storage.FileStorage,
	log *zap.SugaredLogger,
) AdminUserService {
	return &adminUserService{
		userRepo: userRepo,
		planRepo: planRepo,
		purger:   purger,
		mailer:   mailer,
		files:    files,
		log:      log,
	}
}

// CreateUser registers a new account. A duplicate email is a conflict, not
// a generic failure.
func (s *adminUserService) CreateUser(ctx context.Context, user *domain.AdminUser) (*domain.AdminUser, error) {
	if strings.TrimSpace(user.Fullname) == "" || strings.TrimSpace(user.Email) == "" ||
		user.Password == "" {
		return nil, fmt.Errorf("%w: fullname, email and password are required", ErrValidation)
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		s.log.Errorw("failed to check email", "op", "create", "email", user.Email, "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// The unique index catches the race between the existence check
		// and the insert.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		s.log.Errorw("failed to save user", "op", "create", "email", user.Email, "err", err)
		return nil, err
	}
	user.ID = id
	return user, nil
}

// GetAllUsers returns every account.
func (s *adminUserService) GetAllUsers(ctx context.Context) ([]domain.AdminUser, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		s.log.Errorw("failed to fetch users", "op", "list", "err", err)
		return nil, err
	}
	return users, nil
}

// GetUserByID fetches one account.
func (s *adminUserService) GetUserByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.log.Errorw("failed to fetch user", "op", "get", "id", id, "err", err)
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces fullname, email and password. When the fullname
// changes, the denormalized postOwnerName on every learning plan owned by
// this user is rewritten and persisted, one save per plan. The rewrite is
// not transactional with the user update; last writer wins per document.
func (s *adminUserService) UpdateUser(ctx context.Context, id string, updated *domain.AdminUser) (*domain.AdminUser, error) {
	if strings.TrimSpace(updated.Fullname) == "" || strings.TrimSpace(updated.Email) == "" ||
		updated.Password == "" {
		return nil, fmt.Errorf("%w: fullname, email and password are required", ErrValidation)
	}

	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.log.Errorw("failed to load user for update", "op", "update", "id", id, "err", err)
		return nil, err
	}

	renamed := existing.Fullname != updated.Fullname

	existing.Fullname = updated.Fullname
	existing.Email = updated.Email
	existing.Password = updated.Password
	existing.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		s.log.Errorw("failed to update user", "op", "update", "id", id, "err", err)
		return nil, err
	}

	if renamed {
		if err := s.propagateOwnerName(ctx, id, existing.Fullname); err != nil {
			return nil, err
		}
	}

	return existing, nil
}

// propagateOwnerName rewrites postOwnerName on every learning plan owned by
// the user. An eagerly maintained materialized view, not a live join.
func (s *adminUserService) propagateOwnerName(ctx context.Context, ownerID, fullname string) error {
	plans, err := s.planRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		s.log.Errorw("failed to load plans for rename", "op", "update", "ownerId", ownerID, "err", err)
		return err
	}
	for i := range plans {
		plans[i].PostOwnerName = fullname
		if err := s.planRepo.Update(ctx, &plans[i]); err != nil {
			s.log.Errorw("failed to rewrite plan owner name", "op", "update",
				"ownerId", ownerID, "planId", plans[i].ID, "err", err)
			return err
		}
	}
	return nil
}

// DeleteUser removes the account and everything it owns. Dependent
// collections are purged first, the user record last, so an interruption
// leaves orphans rather than a user whose dependents half-exist.
func (s *adminUserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		s.log.Errorw("failed to load user for delete", "op", "delete", "id", id, "err", err)
		return err
	}

	if err := s.purger.PurgeUserData(ctx, id); err != nil {
		return err
	}

	if user.ProfileImageKey != "" {
		// Best effort; a stale object in storage is harmless.
		if err := s.files.DeleteObject(ctx, user.ProfileImageKey); err != nil {
			s.log.Warnw("failed to delete profile photo object", "id", id, "key", user.ProfileImageKey, "err", err)
		}
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		s.log.Errorw("failed to delete user", "op", "delete", "id", id, "err", err)
		return err
	}
	return nil
}

// Login authenticates by email and password. The password comparison is an
// exact string match against the stored value.
func (s *adminUserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.log.Errorw("failed to fetch user for login", "op", "login", "email", email, "err", err)
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return &LoginResult{
		Message:  "Login Successful",
		ID:       user.ID,
		FullName: user.Fullname,
	}, nil
}

// EmailExists reports whether an account with the given email exists.
func (s *adminUserService) EmailExists(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, fmt.Errorf("%w: email is required", ErrValidation)
	}
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.log.Errorw("failed to check email", "op", "checkEmail", "email", email, "err", err)
		return false, err
	}
	return exists, nil
}

// SendVerificationCode delivers the given code to the given address via the
// mail collaborator. The code is generated by the caller.
func (s *adminUserService) SendVerificationCode(ctx context.Context, email, code string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: email and code are required", ErrValidation)
	}
	if err := s.mailer.SendVerificationCode(email, code); err != nil {
		s.log.Errorw("failed to send verification code", "op", "sendVerificationCode", "email", email, "err", err)
		return err
	}
	return nil
}

// ProfilePhotoUploadURL issues a presigned upload URL for the user's
// profile photo and records the object key on the account.
func (s *adminUserService) ProfilePhotoUploadURL(ctx context.Context, id, contentType string) (string, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		s.log.Errorw("failed to load user for photo upload", "op", "profilePhoto", "id", id, "err", err)
		return "", err
	}

	key := "profile/" + id
	url, err := s.files.GeneratePresignedUploadURL(ctx, key, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		s.log.Errorw("failed to presign photo upload", "op", "profilePhoto", "id", id, "err", err)
		return "", err
	}

	if user.ProfileImageKey != key {
		user.ProfileImageKey = key
		user.UpdatedAt = time.Now().UTC()
		if err := s.userRepo.Update(ctx, user); err != nil {
			s.log.Errorw("failed to record photo key", "op", "profilePhoto", "id", id, "err", err)
			return "", err
		}
	}
	return url, nil
}

// ProfilePhotoURL issues a presigned download URL for the user's profile photo.
func (s *adminUserService) ProfilePhotoURL(ctx context.Context, id string) (string, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		s.log.Errorw("failed to load user for photo view", "op", "profilePhoto", "id", id, "err", err)
		return "", err
	}
	if user.ProfileImageKey == "" {
		return "", ErrNoProfilePhoto
	}

	url, err := s.files.GeneratePresignedDownloadURL(ctx, user.ProfileImageKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		s.log.Errorw("failed to presign photo download", "op", "profilePhoto", "id", id, "err", err)
		return "", err
	}
	return url, nil
}
