package mongo

import (
	"context"
	"errors"

	"skillsynclab/backend/internal/domain"
	"skillsynclab/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const adminUserCollectionName = "admin_users"

// mongoAdminUserRepository implements repository.AdminUserRepository
type mongoAdminUserRepository struct {
	collection *mongo.Collection
}

// NewMongoAdminUserRepository creates a new AdminUser repository backed by MongoDB.
func NewMongoAdminUserRepository(db *mongo.Database) repository.AdminUserRepository {
	return &mongoAdminUserRepository{
		collection: db.Collection(adminUserCollectionName),
	}
}

// Create inserts a new user. Relies on the unique email index to catch
// concurrent registrations with the same address.
func (r *mongoAdminUserRepository) Create(ctx context.Context, user *domain.AdminUser) (string, error) {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrDuplicateKey
		}
		return "", err
	}
	return user.ID, nil
}

// GetAll returns every user account.
func (r *mongoAdminUserRepository) GetAll(ctx context.Context) ([]domain.AdminUser, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []domain.AdminUser
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID retrieves a user by id.
func (r *mongoAdminUserRepository) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email address.
func (r *mongoAdminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether any user has the given email.
func (r *mongoAdminUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update replaces the stored user document wholesale.
func (r *mongoAdminUserRepository) Update(ctx context.Context, user *domain.AdminUser) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateKey
		}
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a user record by id.
func (r *mongoAdminUserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureAdminUserIndexes creates necessary indexes for the admin_users
// collection. The unique email index backs the duplicate-email conflict check.
func EnsureAdminUserIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
