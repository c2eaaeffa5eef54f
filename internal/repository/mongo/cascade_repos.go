package mongo

import (
	"context"

	"skillsynclab/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repositories for the collections the account-deletion cascade sweeps.
// These cover posts, achievements and notifications; nothing else in this
// backend reads or writes them, so the surface is filter-deletes only.

const (
	postCollectionName         = "posts"
	achievementCollectionName  = "achievements"
	notificationCollectionName = "notifications"
)

type mongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new Post repository backed by MongoDB.
func NewMongoPostRepository(db *mongo.Database) repository.PostRepository {
	return &mongoPostRepository{collection: db.Collection(postCollectionName)}
}

// DeleteByUserID removes every post authored by the given user.
func (r *mongoPostRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

type mongoAchievementRepository struct {
	collection *mongo.Collection
}

// NewMongoAchievementRepository creates a new Achievement repository backed by MongoDB.
func NewMongoAchievementRepository(db *mongo.Database) repository.AchievementRepository {
	return &mongoAchievementRepository{collection: db.Collection(achievementCollectionName)}
}

// DeleteByOwnerID removes every achievement owned by the given user.
func (r *mongoAchievementRepository) DeleteByOwnerID(ctx context.Context, ownerID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"postOwnerId": ownerID})
	return err
}

type mongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new Notification repository backed by MongoDB.
func NewMongoNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &mongoNotificationRepository{collection: db.Collection(notificationCollectionName)}
}

// DeleteByUserID removes every notification addressed to the given user.
func (r *mongoNotificationRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

// EnsureCascadeIndexes creates the owner-id indexes the cascade filters rely on.
func EnsureCascadeIndexes(ctx context.Context, db *mongo.Database) {
	ownerIndex := func(field string) []mongo.IndexModel {
		return []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: field, Value: 1}},
				Options: options.Index(),
			},
		}
	}

	_, _ = db.Collection(postCollectionName).Indexes().CreateMany(ctx, ownerIndex("userId"))
	_, _ = db.Collection(achievementCollectionName).Indexes().CreateMany(ctx, ownerIndex("postOwnerId"))
	_, _ = db.Collection(notificationCollectionName).Indexes().CreateMany(ctx, ownerIndex("userId"))
}
