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

const discussionCollectionName = "discussions"

// mongoDiscussionRepository implements repository.DiscussionRepository
type mongoDiscussionRepository struct {
	collection *mongo.Collection
}

// NewMongoDiscussionRepository creates a new Discussion repository backed by MongoDB.
func NewMongoDiscussionRepository(db *mongo.Database) repository.DiscussionRepository {
	return &mongoDiscussionRepository{
		collection: db.Collection(discussionCollectionName),
	}
}

// Create inserts a new discussion.
func (r *mongoDiscussionRepository) Create(ctx context.Context, discussion *domain.Discussion) (string, error) {
	if discussion.ID == "" {
		discussion.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.collection.InsertOne(ctx, discussion); err != nil {
		return "", err
	}
	return discussion.ID, nil
}

// GetAll returns every discussion, newest first.
func (r *mongoDiscussionRepository) GetAll(ctx context.Context) ([]domain.Discussion, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var discussions []domain.Discussion
	if err = cursor.All(ctx, &discussions); err != nil {
		return nil, err
	}
	return discussions, nil
}

// GetByID retrieves a discussion by id.
func (r *mongoDiscussionRepository) GetByID(ctx context.Context, id string) (*domain.Discussion, error) {
	var discussion domain.Discussion
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&discussion)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &discussion, nil
}

// Update replaces the stored discussion document wholesale.
func (r *mongoDiscussionRepository) Update(ctx context.Context, discussion *domain.Discussion) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": discussion.ID}, discussion)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a discussion by id.
func (r *mongoDiscussionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureDiscussionIndexes creates necessary indexes for the discussions collection.
func EnsureDiscussionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
