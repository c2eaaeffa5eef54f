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

const learningPlanCollectionName = "learning_plans"

// mongoLearningPlanRepository implements repository.LearningPlanRepository
type mongoLearningPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoLearningPlanRepository creates a new LearningPlan repository backed by MongoDB.
func NewMongoLearningPlanRepository(db *mongo.Database) repository.LearningPlanRepository {
	return &mongoLearningPlanRepository{
		collection: db.Collection(learningPlanCollectionName),
	}
}

// Create inserts a new learning plan.
func (r *mongoLearningPlanRepository) Create(ctx context.Context, plan *domain.LearningPlan) (string, error) {
	if plan.ID == "" {
		plan.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.collection.InsertOne(ctx, plan); err != nil {
		return "", err
	}
	return plan.ID, nil
}

// GetAll returns every learning plan, newest first.
func (r *mongoLearningPlanRepository) GetAll(ctx context.Context) ([]domain.LearningPlan, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []domain.LearningPlan
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// GetByID retrieves a learning plan by id.
func (r *mongoLearningPlanRepository) GetByID(ctx context.Context, id string) (*domain.LearningPlan, error) {
	var plan domain.LearningPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetByOwnerID retrieves all plans owned by the given user. Used by the
// owner-rename propagation to rewrite the denormalized postOwnerName.
func (r *mongoLearningPlanRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]domain.LearningPlan, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"postOwnerId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []domain.LearningPlan
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Update replaces the stored plan document wholesale.
func (r *mongoLearningPlanRepository) Update(ctx context.Context, plan *domain.LearningPlan) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": plan.ID}, plan)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a learning plan by id.
func (r *mongoLearningPlanRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByOwnerID removes every plan owned by the given user. Matching zero
// documents is not an error; the cascade is best effort.
func (r *mongoLearningPlanRepository) DeleteByOwnerID(ctx context.Context, ownerID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"postOwnerId": ownerID})
	return err
}

// EnsureLearningPlanIndexes creates necessary indexes for the learning_plans collection.
func EnsureLearningPlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "postOwnerId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
