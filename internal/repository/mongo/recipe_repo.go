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

const recipeCollectionName = "recipes"

// mongoRecipeRepository implements repository.RecipeRepository
type mongoRecipeRepository struct {
	collection *mongo.Collection
}

// NewMongoRecipeRepository creates a new Recipe repository backed by MongoDB.
func NewMongoRecipeRepository(db *mongo.Database) repository.RecipeRepository {
	return &mongoRecipeRepository{
		collection: db.Collection(recipeCollectionName),
	}
}

// Create inserts a new recipe. The caller is expected to have validated and
// normalized the document; the repository only assigns the document id.
func (r *mongoRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) (string, error) {
	if recipe.ID == "" {
		recipe.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.collection.InsertOne(ctx, recipe); err != nil {
		return "", err
	}
	return recipe.ID, nil
}

// GetAll returns every recipe, newest first.
func (r *mongoRecipeRepository) GetAll(ctx context.Context) ([]domain.Recipe, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recipes []domain.Recipe
	if err = cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetByID retrieves a recipe by its id.
func (r *mongoRecipeRepository) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Update replaces the stored document wholesale. Updates are full-field
// replaces driven by the service, never partial patches.
func (r *mongoRecipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": recipe.ID}, recipe)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a recipe by id.
func (r *mongoRecipeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureRecipeIndexes creates necessary indexes for the recipes collection.
func EnsureRecipeIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}},
			Options: options.Index().SetName("recipe_text_search"),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
