package domain

import "time"

// Ingredient is embedded in a Recipe. Every field other than the id can be
// omitted by the client and is filled with a sentinel default during
// normalization; ids are assigned when missing.
type Ingredient struct {
	ID       *string `bson:"id" json:"id"`
	Name     *string `bson:"name" json:"name"`
	Quantity *string `bson:"quantity" json:"quantity"`
	Unit     *string `bson:"unit" json:"unit"`
}

// Step is a single preparation step embedded in a Recipe.
type Step struct {
	ID          *string `bson:"id" json:"id"`
	Order       *int    `bson:"order" json:"order"`
	Instruction *string `bson:"instruction" json:"instruction"`
	ImageURL    *string `bson:"imageUrl" json:"imageUrl"`
}

// Recipe is a shared recipe document. List fields may arrive as null from
// the client and are never stored or returned as null; nested ingredients
// and steps carry their own generated ids.
type Recipe struct {
	ID          string        `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	ImageURLs   []string      `bson:"imageUrls" json:"imageUrls"`
	VideoURL    string        `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Author      *Author       `bson:"author" json:"author"`
	Ingredients []*Ingredient `bson:"ingredients" json:"ingredients"`
	Steps       []*Step       `bson:"steps" json:"steps"`
	Categories  []string      `bson:"categories" json:"categories"`
	Tags        []string      `bson:"tags" json:"tags"`

	Likes           *int    `bson:"likes" json:"likes"`
	PreparationTime *int    `bson:"preparationTime" json:"preparationTime"`
	CookingTime     *int    `bson:"cookingTime" json:"cookingTime"`
	Servings        *int    `bson:"servings" json:"servings"`
	Difficulty      *string `bson:"difficulty" json:"difficulty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
