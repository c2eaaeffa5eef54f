package domain

import "time"

// Resource is a reference attached to a learning step (an article, a
// video, a course link).
type Resource struct {
	ID    *string `bson:"id" json:"id"`
	Title *string `bson:"title" json:"title"`
	Type  *string `bson:"type" json:"type"`
	URL   *string `bson:"url" json:"url"`
}

// LearningStep is one step of a learning plan, with its own resources.
type LearningStep struct {
	ID          *string     `bson:"id" json:"id"`
	Order       *int        `bson:"order" json:"order"`
	Title       *string     `bson:"title" json:"title"`
	Description *string     `bson:"description" json:"description"`
	Resources   []*Resource `bson:"resources" json:"resources"`
	Completed   bool        `bson:"completed" json:"completed"`
}

// LearningPlan is a structured sequence of learning steps.
//
// PostOwnerName is a denormalized copy of the owning user's fullname,
// rewritten whenever the owner is renamed. It is maintained eagerly at
// write time, not computed via a join.
type LearningPlan struct {
	ID            string          `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string          `bson:"title" json:"title"`
	Description   string          `bson:"description" json:"description"`
	ImageURL      string          `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Author        *Author         `bson:"author" json:"author"`
	PostOwnerID   string          `bson:"postOwnerId,omitempty" json:"postOwnerId,omitempty"`
	PostOwnerName string          `bson:"postOwnerName,omitempty" json:"postOwnerName,omitempty"`
	Steps         []*LearningStep `bson:"steps" json:"steps"`
	Categories    []string        `bson:"categories" json:"categories"`

	Difficulty        *string `bson:"difficulty" json:"difficulty"`
	EstimatedDuration *string `bson:"estimatedDuration" json:"estimatedDuration"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
