package domain

import "time"

// Post is a user-authored feed post. The backend only touches posts when
// cascading a user deletion, so the model carries just the fields the
// cascade filters on.
type Post struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string    `bson:"userId" json:"userId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Achievement is a badge-style record owned by a user, removed when the
// owner's account is deleted.
type Achievement struct {
	ID          string    `bson:"_id,omitempty" json:"id,omitempty"`
	PostOwnerID string    `bson:"postOwnerId" json:"postOwnerId"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Notification is addressed to a user and deleted along with the account.
type Notification struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string    `bson:"userId" json:"userId"`
	Message   string    `bson:"message" json:"message"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
