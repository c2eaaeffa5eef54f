package domain

import "time"

// Comment is embedded in a Discussion document.
type Comment struct {
	ID        *string   `bson:"id" json:"id"`
	Content   string    `bson:"content" json:"content"`
	Author    *Author   `bson:"author" json:"author"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Discussion is a community discussion thread. Images, tags and comments
// are never null after creation; absent lists are stored as empty.
type Discussion struct {
	ID        string     `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string     `bson:"title" json:"title"`
	Content   string     `bson:"content" json:"content"`
	Images    []string   `bson:"images" json:"images"`
	Tags      []string   `bson:"tags" json:"tags"`
	Author    *Author    `bson:"author" json:"author"`
	Likes     *int       `bson:"likes" json:"likes"`
	Comments  []*Comment `bson:"comments" json:"comments"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}
