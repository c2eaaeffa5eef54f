package domain

import "time"

// AdminUser is a platform account. Email is unique across users.
//
// Passwords are stored and compared as plain strings. That mirrors the
// system this backend replaces; hashing would be a behavior change and
// is deliberately not done here.
type AdminUser struct {
	ID       string `bson:"_id,omitempty" json:"id,omitempty"`
	Fullname string `bson:"fullname" json:"fullname"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`

	// ProfileImageKey is the object key of the user's profile photo in
	// file storage; empty when no photo has been uploaded.
	ProfileImageKey string `bson:"profileImageKey,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
