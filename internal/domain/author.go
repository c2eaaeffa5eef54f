package domain

// Author is an embedded snapshot of the user who created a recipe,
// learning plan, discussion or comment. It is copied into the owning
// document at write time rather than joined at read time, so stored
// snapshots can drift from the user record.
//
// Pointer fields distinguish "absent in the payload" from a genuine
// zero value; normalization fills them before anything is returned.
type Author struct {
	ID              string  `bson:"id" json:"id"`
	Username        *string `bson:"username" json:"username"`
	Name            *string `bson:"name" json:"name"`
	Bio             *string `bson:"bio" json:"bio"`
	ProfileImageURL *string `bson:"profileImageUrl" json:"profileImageUrl"`
	Followers       *int    `bson:"followers" json:"followers"`
	Following       *int    `bson:"following" json:"following"`
	Recipes         *int    `bson:"recipes" json:"recipes"`
	LearningPlans   *int    `bson:"learningPlans" json:"learningPlans"`
}
