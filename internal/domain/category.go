package domain

// Category labels recipes and learning plans. Referenced by name, not id,
// from the documents that use it.
type Category struct {
	ID   string `bson:"_id,omitempty" json:"id,omitempty"`
	Name string `bson:"name" json:"name"`
}
