package service

import (
	"strings"
	"time"

	"skillsynclab/backend/internal/domain"

	"github.com/google/uuid"
)

// Normalization fills missing fields with their domain defaults and assigns
// generated ids to nested items that lack one. Documents written before a
// schema change may be missing any of these fields, so every read and write
// path runs through here before a document is returned or persisted.
//
// All of these functions mutate the given value in place, never touch
// storage, and are idempotent: a second pass is a no-op.

// Default values applied during normalization.
const (
	DefaultDifficulty     = "Easy"
	DefaultServings       = 1
	UnknownAuthorID       = "unknown"
	UnknownAuthorName     = "Unknown User"
	UnknownIngredientName = "Unknown Ingredient"
	UntitledRecipeTitle   = "Untitled Recipe"
)

func strOr(v *string, def string) *string {
	if v == nil {
		return &def
	}
	return v
}

func intOr(v *int, def int) *int {
	if v == nil {
		return &def
	}
	return v
}

// newItemID returns a fresh identifier for a nested sub-object. A 128-bit
// random UUID keeps the collision probability negligible without a trip to
// the database.
func newItemID() *string {
	id := uuid.NewString()
	return &id
}

// unknownAuthor returns the sentinel author substituted when a stored
// document has no author at all.
func unknownAuthor() *domain.Author {
	a := &domain.Author{ID: UnknownAuthorID}
	normalizeAuthor(a)
	return a
}

func normalizeAuthor(a *domain.Author) {
	if a.ID == "" {
		a.ID = UnknownAuthorID
	}
	a.Username = strOr(a.Username, UnknownAuthorID)
	a.Name = strOr(a.Name, UnknownAuthorName)
	a.Bio = strOr(a.Bio, "")
	a.ProfileImageURL = strOr(a.ProfileImageURL, "")
	a.Followers = intOr(a.Followers, 0)
	a.Following = intOr(a.Following, 0)
	a.Recipes = intOr(a.Recipes, 0)
	a.LearningPlans = intOr(a.LearningPlans, 0)
}

// NormalizeRecipe makes a recipe fully populated: no nil lists, no nested
// item without an id, no nil scalar in a field that has a default.
func NormalizeRecipe(r *domain.Recipe) {
	if r == nil {
		return
	}

	if strings.TrimSpace(r.Title) == "" {
		r.Title = UntitledRecipeTitle
	}
	if r.Author == nil {
		r.Author = unknownAuthor()
	} else {
		normalizeAuthor(r.Author)
	}

	if r.ImageURLs == nil {
		r.ImageURLs = []string{}
	}
	if r.Categories == nil {
		r.Categories = []string{}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}

	ingredients := make([]*domain.Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if ing == nil {
			continue
		}
		if ing.ID == nil {
			ing.ID = newItemID()
		}
		ing.Name = strOr(ing.Name, UnknownIngredientName)
		ing.Quantity = strOr(ing.Quantity, "0")
		ing.Unit = strOr(ing.Unit, "")
		ingredients = append(ingredients, ing)
	}
	r.Ingredients = ingredients

	steps := make([]*domain.Step, 0, len(r.Steps))
	for _, step := range r.Steps {
		if step == nil {
			continue
		}
		if step.ID == nil {
			step.ID = newItemID()
		}
		step.Order = intOr(step.Order, 0)
		step.Instruction = strOr(step.Instruction, "")
		step.ImageURL = strOr(step.ImageURL, "")
		steps = append(steps, step)
	}
	r.Steps = steps

	r.Likes = intOr(r.Likes, 0)
	r.PreparationTime = intOr(r.PreparationTime, 0)
	r.CookingTime = intOr(r.CookingTime, 0)
	r.Servings = intOr(r.Servings, DefaultServings)
	r.Difficulty = strOr(r.Difficulty, DefaultDifficulty)

	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
}

// NormalizeDiscussion makes a discussion fully populated: images, tags and
// comments are never nil, likes never nil, every comment has an id and a
// populated author.
func NormalizeDiscussion(d *domain.Discussion) {
	if d == nil {
		return
	}

	if d.Author == nil {
		d.Author = unknownAuthor()
	} else {
		normalizeAuthor(d.Author)
	}

	if d.Images == nil {
		d.Images = []string{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}

	comments := make([]*domain.Comment, 0, len(d.Comments))
	for _, c := range d.Comments {
		if c == nil {
			continue
		}
		if c.ID == nil {
			c.ID = newItemID()
		}
		if c.Author == nil {
			c.Author = unknownAuthor()
		} else {
			normalizeAuthor(c.Author)
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now().UTC()
		}
		comments = append(comments, c)
	}
	d.Comments = comments

	d.Likes = intOr(d.Likes, 0)

	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}
}

// NormalizeLearningPlan makes a learning plan fully populated, assigning
// ids to steps and their resources.
func NormalizeLearningPlan(p *domain.LearningPlan) {
	if p == nil {
		return
	}

	if p.Author == nil {
		p.Author = unknownAuthor()
	} else {
		normalizeAuthor(p.Author)
	}

	if p.Categories == nil {
		p.Categories = []string{}
	}

	steps := make([]*domain.LearningStep, 0, len(p.Steps))
	for _, step := range p.Steps {
		if step == nil {
			continue
		}
		if step.ID == nil {
			step.ID = newItemID()
		}
		step.Order = intOr(step.Order, 0)
		step.Title = strOr(step.Title, "")
		step.Description = strOr(step.Description, "")

		resources := make([]*domain.Resource, 0, len(step.Resources))
		for _, res := range step.Resources {
			if res == nil {
				continue
			}
			if res.ID == nil {
				res.ID = newItemID()
			}
			res.Title = strOr(res.Title, "")
			res.Type = strOr(res.Type, "")
			res.URL = strOr(res.URL, "")
			resources = append(resources, res)
		}
		step.Resources = resources

		steps = append(steps, step)
	}
	p.Steps = steps

	p.Difficulty = strOr(p.Difficulty, DefaultDifficulty)
	p.EstimatedDuration = strOr(p.EstimatedDuration, "")

	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
}
