package memory

import (
	"strings"
)

// Feedback values accepted by AddFeedback, compared case-insensitively.
const (
	FeedbackLike    = "like"
	FeedbackDislike = "dislike"
)

// Record is one user's long-term memory: what is in the pantry and which
// recipes they liked or disliked.
//
// Invariant: a recipe name is in at most one of Liked and Disliked.
type Record struct {
	Pantry   Set
	Liked    Set
	Disliked Set
}

func NewRecord() *Record {
	return &Record{Pantry: NewSet(), Liked: NewSet(), Disliked: NewSet()}
}

// Normalize lowercases and trims a pantry item or recipe name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *Record) AddToPantry(items []string) {
	for _, it := range items {
		if n := Normalize(it); n != "" {
			r.Pantry.Add(n)
		}
	}
}

func (r *Record) RemoveFromPantry(items []string) {
	for _, it := range items {
		r.Pantry.Remove(Normalize(it))
	}
}

// AddFeedback records a like or dislike for recipe. Any other feedback value
// leaves the record unchanged and reports false.
func (r *Record) AddFeedback(recipe, feedback string) bool {
	name := Normalize(recipe)
	switch strings.ToLower(feedback) {
	case FeedbackLike:
		r.Liked.Add(name)
		r.Disliked.Remove(name)
	case FeedbackDislike:
		r.Disliked.Add(name)
		r.Liked.Remove(name)
	default:
		return false
	}
	return true
}

func (r *Record) PantryItems() []string     { return r.Pantry.Sorted() }
func (r *Record) LikedRecipes() []string    { return r.Liked.Sorted() }
func (r *Record) DislikedRecipes() []string { return r.Disliked.Sorted() }

// Clone returns a deep copy.
func (r *Record) Clone() *Record {
	return &Record{
		Pantry:   NewSet(r.PantryItems()...),
		Liked:    NewSet(r.LikedRecipes()...),
		Disliked: NewSet(r.DislikedRecipes()...),
	}
}
