package resumes

import (
	"time"

	"github.com/resumecraft/go-services/internal/resume"
)

// Saved is one saved resume on a user's dashboard: the summary row (title,
// template, last-updated) plus the embedded full document.
type Saved struct {
	ID        string           `json:"id" bson:"id"`
	UserID    string           `json:"userId" bson:"userId"`
	Title     string           `json:"title" bson:"title"`
	Template  string           `json:"template" bson:"template"`
	Document  *resume.Document `json:"document" bson:"document"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// Summary is the dashboard listing row (no embedded document).
type Summary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Template  string    `json:"template"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Saved) Summary() Summary {
	return Summary{ID: s.ID, Title: s.Title, Template: s.Template, UpdatedAt: s.UpdatedAt}
}
