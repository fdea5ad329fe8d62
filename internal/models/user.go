package models

import "time"

// User represents an application user, mapped from the claims of the
// externally-issued identity token. Saved resumes are keyed by Sub.
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Sub       string    `bson:"sub" json:"sub"` // identity-provider subject
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Plan      string    `bson:"plan,omitempty" json:"plan,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
