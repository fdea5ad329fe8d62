// Package drafts persists the in-progress document of one editing session
// as a whole-document JSON blob under a session-scoped key. This is the
// server-side stand-in for the browser's opportunistic local-storage save:
// best effort, no schema version field, corrupt blobs silently replaced by
// a fresh default document.
package drafts

import (
	"time"

	"github.com/resumecraft/go-services/internal/resume"
)

// Draft is one session's in-progress document.
type Draft struct {
	SessionID string           `json:"sessionId" bson:"_id"`
	Document  *resume.Document `json:"document" bson:"document"`
	UpdatedAt time.Time        `json:"updatedAt" bson:"updatedAt"`
	ExpiresAt time.Time        `json:"expiresAt" bson:"expiresAt"`
}
