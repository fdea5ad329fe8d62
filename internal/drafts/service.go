package drafts

import (
	"context"
	"encoding/json"
	"time"

	"github.com/resumecraft/go-services/internal/resume"
	"github.com/resumecraft/go-services/pkg/logger"
)

// Service wraps a repository with the load-or-default semantics the
// editing session needs: a missing, expired, corrupt or schema-invalid
// draft yields a fresh default document, never an error in the UI path.
type Service struct {
	repo Repository
	ttl  time.Duration
}

const DefaultTTL = 30 * 24 * time.Hour

func NewService(repo Repository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{repo: repo, ttl: ttl}
}

// Load returns the session's draft document, or DefaultDocument when none
// is usable.
func (s *Service) Load(ctx context.Context, sessionID string) *resume.Document {
	d, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		logger.Warnf("drafts: load %s failed: %v", sessionID, err)
		return resume.DefaultDocument()
	}
	if d == nil || d.Document == nil {
		return resume.DefaultDocument()
	}
	// stored blobs carry no version field; the schema is the only guard
	blob, err := json.Marshal(d.Document)
	if err != nil {
		logger.Warnf("drafts: re-encode %s failed: %v", sessionID, err)
		return resume.DefaultDocument()
	}
	doc, err := resume.DecodeStored(blob)
	if err != nil {
		logger.Warnf("drafts: stored draft %s rejected, starting fresh: %v", sessionID, err)
		return resume.DefaultDocument()
	}
	return doc
}

// Save persists the current document for the session.
func (s *Service) Save(ctx context.Context, sessionID string, doc *resume.Document) error {
	now := time.Now().UTC()
	return s.repo.Save(ctx, &Draft{
		SessionID: sessionID,
		Document:  doc,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	})
}

// Clear removes the session's draft. Only an explicit user deletion calls
// this; session end never does.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}
