package drafts

import (
	"context"
	"sync"
	"time"
)

// Repository provides draft persistence operations.
type Repository interface {
	Save(ctx context.Context, d *Draft) error
	Get(ctx context.Context, sessionID string) (*Draft, error)
	Delete(ctx context.Context, sessionID string) error
}

// MemoryRepository keeps drafts in a map. Used in tests and when no Redis
// is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Draft
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Draft)}
}

func (r *MemoryRepository) Save(ctx context.Context, d *Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[d.SessionID] = d
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, sessionID string) (*Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.store[sessionID]
	if !ok {
		return nil, nil
	}
	if !d.ExpiresAt.IsZero() && time.Now().UTC().After(d.ExpiresAt) {
		return nil, nil
	}
	return d, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, sessionID)
	return nil
}
