package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/resumecraft/go-services/internal/resumes"
)

var ErrNotFound = errors.New("resume not found")

// MemoryRepo is a simple in-memory repository used for unit tests and for
// running without a database.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*resumes.Saved
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*resumes.Saved)}
}

func (m *MemoryRepo) Create(s *resumes.Saved) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	m.store[s.ID] = s
	return s.ID, nil
}

func (m *MemoryRepo) Get(id string) (*resumes.Saved, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.store[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) ListByUser(userID string) ([]*resumes.Saved, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*resumes.Saved, 0, len(m.store))
	for _, s := range m.store {
		if userID == "" || s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryRepo) Update(id string, s *resumes.Saved) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	s.ID = id
	s.UserID = cur.UserID
	s.CreatedAt = cur.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	m.store[id] = s
	return nil
}

func (m *MemoryRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
