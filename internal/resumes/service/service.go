package service

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/resumecraft/go-services/internal/resume"
	"github.com/resumecraft/go-services/internal/resumes"
	"github.com/resumecraft/go-services/internal/resumes/repository"
)

var ErrNotFound = errors.New("not found")

// Repo is the persistence interface both repositories satisfy.
type Repo interface {
	Create(s *resumes.Saved) (string, error)
	Get(id string) (*resumes.Saved, error)
	ListByUser(userID string) ([]*resumes.Saved, error)
	Update(id string, s *resumes.Saved) error
	Delete(id string) error
}

// Service defines the saved-resume operations used by the handler layer.
type Service interface {
	Create(userID, title string, doc *resume.Document) (*resumes.Saved, error)
	Get(id string) (*resumes.Saved, error)
	ListByUser(userID string) ([]resumes.Summary, error)
	Update(id string, title string, doc *resume.Document) error
	Delete(id string) error
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return &svc{repo: repository.NewMemoryRepo()}
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller owns the collection (and client) lifecycle.
func NewMongoService(col *mongo.Collection) Service {
	return &svc{repo: repository.NewMongoRepo(col)}
}

type svc struct {
	repo Repo
}

// titleFor derives a dashboard title when the caller passes none.
func titleFor(title string, doc *resume.Document) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	if doc != nil && strings.TrimSpace(doc.Personal.Name) != "" {
		return doc.Personal.Name
	}
	return "Untitled resume"
}

func (s *svc) Create(userID, title string, doc *resume.Document) (*resumes.Saved, error) {
	if doc == nil {
		doc = resume.DefaultDocument()
	}
	doc = doc.Clone()
	doc.Normalize()
	saved := &resumes.Saved{
		UserID:   userID,
		Title:    titleFor(title, doc),
		Template: doc.SelectedTemplate,
		Document: doc,
	}
	if _, err := s.repo.Create(saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *svc) Get(id string) (*resumes.Saved, error) {
	saved, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func (s *svc) ListByUser(userID string) ([]resumes.Summary, error) {
	list, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]resumes.Summary, 0, len(list))
	for _, saved := range list {
		out = append(out, saved.Summary())
	}
	return out, nil
}

func (s *svc) Update(id string, title string, doc *resume.Document) error {
	cur, err := s.Get(id)
	if err != nil {
		return err
	}
	if doc == nil {
		doc = cur.Document
	}
	doc = doc.Clone()
	doc.Normalize()
	next := &resumes.Saved{
		ID:       id,
		UserID:   cur.UserID,
		Title:    titleFor(title, doc),
		Template: doc.SelectedTemplate,
		Document: doc,
	}
	if err := s.repo.Update(id, next); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *svc) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
