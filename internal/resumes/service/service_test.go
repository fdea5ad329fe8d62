package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumecraft/go-services/internal/resume"
)

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc := NewMemoryService()

	doc := resume.DefaultDocument()
	doc.Personal = resume.Personal{Name: "Jane Doe", Email: "jane@example.com"}
	doc.Skills.Technical = []string{"Go", "Go", "Redis"}

	saved, err := svc.Create("user-1", "", doc)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	// title falls back to the person's name
	assert.Equal(t, "Jane Doe", saved.Title)
	// the stored document is normalized
	assert.Equal(t, []string{"Go", "Redis"}, saved.Document.Skills.Technical)

	got, err := svc.Get(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Document, got.Document)
}

func TestCreateTitleFallbacks(t *testing.T) {
	svc := NewMemoryService()

	saved, err := svc.Create("user-1", "  My resume  ", resume.DefaultDocument())
	require.NoError(t, err)
	assert.Equal(t, "My resume", saved.Title)

	saved, err = svc.Create("user-1", "", resume.DefaultDocument())
	require.NoError(t, err)
	assert.Equal(t, "Untitled resume", saved.Title)
}

func TestCreateDoesNotAliasCallerDocument(t *testing.T) {
	svc := NewMemoryService()
	doc := resume.DefaultDocument()
	doc.Personal.Name = "Jane"

	saved, err := svc.Create("user-1", "t", doc)
	require.NoError(t, err)

	doc.Personal.Name = "mutated"
	got, err := svc.Get(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Document.Personal.Name)
}

func TestListByUserReturnsSummaries(t *testing.T) {
	svc := NewMemoryService()
	_, err := svc.Create("user-1", "A", nil)
	require.NoError(t, err)
	_, err = svc.Create("user-2", "B", nil)
	require.NoError(t, err)

	list, err := svc.ListByUser("user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Title)
	assert.Equal(t, resume.TemplateModern, list[0].Template)
}

func TestUpdate(t *testing.T) {
	svc := NewMemoryService()
	saved, err := svc.Create("user-1", "Original", nil)
	require.NoError(t, err)

	doc := resume.DefaultDocument()
	doc.SelectedTemplate = resume.TemplateProfessional
	require.NoError(t, svc.Update(saved.ID, "Renamed", doc))

	got, err := svc.Get(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, resume.TemplateProfessional, got.Template)
	assert.Equal(t, "user-1", got.UserID)

	assert.ErrorIs(t, svc.Update("missing", "x", nil), ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewMemoryService()
	saved, err := svc.Create("user-1", "t", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(saved.ID))
	_, err = svc.Get(saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(saved.ID), ErrNotFound)
}
