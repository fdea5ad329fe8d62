package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumecraft/go-services/internal/resume"
	"github.com/resumecraft/go-services/internal/resumes"
)

func saved(userID, title string) *resumes.Saved {
	doc := resume.DefaultDocument()
	doc.Personal.Name = title
	return &resumes.Saved{UserID: userID, Title: title, Template: doc.SelectedTemplate, Document: doc}
}

func TestMemoryRepoCRUD(t *testing.T) {
	repo := NewMemoryRepo()

	id, err := repo.Create(saved("user-1", "First"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	next := saved("user-1", "Renamed")
	require.NoError(t, repo.Update(id, next))
	got, err = repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.True(t, !got.UpdatedAt.Before(got.CreatedAt))

	require.NoError(t, repo.Delete(id))
	_, err = repo.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoListByUser(t *testing.T) {
	repo := NewMemoryRepo()
	_, err := repo.Create(saved("user-1", "A"))
	require.NoError(t, err)
	_, err = repo.Create(saved("user-1", "B"))
	require.NoError(t, err)
	_, err = repo.Create(saved("user-2", "C"))
	require.NoError(t, err)

	list, err := repo.ListByUser("user-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	all, err := repo.ListByUser("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryRepoNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	_, err := repo.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Update("nope", saved("u", "t")), ErrNotFound)
	assert.ErrorIs(t, repo.Delete("nope"), ErrNotFound)
}

func TestMemoryRepoUpdatePreservesOwnership(t *testing.T) {
	repo := NewMemoryRepo()
	id, err := repo.Create(saved("user-1", "Mine"))
	require.NoError(t, err)

	// an update cannot reassign the resume to another user
	require.NoError(t, repo.Update(id, saved("user-2", "Stolen")))
	got, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
}
