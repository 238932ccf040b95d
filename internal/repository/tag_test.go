package repository

import (
	"context"
	"testing"

	"trailpost/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogTagRepository_SaveDerivesSlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogTagRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")

	tag := &models.BlogTag{UserID: owner.ID, Name: "Sci-Fi/Fantasy!"}
	require.NoError(t, repo.Save(ctx, tag))
	assert.Equal(t, "sci-fifantasy", tag.Slug)

	// Renaming recomputes the slug; a stale value never sticks
	tag.Name = "Camp Fire"
	tag.Slug = "caller-supplied"
	require.NoError(t, repo.Save(ctx, tag))
	assert.Equal(t, "camp-fire", tag.Slug)

	got, err := repo.GetByID(ctx, tag.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "camp-fire", got.Slug)
}

func TestBlogTagRepository_Scope(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogTagRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	tag := &models.BlogTag{UserID: owner.ID, Name: "hiking"}
	require.NoError(t, repo.Save(ctx, tag))

	_, err := repo.GetByID(ctx, tag.ID, other.ID)
	assertNotFound(t, err)

	assertNotFound(t, repo.Delete(ctx, tag.ID, other.ID))

	require.NoError(t, repo.Delete(ctx, tag.ID, owner.ID))
	assertNotFound(t, repo.Delete(ctx, tag.ID, owner.ID))
}

func TestBlogTagRepository_ListOrderedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogTagRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	for _, name := range []string{"zebra", "alpha", "middle"} {
		require.NoError(t, repo.Save(ctx, &models.BlogTag{UserID: owner.ID, Name: name}))
	}
	require.NoError(t, repo.Save(ctx, &models.BlogTag{UserID: other.ID, Name: "foreign"}))

	tags, err := repo.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "alpha", tags[0].Name)
	assert.Equal(t, "middle", tags[1].Name)
	assert.Equal(t, "zebra", tags[2].Name)
}

func TestCampingTagRepository_SaveAndScope(t *testing.T) {
	db := newTestDB(t)
	repo := NewCampingTagRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	tag := &models.CampingTag{UserID: owner.ID, Name: "Lake Side"}
	require.NoError(t, repo.Save(ctx, tag))
	assert.Equal(t, "lake-side", tag.Slug)

	_, err := repo.GetByID(ctx, tag.ID, other.ID)
	assertNotFound(t, err)

	got, err := repo.GetByID(ctx, tag.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lake Side", got.Name)
}
