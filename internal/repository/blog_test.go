package repository

import (
	"context"
	"testing"
	"time"

	"trailpost/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRepository_OwnershipScope(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	blog := &models.Blog{UserID: owner.ID, Title: "sample title", Content: "sample content"}
	require.NoError(t, repo.Create(ctx, blog))

	// Owner sees the record
	got, err := repo.GetByID(ctx, blog.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "sample title", got.Title)
	assert.Equal(t, owner.ID, got.UserID)

	// Another user gets the same answer as for an absent id
	_, err = repo.GetByID(ctx, blog.ID, other.ID)
	assertNotFound(t, err)

	_, err = repo.GetByID(ctx, 9999, other.ID)
	assertNotFound(t, err)
}

func TestBlogRepository_ListOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")

	first := &models.Blog{UserID: owner.ID, Title: "first", Content: "a"}
	require.NoError(t, repo.Create(ctx, first))
	time.Sleep(10 * time.Millisecond)

	second := &models.Blog{UserID: owner.ID, Title: "second", Content: "b"}
	require.NoError(t, repo.Create(ctx, second))

	// Most recently created first
	blogs, err := repo.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "second", blogs[0].Title)
	assert.Equal(t, "first", blogs[1].Title)

	// Updating the older entry moves it to the front
	time.Sleep(10 * time.Millisecond)
	first.Content = "updated"
	require.NoError(t, repo.Update(ctx, first))

	blogs, err = repo.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "first", blogs[0].Title)
}

func TestBlogRepository_ListOnlyOwned(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	require.NoError(t, repo.Create(ctx, &models.Blog{UserID: owner.ID, Title: "mine", Content: "x"}))
	require.NoError(t, repo.Create(ctx, &models.Blog{UserID: other.ID, Title: "theirs", Content: "y"}))

	blogs, err := repo.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "mine", blogs[0].Title)

	// A user with no entries gets an empty list, not an error
	empty := createTestUser(t, db, "empty@example.com")
	blogs, err = repo.List(ctx, empty.ID)
	require.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestBlogRepository_UpdateRefreshesTimestamp(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	blog := &models.Blog{UserID: owner.ID, Title: "title", Content: "content"}
	require.NoError(t, repo.Create(ctx, blog))

	before := blog.UpdatedAt
	time.Sleep(10 * time.Millisecond)

	blog.Content = "new content"
	require.NoError(t, repo.Update(ctx, blog))

	got, err := repo.GetByID(ctx, blog.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(before), "updated_at must be refreshed on save")
	assert.Equal(t, "title", got.Title, "untouched fields survive the update")
}

func TestBlogRepository_DeleteScope(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	blog := &models.Blog{UserID: owner.ID, Title: "title", Content: "content"}
	require.NoError(t, repo.Create(ctx, blog))

	// Cross-owner delete is indistinguishable from deleting a missing id
	assertNotFound(t, repo.Delete(ctx, blog.ID, other.ID))

	// The record survived the foreign delete attempt
	_, err := repo.GetByID(ctx, blog.ID, owner.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, blog.ID, owner.ID))
	_, err = repo.GetByID(ctx, blog.ID, owner.ID)
	assertNotFound(t, err)

	// Deleting twice reports not found
	assertNotFound(t, repo.Delete(ctx, blog.ID, owner.ID))
}

func TestBlogRepository_ReplaceTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	blog := &models.Blog{UserID: owner.ID, Title: "title", Content: "content"}
	require.NoError(t, repo.Create(ctx, blog))

	require.NoError(t, repo.ReplaceTags(ctx, blog, []string{"Camp Fire", "hiking"}))

	got, err := repo.GetByID(ctx, blog.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 2)

	bySlug := map[string]string{}
	for _, tag := range got.Tags {
		bySlug[tag.Slug] = tag.Name
	}
	assert.Equal(t, "Camp Fire", bySlug["camp-fire"], "slug is derived from the name")
	assert.Equal(t, "hiking", bySlug["hiking"])

	// Replacing the set detaches but does not delete shared tag rows
	require.NoError(t, repo.ReplaceTags(ctx, blog, []string{"hiking"}))
	got, err = repo.GetByID(ctx, blog.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)

	var tagCount int64
	require.NoError(t, db.Model(&models.BlogTag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(2), tagCount, "detached tag row survives")
}

func TestBlogRepository_ReplaceTagsDeduplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")

	first := &models.Blog{UserID: owner.ID, Title: "one", Content: "a"}
	require.NoError(t, repo.Create(ctx, first))
	second := &models.Blog{UserID: owner.ID, Title: "two", Content: "b"}
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.ReplaceTags(ctx, first, []string{"hiking"}))
	require.NoError(t, repo.ReplaceTags(ctx, second, []string{"hiking"}))

	// Both entries share a single tag row per (user, name)
	var tagCount int64
	require.NoError(t, db.Model(&models.BlogTag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(1), tagCount)
}

func TestBlogRepository_DeleteDoesNotCascadeTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	blog := &models.Blog{UserID: owner.ID, Title: "title", Content: "content"}
	require.NoError(t, repo.Create(ctx, blog))
	require.NoError(t, repo.ReplaceTags(ctx, blog, []string{"hiking"}))

	require.NoError(t, repo.Delete(ctx, blog.ID, owner.ID))

	var tagCount int64
	require.NoError(t, db.Model(&models.BlogTag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(1), tagCount, "tags outlive the entries that referenced them")
}
