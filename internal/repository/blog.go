package repository

import (
	"context"
	"errors"

	"trailpost/internal/models"
	"trailpost/internal/slugify"

	"gorm.io/gorm"
)

// BlogRepository defines persistence operations for blog entries.
// All read and write paths are scoped to the owning user.
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id, userID uint) (*models.Blog, error)
	List(ctx context.Context, userID uint) ([]*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id, userID uint) error
	ReplaceTags(ctx context.Context, blog *models.Blog, names []string) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id, userID uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Tags").
		Where("blogs.user_id = ?", userID).
		First(&blog, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Covers both truly absent records and records owned by
			// someone else; the two are indistinguishable to callers.
			return nil, models.NewNotFoundError("Blog", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &blog, nil
}

// List returns every entry owned by userID, most recently updated first.
func (r *blogRepository) List(ctx context.Context, userID uint) ([]*models.Blog, error) {
	blogs := make([]*models.Blog, 0)
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Tags").
		Where("blogs.user_id = ?", userID).
		Order("updated_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return blogs, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	// Save refreshes updated_at; ownership was already established by the
	// scoped GetByID that produced the record.
	if err := r.db.WithContext(ctx).Save(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Blog{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Blog", id)
	}
	return nil
}

// ReplaceTags resolves each name to the caller's blog tag of that name,
// creating missing ones with a freshly derived slug, and replaces the
// entry's tag set. Tag rows shared with other entries are left untouched.
func (r *blogRepository) ReplaceTags(ctx context.Context, blog *models.Blog, names []string) error {
	tags := make([]models.BlogTag, 0, len(names))
	for _, name := range names {
		tag := models.BlogTag{UserID: blog.UserID, Name: name}
		err := r.db.WithContext(ctx).
			Where("user_id = ? AND name = ?", blog.UserID, name).
			Attrs(models.BlogTag{Slug: slugify.Make(name)}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		tags = append(tags, tag)
	}

	if err := r.db.WithContext(ctx).Model(blog).Association("Tags").Replace(tags); err != nil {
		return models.NewInternalError(err)
	}
	blog.Tags = tags
	return nil
}
