package repository

import (
	"context"
	"errors"

	"trailpost/internal/models"
	"trailpost/internal/slugify"

	"gorm.io/gorm"
)

// BlogTagRepository defines persistence operations for blog tags,
// scoped to the user who created them.
type BlogTagRepository interface {
	List(ctx context.Context, userID uint) ([]*models.BlogTag, error)
	GetByID(ctx context.Context, id, userID uint) (*models.BlogTag, error)
	Save(ctx context.Context, tag *models.BlogTag) error
	Delete(ctx context.Context, id, userID uint) error
}

// CampingTagRepository is the camping-namespace counterpart of
// BlogTagRepository; the two tag tables are disjoint.
type CampingTagRepository interface {
	List(ctx context.Context, userID uint) ([]*models.CampingTag, error)
	GetByID(ctx context.Context, id, userID uint) (*models.CampingTag, error)
	Save(ctx context.Context, tag *models.CampingTag) error
	Delete(ctx context.Context, id, userID uint) error
}

type blogTagRepository struct {
	db *gorm.DB
}

// NewBlogTagRepository creates a new blog tag repository
func NewBlogTagRepository(db *gorm.DB) BlogTagRepository {
	return &blogTagRepository{db: db}
}

func (r *blogTagRepository) List(ctx context.Context, userID uint) ([]*models.BlogTag, error) {
	tags := make([]*models.BlogTag, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *blogTagRepository) GetByID(ctx context.Context, id, userID uint) (*models.BlogTag, error) {
	var tag models.BlogTag
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

// Save re-derives the slug from the current name before persisting, so a
// renamed tag can never carry a stale slug.
func (r *blogTagRepository) Save(ctx context.Context, tag *models.BlogTag) error {
	tag.Slug = slugify.Make(tag.Name)
	if err := r.db.WithContext(ctx).Save(tag).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blogTagRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.BlogTag{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Tag", id)
	}
	return nil
}

type campingTagRepository struct {
	db *gorm.DB
}

// NewCampingTagRepository creates a new camping tag repository
func NewCampingTagRepository(db *gorm.DB) CampingTagRepository {
	return &campingTagRepository{db: db}
}

func (r *campingTagRepository) List(ctx context.Context, userID uint) ([]*models.CampingTag, error) {
	tags := make([]*models.CampingTag, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *campingTagRepository) GetByID(ctx context.Context, id, userID uint) (*models.CampingTag, error) {
	var tag models.CampingTag
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

func (r *campingTagRepository) Save(ctx context.Context, tag *models.CampingTag) error {
	tag.Slug = slugify.Make(tag.Name)
	if err := r.db.WithContext(ctx).Save(tag).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *campingTagRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CampingTag{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Tag", id)
	}
	return nil
}
