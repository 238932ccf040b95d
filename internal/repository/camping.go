package repository

import (
	"context"
	"errors"

	"trailpost/internal/models"
	"trailpost/internal/slugify"

	"gorm.io/gorm"
)

// CampingRepository defines persistence operations for camping entries.
// All read and write paths are scoped to the owning user.
type CampingRepository interface {
	Create(ctx context.Context, camping *models.Camping) error
	GetByID(ctx context.Context, id, userID uint) (*models.Camping, error)
	List(ctx context.Context, userID uint) ([]*models.Camping, error)
	Update(ctx context.Context, camping *models.Camping) error
	Delete(ctx context.Context, id, userID uint) error
	ReplaceTags(ctx context.Context, camping *models.Camping, names []string) error
}

type campingRepository struct {
	db *gorm.DB
}

// NewCampingRepository creates a new camping repository
func NewCampingRepository(db *gorm.DB) CampingRepository {
	return &campingRepository{db: db}
}

func (r *campingRepository) Create(ctx context.Context, camping *models.Camping) error {
	if err := r.db.WithContext(ctx).Create(camping).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *campingRepository) GetByID(ctx context.Context, id, userID uint) (*models.Camping, error) {
	var camping models.Camping
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Tags").
		Where("campings.user_id = ?", userID).
		First(&camping, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Camping", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &camping, nil
}

// List returns every entry owned by userID in primary-key order, which for
// serial keys is insertion order. Blog listing orders by recency instead;
// the asymmetry is intentional.
func (r *campingRepository) List(ctx context.Context, userID uint) ([]*models.Camping, error) {
	campings := make([]*models.Camping, 0)
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Tags").
		Where("campings.user_id = ?", userID).
		Find(&campings).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return campings, nil
}

func (r *campingRepository) Update(ctx context.Context, camping *models.Camping) error {
	if err := r.db.WithContext(ctx).Save(camping).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *campingRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Camping{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Camping", id)
	}
	return nil
}

// ReplaceTags mirrors BlogRepository.ReplaceTags against the camping tag
// namespace; the two tag tables are disjoint.
func (r *campingRepository) ReplaceTags(ctx context.Context, camping *models.Camping, names []string) error {
	tags := make([]models.CampingTag, 0, len(names))
	for _, name := range names {
		tag := models.CampingTag{UserID: camping.UserID, Name: name}
		err := r.db.WithContext(ctx).
			Where("user_id = ? AND name = ?", camping.UserID, name).
			Attrs(models.CampingTag{Slug: slugify.Make(name)}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		tags = append(tags, tag)
	}

	if err := r.db.WithContext(ctx).Model(camping).Association("Tags").Replace(tags); err != nil {
		return models.NewInternalError(err)
	}
	camping.Tags = tags
	return nil
}
