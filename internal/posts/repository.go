package posts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
)

// Repository handles journal post persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to post operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, post *models.Post) error {
	if post == nil {
		return fmt.Errorf("post is required")
	}
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *Repository) List(ctx context.Context, status *enums.ContentStatus) ([]models.Post, error) {
	query := r.db.WithContext(ctx).Order("created_at desc")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var items []models.Post
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) Update(ctx context.Context, post *models.Post) error {
	if post == nil {
		return fmt.Errorf("post is required")
	}
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
