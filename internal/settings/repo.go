package settings

import (
	"context"
	stdErrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emberoak/atelier-backend/pkg/db/models"
)

// Repository handles the singleton site settings row.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to settings operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads the settings row, seeding defaults on first access.
func (r *Repository) Get(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.WithContext(ctx).Order("created_at asc").First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !stdErrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	seeded := defaultSettings()
	if createErr := r.db.WithContext(ctx).Create(seeded).Error; createErr != nil {
		return nil, createErr
	}
	return seeded, nil
}

// Update saves the provided settings row.
func (r *Repository) Update(ctx context.Context, settings *models.SiteSettings) error {
	if settings == nil {
		return fmt.Errorf("settings is required")
	}
	return r.db.WithContext(ctx).Save(settings).Error
}

// SetSellerAccountID persists the connected account id on the settings row.
func (r *Repository) SetSellerAccountID(ctx context.Context, accountID string) error {
	settings, err := r.Get(ctx)
	if err != nil {
		return err
	}
	settings.SellerAccountID = &accountID
	return r.Update(ctx, settings)
}

func defaultSettings() *models.SiteSettings {
	return &models.SiteSettings{
		BrandName:    "Atelier",
		PrimaryColor: "#1a1a1a",
		FontFamily:   "serif",
	}
}
