package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
	"github.com/emberoak/atelier-backend/pkg/types"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price_cents INTEGER NOT NULL,
  description TEXT NOT NULL,
  category TEXT NOT NULL,
  image_url TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'draft',
  seo TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func newTestProduct(status enums.ContentStatus) *models.Product {
	return &models.Product{
		ID:          uuid.New(),
		Name:        "Stoneware vase",
		PriceCents:  8500,
		Description: "Hand-thrown stoneware vase",
		Category:    "ceramics",
		ImageURL:    "https://cdn.example/vase.jpg",
		Status:      status,
		SEO:         types.SEO{Title: "Stoneware vase"},
	}
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	ctx := context.Background()

	product := newTestProduct(enums.ContentStatusPublished)
	require.NoError(t, repo.Create(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, found.Name)
	assert.Equal(t, int64(8500), found.PriceCents)
	assert.Equal(t, enums.ContentStatusPublished, found.Status)
}

func TestRepositoryListFiltersByStatus(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	ctx := context.Background()

	published := newTestProduct(enums.ContentStatusPublished)
	draft := newTestProduct(enums.ContentStatusDraft)
	draft.Name = "Unglazed bowl"
	require.NoError(t, repo.Create(ctx, published))
	require.NoError(t, repo.Create(ctx, draft))

	status := enums.ContentStatusPublished
	items, err := repo.List(ctx, &status)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, published.ID, items[0].ID)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepositoryDeleteMissing(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
