package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
)

type stubRepo struct {
	created  []*models.Product
	updated  []*models.Product
	byID     map[uuid.UUID]*models.Product
	listed   []models.Product
	listErr  error
	lastList *enums.ContentStatus
}

func (s *stubRepo) Create(ctx context.Context, product *models.Product) error {
	product.ID = uuid.New()
	s.created = append(s.created, product)
	return nil
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) List(ctx context.Context, status *enums.ContentStatus) ([]models.Product, error) {
	s.lastList = status
	return s.listed, s.listErr
}

func (s *stubRepo) Update(ctx context.Context, product *models.Product) error {
	s.updated = append(s.updated, product)
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func TestCreateConvertsPriceToCents(t *testing.T) {
	repo := &stubRepo{}
	svc, _ := NewService(repo)

	dto, err := svc.Create(context.Background(), CreateProductInput{
		Name:        "Stoneware vase",
		Price:       "85",
		Description: "Hand-thrown",
		Category:    "ceramics",
		ImageURL:    "https://img.example/vase.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 1 || repo.created[0].PriceCents != 8500 {
		t.Fatalf("expected 8500 cents persisted, got %+v", repo.created)
	}
	if dto.Status != enums.ContentStatusDraft {
		t.Fatalf("expected draft default, got %s", dto.Status)
	}
	if !dto.Price.Equal(priceMajor(8500)) {
		t.Fatalf("unexpected dto price %s", dto.Price)
	}
}

func TestCreateRejectsBadPrice(t *testing.T) {
	svc, _ := NewService(&stubRepo{})

	for _, raw := range []string{"", "abc", "0", "-5"} {
		_, err := svc.Create(context.Background(), CreateProductInput{
			Name:        "x",
			Price:       raw,
			Description: "x",
			Category:    "x",
			ImageURL:    "https://img.example/x.jpg",
		})
		if err == nil {
			t.Fatalf("expected error for price %q", raw)
		}
		if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for price %q, got %v", raw, err)
		}
	}
}

func TestListPublishedFiltersByStatus(t *testing.T) {
	repo := &stubRepo{}
	svc, _ := NewService(repo)

	if _, err := svc.ListPublished(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastList == nil || *repo.lastList != enums.ContentStatusPublished {
		t.Fatalf("expected published filter, got %v", repo.lastList)
	}

	if _, err := svc.ListAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastList != nil {
		t.Fatalf("expected no filter for admin list, got %v", repo.lastList)
	}
}

func TestGetPublishedHidesDrafts(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.Product{
		id: {ID: id, Name: "Draft piece", Status: enums.ContentStatusDraft},
	}}
	svc, _ := NewService(repo)

	_, err := svc.GetPublished(context.Background(), id)
	if err == nil {
		t.Fatal("expected not found for draft")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateMissingProduct(t *testing.T) {
	svc, _ := NewService(&stubRepo{})

	name := "renamed"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateProductInput{Name: &name})
	if err == nil {
		t.Fatal("expected not found")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteMissingProduct(t *testing.T) {
	svc, _ := NewService(&stubRepo{})

	err := svc.Delete(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected not found")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
