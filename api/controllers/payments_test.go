package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/emberoak/atelier-backend/internal/checkout"
	"github.com/emberoak/atelier-backend/internal/connect"
	"github.com/emberoak/atelier-backend/internal/products"
	"github.com/emberoak/atelier-backend/internal/settings"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
	"github.com/emberoak/atelier-backend/pkg/logger"
)

type stubCheckoutSvc struct {
	snapshots []checkout.ListingSnapshot
	err       error
}

func (s *stubCheckoutSvc) CreateSession(ctx context.Context, snapshot checkout.ListingSnapshot) (*checkout.SessionLink, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.snapshots = append(s.snapshots, snapshot)
	return &checkout.SessionLink{SessionID: "cs_test_1", URL: "https://pay.example/cs_test_1"}, nil
}

type stubProductsSvc struct {
	product *products.ProductDTO
}

func (s *stubProductsSvc) ListPublished(ctx context.Context) ([]products.ProductDTO, error) {
	return nil, nil
}
func (s *stubProductsSvc) ListAll(ctx context.Context) ([]products.ProductDTO, error) {
	return nil, nil
}
func (s *stubProductsSvc) GetPublished(ctx context.Context, id uuid.UUID) (*products.ProductDTO, error) {
	if s.product == nil || s.product.ID != id {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return s.product, nil
}
func (s *stubProductsSvc) Create(ctx context.Context, input products.CreateProductInput) (*products.ProductDTO, error) {
	return nil, nil
}
func (s *stubProductsSvc) Update(ctx context.Context, id uuid.UUID, input products.UpdateProductInput) (*products.ProductDTO, error) {
	return nil, nil
}
func (s *stubProductsSvc) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type settingsServiceStub struct {
	accountID string
}

func (s settingsServiceStub) Get(ctx context.Context) (*settings.SettingsDTO, error) {
	return &settings.SettingsDTO{}, nil
}

func (s settingsServiceStub) Update(ctx context.Context, input settings.UpdateSettingsInput) (*settings.SettingsDTO, error) {
	return &settings.SettingsDTO{}, nil
}

func (s settingsServiceStub) SellerAccountID(ctx context.Context) (string, error) {
	return s.accountID, nil
}

type stubConnectSvc struct {
	result  *connect.CallbackResult
	err     error
	calls   int
	onboard *connect.OnboardingLink
}

func (s *stubConnectSvc) BeginOnboarding(ctx context.Context, email, returnPath string) (*connect.OnboardingLink, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.onboard, nil
}

func (s *stubConnectSvc) ConfirmCallback(ctx context.Context, connected bool, accountID, returnPath string) (*connect.CallbackResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func TestCheckoutBuildsSnapshotFromCatalog(t *testing.T) {
	productID := uuid.New()
	productsSvc := &stubProductsSvc{product: &products.ProductDTO{
		ID:    productID,
		Name:  "Stoneware vase",
		Price: decimal.RequireFromString("85"),
	}}
	checkoutSvc := &stubCheckoutSvc{}
	handler := Checkout(checkoutSvc, productsSvc, settingsServiceStub{accountID: "acct_123"}, testLogger())

	body := `{"product_id":"` + productID.String() + `","price":"85"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(checkoutSvc.snapshots) != 1 {
		t.Fatalf("expected one session, got %d", len(checkoutSvc.snapshots))
	}
	snap := checkoutSvc.snapshots[0]
	if snap.SellerAccountID != "acct_123" || snap.Name != "Stoneware vase" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if !snap.Price.Equal(decimal.RequireFromString("85")) {
		t.Fatalf("snapshot must carry the catalog price, got %s", snap.Price)
	}
}

func TestCheckoutRejectsStalePrice(t *testing.T) {
	productID := uuid.New()
	productsSvc := &stubProductsSvc{product: &products.ProductDTO{
		ID:    productID,
		Name:  "Stoneware vase",
		Price: decimal.RequireFromString("95"),
	}}
	checkoutSvc := &stubCheckoutSvc{}
	handler := Checkout(checkoutSvc, productsSvc, settingsServiceStub{accountID: "acct_123"}, testLogger())

	body := `{"product_id":"` + productID.String() + `","price":"85"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if len(checkoutSvc.snapshots) != 0 {
		t.Fatal("session must not be created for stale price")
	}
}

func TestCheckoutUnknownProduct(t *testing.T) {
	handler := Checkout(&stubCheckoutSvc{}, &stubProductsSvc{}, settingsServiceStub{}, testLogger())

	body := `{"product_id":"` + uuid.NewString() + `","price":"85"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestConnectCallbackRedirectsStripped(t *testing.T) {
	svc := &stubConnectSvc{result: &connect.CallbackResult{RedirectURL: "http://localhost:3000/admin"}}
	handler := ConnectCallback(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/connect/callback?connected=true&account_id=acct_123", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	location := rec.Header().Get("Location")
	if location != "http://localhost:3000/admin" {
		t.Fatalf("unexpected redirect %q", location)
	}
	if strings.Contains(location, "account_id") || strings.Contains(location, "connected") {
		t.Fatalf("redirect must strip provider params: %q", location)
	}
}

func TestConnectCallbackRejectsMissingParams(t *testing.T) {
	svc := &stubConnectSvc{err: pkgerrors.New(pkgerrors.CodeValidation, "onboarding callback missing confirmation")}
	handler := ConnectCallback(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/connect/callback?connected=false", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding error payload: %v", err)
	}
	if payload.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("expected validation code, got %q", payload.Error.Code)
	}
}
