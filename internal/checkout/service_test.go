package checkout

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/emberoak/atelier-backend/pkg/config"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
	"github.com/emberoak/atelier-backend/pkg/logger"
	pkgstripe "github.com/emberoak/atelier-backend/pkg/stripe"
)

type stubProvider struct {
	err      error
	requests []pkgstripe.CheckoutSessionRequest
}

func (s *stubProvider) CreateSession(ctx context.Context, req pkgstripe.CheckoutSessionRequest) (string, string, error) {
	if s.err != nil {
		return "", "", s.err
	}
	s.requests = append(s.requests, req)
	return "cs_test_1", "https://pay.example/cs_test_1", nil
}

func testCheckoutCfg() config.CheckoutConfig {
	return config.CheckoutConfig{
		CommissionRate: "0.10",
		Currency:       "aud",
		PublicBaseURL:  "http://localhost:3000",
		SuccessPath:    "/success",
		CancelPath:     "/cancel",
	}
}

func newTestService(t *testing.T, provider Provider) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Provider:    provider,
		CheckoutCfg: testCheckoutCfg(),
		Logger:      logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func snapshot() ListingSnapshot {
	return ListingSnapshot{
		ProductID:       uuid.New(),
		Name:            "Stoneware vase",
		Price:           decimal.NewFromInt(85),
		SellerAccountID: "acct_123",
	}
}

func TestCreateSessionBuildsDestinationCharge(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(t, provider)

	link, err := svc.CreateSession(context.Background(), snapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.SessionID != "cs_test_1" || link.URL == "" {
		t.Fatalf("unexpected link %+v", link)
	}

	if len(provider.requests) != 1 {
		t.Fatalf("expected one provider call, got %d", len(provider.requests))
	}
	req := provider.requests[0]
	if len(req.LineItems) != 1 {
		t.Fatalf("expected one line item, got %d", len(req.LineItems))
	}
	item := req.LineItems[0]
	if item.UnitAmount != 8500 {
		t.Fatalf("expected 8500 minor units, got %d", item.UnitAmount)
	}
	if item.Currency != "aud" {
		t.Fatalf("unexpected currency %q", item.Currency)
	}
	if req.ApplicationFeeAmount != 850 {
		t.Fatalf("expected 850 fee, got %d", req.ApplicationFeeAmount)
	}
	if req.DestinationAccountID != "acct_123" {
		t.Fatalf("expected destination acct_123, got %q", req.DestinationAccountID)
	}
	if req.SuccessURL != "http://localhost:3000/success" || req.CancelURL != "http://localhost:3000/cancel" {
		t.Fatalf("unexpected redirect targets %q / %q", req.SuccessURL, req.CancelURL)
	}
}

func TestCreateSessionRejectsUnpayableSeller(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(t, provider)

	snap := snapshot()
	snap.SellerAccountID = "  "
	_, err := svc.CreateSession(context.Background(), snap)
	if err == nil {
		t.Fatal("expected error for unpayable seller")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
	if len(provider.requests) != 0 {
		t.Fatal("provider must not be called for unpayable seller")
	}
}

func TestCreateSessionRejectsNonPositivePrice(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(t, provider)

	snap := snapshot()
	snap.Price = decimal.Zero
	_, err := svc.CreateSession(context.Background(), snap)
	if err == nil {
		t.Fatal("expected error for zero price")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(provider.requests) != 0 {
		t.Fatal("provider must not be called for invalid price")
	}
}

func TestCreateSessionWrapsProviderFailure(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("provider down")}
	svc := newTestService(t, provider)

	_, err := svc.CreateSession(context.Background(), snapshot())
	if err == nil {
		t.Fatal("expected provider error")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestNewServiceRejectsBadRate(t *testing.T) {
	cfg := testCheckoutCfg()
	cfg.CommissionRate = "1.5"
	_, err := NewService(ServiceParams{
		Provider:    &stubProvider{},
		CheckoutCfg: cfg,
		Logger:      logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard}),
	})
	if err == nil {
		t.Fatal("expected error for out-of-range rate")
	}
}
