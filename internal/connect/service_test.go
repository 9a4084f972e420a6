package connect

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emberoak/atelier-backend/pkg/config"
	"github.com/emberoak/atelier-backend/pkg/db/models"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
	"github.com/emberoak/atelier-backend/pkg/logger"
)

type stubSettingsRepo struct {
	accountID *string
	getErr    error
	setErr    error
	setCalls  []string
}

func (s *stubSettingsRepo) Get(ctx context.Context) (*models.SiteSettings, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &models.SiteSettings{SellerAccountID: s.accountID}, nil
}

func (s *stubSettingsRepo) SetSellerAccountID(ctx context.Context, accountID string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.setCalls = append(s.setCalls, accountID)
	return nil
}

type stubProvider struct {
	accountID  string
	accountErr error
	linkErr    error
	returnURLs []string
}

func (s *stubProvider) CreateAccount(ctx context.Context, email string) (string, error) {
	if s.accountErr != nil {
		return "", s.accountErr
	}
	return s.accountID, nil
}

func (s *stubProvider) CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	if s.linkErr != nil {
		return "", s.linkErr
	}
	s.returnURLs = append(s.returnURLs, returnURL)
	return "https://connect.example/setup/" + accountID, nil
}

func testCheckoutCfg() config.CheckoutConfig {
	return config.CheckoutConfig{
		PublicBaseURL: "http://localhost:3000",
		SuccessPath:   "/success",
		CancelPath:    "/cancel",
		CallbackPath:  "/api/v1/connect/callback",
		AdminPath:     "/admin",
	}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func newTestService(t *testing.T, repo *stubSettingsRepo, provider *stubProvider) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:        repo,
		Provider:    provider,
		CheckoutCfg: testCheckoutCfg(),
		Logger:      testLogger(),
	})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func TestBeginOnboardingIssuesLink(t *testing.T) {
	repo := &stubSettingsRepo{}
	provider := &stubProvider{accountID: "acct_123"}
	svc := newTestService(t, repo, provider)

	link, err := svc.BeginOnboarding(context.Background(), "artist@example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.AccountID != "acct_123" {
		t.Fatalf("unexpected account id %q", link.AccountID)
	}
	if !strings.Contains(link.URL, "acct_123") {
		t.Fatalf("unexpected link url %q", link.URL)
	}

	if len(provider.returnURLs) != 1 {
		t.Fatalf("expected one link request, got %d", len(provider.returnURLs))
	}
	returnURL := provider.returnURLs[0]
	if !strings.Contains(returnURL, "connected=true") || !strings.Contains(returnURL, "account_id=acct_123") {
		t.Fatalf("return url missing confirmation params: %q", returnURL)
	}
}

func TestBeginOnboardingRejectsConnectedSeller(t *testing.T) {
	existing := "acct_existing"
	repo := &stubSettingsRepo{accountID: &existing}
	svc := newTestService(t, repo, &stubProvider{accountID: "acct_new"})

	_, err := svc.BeginOnboarding(context.Background(), "artist@example.com", "")
	if err == nil {
		t.Fatal("expected error for connected seller")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestBeginOnboardingWrapsProviderFailure(t *testing.T) {
	repo := &stubSettingsRepo{}
	provider := &stubProvider{accountErr: fmt.Errorf("provider down")}
	svc := newTestService(t, repo, provider)

	_, err := svc.BeginOnboarding(context.Background(), "artist@example.com", "")
	if err == nil {
		t.Fatal("expected provider error")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestConfirmCallbackPersistsAccount(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := newTestService(t, repo, &stubProvider{})

	result, err := svc.ConfirmCallback(context.Background(), true, "acct_123", "/admin/settings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.setCalls) != 1 || repo.setCalls[0] != "acct_123" {
		t.Fatalf("expected account id persisted, got %v", repo.setCalls)
	}
	if result.RedirectURL != "http://localhost:3000/admin/settings" {
		t.Fatalf("unexpected redirect %q", result.RedirectURL)
	}
	if strings.Contains(result.RedirectURL, "account_id") {
		t.Fatalf("redirect must not carry provider params: %q", result.RedirectURL)
	}
}

func TestConfirmCallbackRejectsMalformedRedirects(t *testing.T) {
	cases := []struct {
		name      string
		connected bool
		accountID string
	}{
		{name: "not connected", connected: false, accountID: "acct_123"},
		{name: "missing account id", connected: true, accountID: ""},
		{name: "blank account id", connected: true, accountID: "   "},
		{name: "both missing", connected: false, accountID: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubSettingsRepo{}
			svc := newTestService(t, repo, &stubProvider{})

			_, err := svc.ConfirmCallback(context.Background(), tc.connected, tc.accountID, "")
			if err == nil {
				t.Fatal("expected validation error")
			}
			if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(repo.setCalls) != 0 {
				t.Fatalf("state must remain untouched, got writes %v", repo.setCalls)
			}
		})
	}
}

func TestConfirmCallbackStorageFailure(t *testing.T) {
	repo := &stubSettingsRepo{setErr: fmt.Errorf("db down")}
	svc := newTestService(t, repo, &stubProvider{})

	_, err := svc.ConfirmCallback(context.Background(), true, "acct_123", "")
	if err == nil {
		t.Fatal("expected dependency error")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
