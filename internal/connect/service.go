package connect

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/emberoak/atelier-backend/pkg/config"
	"github.com/emberoak/atelier-backend/pkg/db/models"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
	"github.com/emberoak/atelier-backend/pkg/logger"
	"github.com/emberoak/atelier-backend/pkg/metrics"
)

type settingsRepository interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	SetSellerAccountID(ctx context.Context, accountID string) error
}

// OnboardingLink is the hosted onboarding redirect handed back to the admin UI.
type OnboardingLink struct {
	URL       string `json:"url"`
	AccountID string `json:"account_id"`
}

// CallbackResult tells the HTTP layer where to send the browser next.
type CallbackResult struct {
	RedirectURL string
}

// Service drives the seller onboarding state machine: NotConnected ->
// Onboarding (link issued) -> Connected (callback confirmed). There is no
// transition out of Connected.
type Service interface {
	BeginOnboarding(ctx context.Context, email, returnPath string) (*OnboardingLink, error)
	ConfirmCallback(ctx context.Context, connected bool, accountID, returnPath string) (*CallbackResult, error)
}

type service struct {
	repo        settingsRepository
	provider    Provider
	checkoutCfg config.CheckoutConfig
	logg        *logger.Logger
	payments    *metrics.PaymentMetrics
}

// ServiceParams collects the dependencies for NewService.
type ServiceParams struct {
	Repo        settingsRepository
	Provider    Provider
	CheckoutCfg config.CheckoutConfig
	Logger      *logger.Logger
	Payments    *metrics.PaymentMetrics
}

// NewService builds an onboarding service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("settings repository required")
	}
	if params.Provider == nil {
		return nil, fmt.Errorf("onboarding provider required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:        params.Repo,
		provider:    params.Provider,
		checkoutCfg: params.CheckoutCfg,
		logg:        params.Logger,
		payments:    params.Payments,
	}, nil
}

// BeginOnboarding provisions a connected account and returns a single-use
// hosted onboarding URL. A seller that already carries an account id is
// rejected; a seller who abandoned a previous link simply gets a fresh
// account, orphaning the unfinished one on the provider side.
func (s *service) BeginOnboarding(ctx context.Context, email, returnPath string) (*OnboardingLink, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.payments.IncOnboarding("settings_error")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings")
	}
	if settings.SellerAccountID != nil && *settings.SellerAccountID != "" {
		s.payments.IncOnboarding("already_connected")
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "seller already connected")
	}

	accountID, err := s.provider.CreateAccount(ctx, email)
	if err != nil {
		s.payments.IncOnboarding("provider_error")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create connected account")
	}

	linkURL, err := s.provider.CreateOnboardingLink(
		ctx,
		accountID,
		s.checkoutCfg.AdminURL(returnPath),
		s.callbackReturnURL(accountID, returnPath),
	)
	if err != nil {
		s.payments.IncOnboarding("provider_error")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create onboarding link")
	}

	s.logg.Info(s.logg.WithField(ctx, "account_id", accountID), "onboarding link issued")
	s.payments.IncOnboarding("created")
	return &OnboardingLink{URL: linkURL, AccountID: accountID}, nil
}

// ConfirmCallback finalizes onboarding. The transition to Connected happens
// only when the redirect carries both the confirmation flag and a non-empty
// account id; any other shape leaves stored state untouched.
func (s *service) ConfirmCallback(ctx context.Context, connected bool, accountID, returnPath string) (*CallbackResult, error) {
	accountID = strings.TrimSpace(accountID)
	if !connected || accountID == "" {
		s.payments.IncOnboarding("callback_rejected")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "onboarding callback missing confirmation")
	}

	if err := s.repo.SetSellerAccountID(ctx, accountID); err != nil {
		s.payments.IncOnboarding("settings_error")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist connected account")
	}

	s.logg.Info(s.logg.WithField(ctx, "account_id", accountID), "seller connected")
	s.payments.IncOnboarding("connected")
	return &CallbackResult{RedirectURL: s.checkoutCfg.AdminURL(returnPath)}, nil
}

// callbackReturnURL builds the provider return target with the confirmation
// params the callback handler expects.
func (s *service) callbackReturnURL(accountID, returnPath string) string {
	q := url.Values{}
	q.Set("connected", "true")
	q.Set("account_id", accountID)
	if returnPath = strings.TrimSpace(returnPath); returnPath != "" {
		q.Set("return_path", returnPath)
	}
	return s.checkoutCfg.CallbackURL() + "?" + q.Encode()
}
