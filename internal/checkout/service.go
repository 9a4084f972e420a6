package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/emberoak/atelier-backend/internal/commission"
	"github.com/emberoak/atelier-backend/pkg/config"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
	"github.com/emberoak/atelier-backend/pkg/logger"
	"github.com/emberoak/atelier-backend/pkg/metrics"
	pkgstripe "github.com/emberoak/atelier-backend/pkg/stripe"
)

// ListingSnapshot is the authoritative view of a purchasable item, captured
// fresh per purchase attempt. Price is in major units.
type ListingSnapshot struct {
	ProductID       uuid.UUID
	Name            string
	Price           decimal.Decimal
	SellerAccountID string
}

// SessionLink points the buyer at the hosted payment page.
type SessionLink struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// Service builds destination-charge checkout sessions.
type Service interface {
	CreateSession(ctx context.Context, snapshot ListingSnapshot) (*SessionLink, error)
}

type service struct {
	provider    Provider
	rate        decimal.Decimal
	checkoutCfg config.CheckoutConfig
	logg        *logger.Logger
	payments    *metrics.PaymentMetrics
}

// ServiceParams collects the dependencies for NewService.
type ServiceParams struct {
	Provider    Provider
	CheckoutCfg config.CheckoutConfig
	Logger      *logger.Logger
	Payments    *metrics.PaymentMetrics
}

// NewService builds a checkout service. The commission rate is parsed once at
// construction so a malformed rate is a startup error, not a runtime one.
func NewService(params ServiceParams) (Service, error) {
	if params.Provider == nil {
		return nil, fmt.Errorf("checkout provider required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	rate, err := commission.ParseRate(params.CheckoutCfg.CommissionRate)
	if err != nil {
		return nil, err
	}
	return &service{
		provider:    params.Provider,
		rate:        rate,
		checkoutCfg: params.CheckoutCfg,
		logg:        params.Logger,
		payments:    params.Payments,
	}, nil
}

// CreateSession validates the snapshot, derives the platform fee from the same
// price that becomes the line item, and opens a hosted session. The fee and
// the seller's destination account travel in one provider call so the split
// can never be applied without its payee.
func (s *service) CreateSession(ctx context.Context, snapshot ListingSnapshot) (*SessionLink, error) {
	if strings.TrimSpace(snapshot.Name) == "" {
		s.payments.IncSession("validation_error")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "listing name is required")
	}
	if strings.TrimSpace(snapshot.SellerAccountID) == "" {
		s.payments.IncSession("seller_not_payable")
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "seller not yet payable")
	}

	breakdown, err := commission.Compute(snapshot.Price, s.rate)
	if err != nil {
		s.payments.IncSession("validation_error")
		return nil, err
	}

	sessionID, sessionURL, err := s.provider.CreateSession(ctx, pkgstripe.CheckoutSessionRequest{
		LineItems: []pkgstripe.CheckoutLineItem{{
			Name:       snapshot.Name,
			UnitAmount: breakdown.GrossMinor,
			Quantity:   1,
			Currency:   s.checkoutCfg.Currency,
		}},
		ApplicationFeeAmount: breakdown.FeeMinor,
		DestinationAccountID: snapshot.SellerAccountID,
		SuccessURL:           s.checkoutCfg.SuccessURL(),
		CancelURL:            s.checkoutCfg.CancelURL(),
		ClientReferenceID:    snapshot.ProductID.String(),
	})
	if err != nil {
		s.payments.IncSession("provider_error")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checkout failed")
	}

	ctx = s.logg.WithFields(ctx, map[string]any{
		"product_id": snapshot.ProductID,
		"session_id": sessionID,
		"fee_minor":  breakdown.FeeMinor,
	})
	s.logg.Info(ctx, "checkout session created")
	s.payments.IncSession("created")
	s.payments.AddFee(breakdown.FeeMinor)

	return &SessionLink{SessionID: sessionID, URL: sessionURL}, nil
}
