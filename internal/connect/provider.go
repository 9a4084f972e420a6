package connect

import (
	"context"
	"fmt"

	pkgstripe "github.com/emberoak/atelier-backend/pkg/stripe"
)

// Provider abstracts the payment platform's account onboarding surface.
type Provider interface {
	CreateAccount(ctx context.Context, email string) (string, error)
	CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
}

type stripeProvider struct {
	client *pkgstripe.Client
}

// NewStripeProvider adapts the shared Stripe client to the onboarding surface.
func NewStripeProvider(client *pkgstripe.Client) (Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("stripe client required")
	}
	return &stripeProvider{client: client}, nil
}

func (p *stripeProvider) CreateAccount(ctx context.Context, email string) (string, error) {
	acct, err := p.client.CreateExpressAccount(ctx, email)
	if err != nil {
		return "", err
	}
	return acct.ID, nil
}

func (p *stripeProvider) CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	link, err := p.client.CreateAccountLink(ctx, pkgstripe.AccountLinkRequest{
		AccountID:  accountID,
		RefreshURL: refreshURL,
		ReturnURL:  returnURL,
	})
	if err != nil {
		return "", err
	}
	return link.URL, nil
}
