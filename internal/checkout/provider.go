package checkout

import (
	"context"
	"fmt"

	pkgstripe "github.com/emberoak/atelier-backend/pkg/stripe"
)

// Provider abstracts the payment platform's hosted checkout surface.
type Provider interface {
	CreateSession(ctx context.Context, req pkgstripe.CheckoutSessionRequest) (id, url string, err error)
}

type stripeProvider struct {
	client *pkgstripe.Client
}

// NewStripeProvider adapts the shared Stripe client to the checkout surface.
func NewStripeProvider(client *pkgstripe.Client) (Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("stripe client required")
	}
	return &stripeProvider{client: client}, nil
}

func (p *stripeProvider) CreateSession(ctx context.Context, req pkgstripe.CheckoutSessionRequest) (string, string, error) {
	sess, err := p.client.CreateCheckoutSession(ctx, req)
	if err != nil {
		return "", "", err
	}
	return sess.ID, sess.URL, nil
}
