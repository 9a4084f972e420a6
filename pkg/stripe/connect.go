package stripe

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/account"
	"github.com/stripe/stripe-go/v84/accountlink"
	"github.com/stripe/stripe-go/v84/checkout/session"
)

// AccountLinkRequest carries the redirect targets for a hosted onboarding flow.
type AccountLinkRequest struct {
	AccountID  string
	RefreshURL string
	ReturnURL  string
}

// CheckoutLineItem is one purchasable entry priced in minor units.
type CheckoutLineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
	Currency   string
}

// CheckoutSessionRequest describes a destination-charge checkout session.
// ApplicationFeeAmount and DestinationAccountID travel together so the split
// cannot be applied without its payee.
type CheckoutSessionRequest struct {
	LineItems            []CheckoutLineItem
	ApplicationFeeAmount int64
	DestinationAccountID string
	SuccessURL           string
	CancelURL            string
	ClientReferenceID    string
}

// CreateExpressAccount provisions a connected account able to receive card
// payments and transfers.
func (c *Client) CreateExpressAccount(ctx context.Context, email string) (*stripe.Account, error) {
	params := &stripe.AccountParams{
		Type:    stripe.String(string(stripe.AccountTypeExpress)),
		Country: stripe.String(c.country),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	if email = strings.TrimSpace(email); email != "" {
		params.Email = stripe.String(email)
	}
	params.Context = ctx

	acct, err := account.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating connected account: %w", err)
	}
	return acct, nil
}

// CreateAccountLink generates a single-use hosted onboarding URL.
func (c *Client) CreateAccountLink(ctx context.Context, req AccountLinkRequest) (*stripe.AccountLink, error) {
	if req.AccountID == "" {
		return nil, fmt.Errorf("account id is required")
	}
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(req.AccountID),
		RefreshURL: stripe.String(req.RefreshURL),
		ReturnURL:  stripe.String(req.ReturnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := accountlink.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating account link: %w", err)
	}
	return link, nil
}

// GetAccount fetches a connected account by id.
func (c *Client) GetAccount(ctx context.Context, accountID string) (*stripe.Account, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account id is required")
	}
	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := account.GetByID(accountID, params)
	if err != nil {
		return nil, fmt.Errorf("fetching connected account: %w", err)
	}
	return acct, nil
}

// CreateCheckoutSession opens a hosted payment session with a destination
// charge: the platform fee and the seller's account ride on the payment intent.
func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*stripe.CheckoutSession, error) {
	if len(req.LineItems) == 0 {
		return nil, fmt.Errorf("at least one line item is required")
	}
	if req.DestinationAccountID == "" {
		return nil, fmt.Errorf("destination account id is required")
	}

	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(qty),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(item.Currency),
				UnitAmount: stripe.Int64(item.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  items,
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(req.ApplicationFeeAmount),
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(req.DestinationAccountID),
			},
		},
	}
	if req.ClientReferenceID != "" {
		params.ClientReferenceID = stripe.String(req.ClientReferenceID)
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}
	return sess, nil
}
