package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/emberoak/atelier-backend/api/responses"
	"github.com/emberoak/atelier-backend/api/validators"
	"github.com/emberoak/atelier-backend/internal/checkout"
	"github.com/emberoak/atelier-backend/internal/connect"
	"github.com/emberoak/atelier-backend/internal/products"
	"github.com/emberoak/atelier-backend/internal/settings"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
	"github.com/emberoak/atelier-backend/pkg/logger"
)

type checkoutRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Price     string `json:"price" validate:"required"`
}

type onboardRequest struct {
	Email      string `json:"email" validate:"omitempty,email"`
	ReturnPath string `json:"return_path" validate:"omitempty,max=200"`
}

// Checkout builds the listing snapshot from the catalog row and the settings
// record, then opens a hosted payment session. The client's price is only a
// staleness check; the catalog value is what gets charged.
func Checkout(
	checkoutSvc checkout.Service,
	productsSvc products.Service,
	settingsSvc settings.Service,
	logg *logger.Logger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		claimedPrice, err := decimal.NewFromString(req.Price)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price"))
			return
		}

		product, err := productsSvc.GetPublished(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !product.Price.Equal(claimedPrice) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "price has changed, refresh and try again"))
			return
		}

		sellerAccountID, err := settingsSvc.SellerAccountID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		link, err := checkoutSvc.CreateSession(r.Context(), checkout.ListingSnapshot{
			ProductID:       product.ID,
			Name:            product.Name,
			Price:           product.Price,
			SellerAccountID: sellerAccountID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, link)
	}
}

// ConnectOnboard issues a hosted onboarding link for the seller.
func ConnectOnboard(svc connect.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req onboardRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		link, err := svc.BeginOnboarding(r.Context(), req.Email, req.ReturnPath)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, link)
	}
}

// ConnectCallback consumes the provider's onboarding redirect. On success the
// browser is sent back to the admin console with the provider params stripped.
func ConnectCallback(svc connect.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		connected := strings.EqualFold(q.Get("connected"), "true")
		accountID := q.Get("account_id")
		returnPath := q.Get("return_path")

		result, err := svc.ConfirmCallback(r.Context(), connected, accountID, returnPath)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.Redirect(w, r, result.RedirectURL, http.StatusFound)
	}
}
