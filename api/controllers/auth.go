package controllers

import (
	"net/http"

	"github.com/emberoak/atelier-backend/api/responses"
	"github.com/emberoak/atelier-backend/api/validators"
	"github.com/emberoak/atelier-backend/internal/auth"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
	"github.com/emberoak/atelier-backend/pkg/logger"
)

// Login authenticates an admin console user and returns a bearer token.
func Login(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var input auth.LoginInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
