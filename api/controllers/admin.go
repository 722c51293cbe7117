package controllers

import (
	"net/http"

	"github.com/craftroots/craftroots-backend/api/responses"
	"github.com/craftroots/craftroots-backend/api/validators"
	"github.com/craftroots/craftroots-backend/internal/admin"
	"github.com/craftroots/craftroots-backend/pkg/logger"
)

// AdminLogin exchanges the admin password for a bearer token.
func AdminLogin(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload admin.LoginInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.Login(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
