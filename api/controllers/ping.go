package controllers

import (
	"net/http"

	"github.com/craftroots/craftroots-backend/api/middleware"
	"github.com/craftroots/craftroots-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func AdminPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "admin", "status": "ok"}
		if name := middleware.AdminNameFromContext(r.Context()); name != "" {
			payload["admin"] = name
		}
		responses.WriteSuccess(w, payload)
	}
}
