package middleware

import (
	"net/http"
	"strings"

	"github.com/craftroots/craftroots-backend/api/responses"
	pkgauth "github.com/craftroots/craftroots-backend/pkg/auth"
	"github.com/craftroots/craftroots-backend/pkg/config"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/logger"
)

// AdminAuth validates a bearer token and seeds the request context with the
// admin identity. All /api/admin routes sit behind this.
func AdminAuth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseAdminToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := WithAdminName(r.Context(), claims.Name)
			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{"admin": claims.Name})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
