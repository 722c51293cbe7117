package controllers

import (
	"context"
	"net/http"

	"github.com/craftroots/craftroots-backend/api/responses"
	"github.com/craftroots/craftroots-backend/pkg/config"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/logger"
)

// Pinger is anything that can answer a readiness check.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CraftRoots-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every wired dependency answers a ping.
// Nil entries are skipped so optional dependencies can stay unwired in dev.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CraftRoots-Env", cfg.App.Env)
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}

// ReadinessDeps assembles the named ping targets for HealthReady.
func ReadinessDeps(dbP Pinger, cache Pinger) map[string]Pinger {
	return map[string]Pinger{
		"database": dbP,
		"redis":    cache,
	}
}
