package controllers

import (
	"net/http"

	"github.com/landon-studio/Rm8-dash-sub001/api/responses"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/config"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/db"
	pkgerrors "github.com/landon-studio/Rm8-dash-sub001/pkg/errors"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Rm8-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, client *db.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Rm8-Env", cfg.App.Env)
		if client != nil {
			if err := client.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
