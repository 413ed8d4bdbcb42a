package handler

import (
	"net/http"
	"time"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().Format(time.RFC3339)))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao responder healthcheck")
		}
	})
}
