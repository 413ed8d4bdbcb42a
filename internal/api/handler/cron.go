package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/scheduler"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
)

// CounterSyncer é o job de reconciliação de contadores visto pela API
type CounterSyncer interface {
	TriggerManualSync(ctx context.Context) (*repository.CounterSyncResult, error)
	GetStatus() map[string]any
}

// RunCounterSync executa a reconciliação de contadores na hora
func RunCounterSync(syncer CounterSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("Reconciliação manual de contadores solicitada")

		result, err := syncer.TriggerManualSync(r.Context())
		if errors.Is(err, scheduler.ErrSyncInProgress) {
			apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Reconciliação já em andamento", nil)
			return
		}
		if err != nil {
			writeServiceError(w, r, crm.Store(err, "Erro ao reconciliar contadores"))
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message": "Contadores reconciliados com sucesso",
			"result":  result,
		})
	}
}

func GetCronStatus(syncer CounterSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"counters": syncer.GetStatus(),
		})
	}
}
