package handler

import (
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
)

// ListAuditLogs devolve os registros mais recentes com nome e e-mail do autor
func ListAuditLogs(recorder audit.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := recorder.Recent(r.Context())
		if err != nil {
			writeServiceError(w, r, crm.Store(err, "Erro ao carregar auditoria"))
			return
		}
		writeJSON(w, r, http.StatusOK, entries)
	}
}

// ClearAuditLogs apaga o histórico deixando o registro CLEAR_LOGS
func ClearAuditLogs(recorder audit.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := recorder.Clear(r.Context())
		if err != nil {
			writeServiceError(w, r, crm.Store(err, "Erro ao limpar auditoria"))
			return
		}
		writeJSON(w, r, http.StatusOK, domain.ClearAuditLogsResponse{DeletedCount: deleted})
	}
}
