package handler

import (
	"errors"
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/authenticating"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Middlewares = []func(http.Handler) http.Handler

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody responde VAL_001 e devolve false quando o corpo não é JSON válido
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// writeServiceError traduz o erro de um caso de uso para a resposta da API.
// O detalhe do banco fica só no log.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		logServiceError(r, authErr.Code, err)
		message := authErr.Details
		if message == "" {
			message = authErr.Err.Error()
		}
		apiErrors.WriteError(w, authErr.Code, message, nil)
		return
	}

	code := crm.CodeOf(err)
	logServiceError(r, code, err)

	var details any
	var crmErr *crm.CRMError
	if errors.As(err, &crmErr) && crmErr.RecordID != "" {
		details = map[string]string{"id": crmErr.RecordID}
	}
	apiErrors.WriteError(w, code, crm.MessageOf(err), details)
}

func logServiceError(r *http.Request, code string, err error) {
	logger := log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
		"code":   code,
		"method": r.Method,
		"path":   r.URL.Path,
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("Erro ao processar requisição")
		return
	}
	logger.Warn("Requisição rejeitada")
}
