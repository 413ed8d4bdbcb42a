package handler

import (
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/leads"
)

func ListHotLeads(service leads.HotLeadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, list)
	}
}

func GetHotLead(service leads.HotLeadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lead, err := service.Get(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, lead)
	}
}

func CreateHotLead(service leads.HotLeadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateHotLeadRequest
		if !decodeBody(w, r, &req) {
			return
		}

		lead, err := service.Create(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, lead)
	}
}

func UpdateHotLead(service leads.HotLeadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateHotLeadRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		lead, err := service.Update(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, lead)
	}
}

func DeleteHotLead(service leads.HotLeadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// PromoteHotLead converte o lead em cliente; em caso de erro o lead continua na lista
func PromoteHotLead(service leads.HotLeadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.Promote(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, resp)
	}
}
