package handler

import (
	"net/http"
	"strings"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/appointments"
)

// appointmentFilter lê ?customer_id=&team_member_id=&stage=a,b da URL
func appointmentFilter(r *http.Request) domain.AppointmentFilter {
	query := r.URL.Query()
	filter := domain.AppointmentFilter{
		CustomerID:   query.Get("customer_id"),
		TeamMemberID: query.Get("team_member_id"),
	}
	if raw := query.Get("stage"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Stages = append(filter.Stages, domain.Stage(s))
			}
		}
	}
	return filter
}

func ListAppointments(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := service.List(r.Context(), appointmentFilter(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, list)
	}
}

func GetAppointment(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appointment, err := service.Get(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, appointment)
	}
}

func CreateAppointment(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateAppointmentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		appointment, err := service.Create(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, appointment)
	}
}

func UpdateAppointment(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateAppointmentRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		appointment, err := service.Update(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, appointment)
	}
}

func DeleteAppointment(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetPipelineBoard devolve o quadro kanban com as colunas em ordem fixa
func GetPipelineBoard(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := service.Board(r.Context(), appointmentFilter(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, board)
	}
}

// MovePipelineStage move um cartão do quadro; mesma etapa não grava nada
func MovePipelineStage(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MoveStageRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.Move(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, resp)
	}
}
