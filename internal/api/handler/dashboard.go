package handler

import (
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/permission"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/reporting"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/appointments"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/customers"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/dashboard"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
)

// GetDashboardStats aceita ?window=today|week|month|year|all
func GetDashboardStats(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, err := reporting.ParseWindow(r.URL.Query().Get("window"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		stats, err := service.Stats(r.Context(), window)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, stats)
	}
}

func GetMemberDashboard(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberDashboard, err := service.Member(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, memberDashboard)
	}
}

// portalDashboard decide qual painel o usuário pode abrir: kunde só o
// próprio, admin qualquer um via ?dashboard=
func portalDashboard(r *http.Request) string {
	claims := domain.ClaimsFromContext(r.Context())
	if permission.IsAdmin(claims) {
		if name := r.URL.Query().Get("dashboard"); name != "" {
			return name
		}
	}
	if claims == nil {
		return ""
	}
	return claims.CustomerDashboard
}

func GetCustomerPortal(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		portal, err := service.CustomerPortal(r.Context(), portalDashboard(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, portal)
	}
}

// MovePortalAppointment move um compromisso do próprio cliente no portal
func MovePortalAppointment(customerService customers.CustomerService, appointmentService appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MoveStageRequest
		if !decodeBody(w, r, &req) {
			return
		}

		claims := domain.ClaimsFromContext(r.Context())
		if claims == nil || claims.CustomerDashboard == "" {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Nenhum painel de cliente vinculado ao usuário", nil)
			return
		}

		customer, err := customerService.GetByDashboardName(r.Context(), claims.CustomerDashboard)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		resp, err := appointmentService.MoveForCustomer(r.Context(), customer.ID, &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, resp)
	}
}
