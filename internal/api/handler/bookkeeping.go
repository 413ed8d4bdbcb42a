package handler

import (
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/bookkeeping"
)

func ListRevenues(service bookkeeping.BookkeepingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		revenues, err := service.ListRevenues(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, revenues)
	}
}

func AddRevenue(service bookkeeping.BookkeepingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateRevenueRequest
		if !decodeBody(w, r, &req) {
			return
		}

		revenue, err := service.AddRevenue(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, revenue)
	}
}

func DeleteRevenue(service bookkeeping.BookkeepingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteRevenue(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListExpenses(service bookkeeping.BookkeepingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenses, err := service.ListExpenses(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, expenses)
	}
}

func AddExpense(service bookkeeping.BookkeepingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateExpenseRequest
		if !decodeBody(w, r, &req) {
			return
		}

		expense, err := service.AddExpense(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, expense)
	}
}

func DeleteExpense(service bookkeeping.BookkeepingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteExpense(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
