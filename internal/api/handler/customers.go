package handler

import (
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/customers"
)

func ListCustomers(service customers.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, list)
	}
}

func GetCustomer(service customers.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, err := service.Get(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, customer)
	}
}

func CreateCustomer(service customers.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCustomerRequest
		if !decodeBody(w, r, &req) {
			return
		}

		customer, err := service.Create(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, customer)
	}
}

func UpdateCustomer(service customers.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateCustomerRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		customer, err := service.Update(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, customer)
	}
}

func DeleteCustomer(service customers.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
