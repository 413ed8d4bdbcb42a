package handler

import (
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/team"
)

func ListTeamMembers(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, members)
	}
}

func GetTeamMember(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		member, err := service.Get(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, member)
	}
}

// CreateTeamMember devolve a senha gerada uma única vez, quando não foi informada
func CreateTeamMember(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateTeamMemberRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.Create(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, resp)
	}
}

func UpdateTeamMember(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateTeamMemberRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		member, err := service.Update(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, member)
	}
}

// DeleteTeamMember remove o membro e, na mesma transação, os dependentes
func DeleteTeamMember(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListMemberEarnings(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		earnings, err := service.ListEarnings(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, earnings)
	}
}

func AddMemberEarning(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MemberLedgerEntryRequest
		if !decodeBody(w, r, &req) {
			return
		}

		earning, err := service.AddEarning(r.Context(), pathParam(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, earning)
	}
}

func ListMemberExpenses(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenses, err := service.ListExpenses(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, expenses)
	}
}

func AddMemberExpense(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MemberLedgerEntryRequest
		if !decodeBody(w, r, &req) {
			return
		}

		expense, err := service.AddExpense(r.Context(), pathParam(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, expense)
	}
}

func GetMemberFinance(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		finance, err := service.Finance(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, finance)
	}
}
