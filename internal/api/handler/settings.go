package handler

import (
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/settings"
)

func ListSettings(service settings.SettingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, list)
	}
}

func UpsertSetting(service settings.SettingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpsertSettingRequest
		if !decodeBody(w, r, &req) {
			return
		}

		setting, err := service.Upsert(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, setting)
	}
}

func GetTeamNotice(service settings.SettingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notice, err := service.TeamNotice(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, notice)
	}
}

func SetTeamNotice(service settings.SettingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.TeamNotice
		if !decodeBody(w, r, &req) {
			return
		}

		notice, err := service.SetTeamNotice(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, notice)
	}
}
