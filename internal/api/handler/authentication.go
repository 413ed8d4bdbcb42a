package handler

import (
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/authenticating"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

// Login sempre responde com o envelope {success, user, token, error}.
// Credenciais erradas não são erro HTTP, apenas success=false.
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service.Logout(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe retorna o perfil do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := domain.ClaimsFromContext(r.Context())
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingSession, "Usuário não autenticado", nil)
			return
		}

		member, err := service.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, member)
	}
}

// ChangePassword altera a senha do próprio usuário
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := domain.ClaimsFromContext(r.Context())
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingSession, "Usuário não autenticado", nil)
			return
		}

		var req ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.ChangePassword(r.Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ResetPassword gera uma nova senha para um membro
func ResetPassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		password, err := service.ResetPassword(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, GeneratePasswordResponse{Password: password})
	}
}
