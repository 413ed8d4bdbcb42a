package middleware

import (
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/permission"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
)

const noPermissionMessage = "Você não tem permissão para acessar este recurso"

// RequireCapability bloqueia a rota antes do handler quando o papel do
// usuário não tem nenhuma das capacidades informadas
func RequireCapability(caps ...permission.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := domain.ClaimsFromContext(r.Context())
			if claims == nil {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrMissingSession, "Usuário não autenticado", nil)
				return
			}

			for _, c := range caps {
				if permission.Allowed(claims, c) {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.ForContext(r.Context()).WithFields(log.Fields{
				"user_id":   claims.UserID,
				"user_role": claims.UserRole,
				"path":      r.URL.Path,
			}).Warn("Acesso negado")
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, noPermissionMessage, nil)
		})
	}
}
