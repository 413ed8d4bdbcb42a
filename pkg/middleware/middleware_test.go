package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/permission"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/authenticating"
	authmocks "github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/authenticating/mocks"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func decodeCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr.Code
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(auth *authmocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "rota pública passa sem token",
			path:       "/v1/login",
			setup:      func(*authmocks.MockAuthenticator) {},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "sem cabeçalho",
			path:       "/v1/customers",
			setup:      func(*authmocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrMissingSession,
		},
		{
			name:       "cabeçalho sem Bearer",
			path:       "/v1/customers",
			header:     "Basic abc",
			setup:      func(*authmocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrMissingSession,
		},
		{
			name:   "token expirado",
			path:   "/v1/customers",
			header: "Bearer velho",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("velho").Return(nil,
					authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "token válido",
			path:   "/v1/customers",
			header: "Bearer bom",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("bom").Return(&domain.Claims{UserID: "u1", UserRole: domain.RoleAdmin}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeCode(t, rec))
			}
		})
	}
}

func TestRequireCapability(t *testing.T) {
	handler := RequireCapability(permission.ManageRevenues)(okHandler())

	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
		wantCode   string
	}{
		{name: "sem usuário", wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrMissingSession},
		{name: "kunde negado", claims: &domain.Claims{UserID: "k1", UserRole: domain.RoleCustomer}, wantStatus: http.StatusForbidden, wantCode: apiErrors.ErrInsufficientPrivilege},
		{name: "member negado", claims: &domain.Claims{UserID: "m1", UserRole: domain.RoleMember}, wantStatus: http.StatusForbidden, wantCode: apiErrors.ErrInsufficientPrivilege},
		{name: "admin liberado", claims: &domain.Claims{UserID: "a1", UserRole: domain.RoleAdmin}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/revenues", nil)
			if tt.claims != nil {
				req = req.WithContext(domain.WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeCode(t, rec))
			}
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5173"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/customers", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	req = httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	wildcard := Cors([]string{"*"})(okHandler())
	req = httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
	req.Header.Set("Origin", "https://app.agentur.de")
	rec = httptest.NewRecorder()
	wildcard.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.agentur.de", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddlewareKeepsIncomingCorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(CorrelationHeader, "frontend-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "frontend-42", seen)
	assert.Equal(t, "frontend-42", rec.Header().Get(CorrelationHeader))
}

func TestPanicAndLoggingMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := alice.New(LoggingMiddleware(), LogPanicMiddleware()).Then(panicking)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/customers", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationHeader))
	assert.Equal(t, apiErrors.ErrInternalServer, decodeCode(t, rec))
}
