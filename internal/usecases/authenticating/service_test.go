package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository/mocks"
	auditmocks "github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit/mocks"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/config"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{Auth: config.Auth{Secret: "segredo-de-teste", TokenTTL: time.Hour}}
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamMemberRepository(ctrl)
	mockAudit := auditmocks.NewMockRecorder(ctrl)
	service := NewService(mockRepo, mockAudit, testConfig())

	ctx := context.Background()
	dashboard := "acme-x1"
	active := &domain.TeamMember{
		ID:                "m1",
		Name:              "Anna",
		Email:             "anna@agentur.de",
		PasswordHash:      hash(t, "geheim123"),
		UserRole:          domain.RoleCustomer,
		CustomerDashboard: &dashboard,
		IsActive:          true,
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func()
		validate func(t *testing.T, resp *domain.LoginResponse, err error)
	}{
		{
			name:     "sucesso",
			email:    " Anna@Agentur.de ",
			password: "geheim123",
			setup: func() {
				mockRepo.EXPECT().GetByEmail(ctx, "anna@agentur.de").Return(active, nil)
				mockAudit.EXPECT().Record(gomock.Any(), domain.AuditLogin, domain.TableTeamMembers, "m1", nil, gomock.Any()).
					Do(func(ctx context.Context, _ domain.AuditAction, _, _ string, _, _ any) {
						claims := domain.ClaimsFromContext(ctx)
						require.NotNil(t, claims)
						assert.Equal(t, "m1", claims.UserID)
					})
			},
			validate: func(t *testing.T, resp *domain.LoginResponse, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Success)
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, "m1", resp.User.ID)

				claims, err := service.ValidateToken(resp.Token)
				require.NoError(t, err)
				assert.Equal(t, domain.RoleCustomer, claims.UserRole)
				assert.Equal(t, "acme-x1", claims.CustomerDashboard)
			},
		},
		{
			name:     "senha errada",
			email:    "anna@agentur.de",
			password: "falsch",
			setup: func() {
				mockRepo.EXPECT().GetByEmail(ctx, "anna@agentur.de").Return(active, nil)
			},
			validate: func(t *testing.T, resp *domain.LoginResponse, err error) {
				require.NoError(t, err)
				assert.False(t, resp.Success)
				assert.Equal(t, LoginFailedMessage, resp.Error)
				assert.Empty(t, resp.Token)
			},
		},
		{
			name:     "usuário inativo",
			email:    "anna@agentur.de",
			password: "geheim123",
			setup: func() {
				inactive := *active
				inactive.IsActive = false
				mockRepo.EXPECT().GetByEmail(ctx, "anna@agentur.de").Return(&inactive, nil)
			},
			validate: func(t *testing.T, resp *domain.LoginResponse, err error) {
				require.NoError(t, err)
				assert.False(t, resp.Success)
			},
		},
		{
			name:     "campos vazios",
			email:    "",
			password: "",
			setup:    func() {},
			validate: func(t *testing.T, resp *domain.LoginResponse, err error) {
				require.NoError(t, err)
				assert.False(t, resp.Success)
			},
		},
		{
			name:     "erro no banco",
			email:    "anna@agentur.de",
			password: "geheim123",
			setup: func() {
				mockRepo.EXPECT().GetByEmail(ctx, "anna@agentur.de").Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, resp *domain.LoginResponse, err error) {
				assert.Nil(t, resp)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, authErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			resp, err := service.Login(ctx, tt.email, tt.password)
			tt.validate(t, resp, err)
		})
	}
}

func TestService_ValidateTokenExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockTeamMemberRepository(ctrl), auditmocks.NewMockRecorder(ctrl), testConfig()).(*Service)

	issued := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }

	token, err := generateJWT(service.claimsFor(&domain.TeamMember{ID: "m1", UserRole: domain.RoleAdmin}), "segredo-de-teste")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.NoError(t, err)

	service.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	_, err = service.ValidateToken("nao.e.um.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := auditmocks.NewMockRecorder(ctrl)
	service := NewService(mocks.NewMockTeamMemberRepository(ctrl), mockAudit, testConfig())

	ctx := domain.WithClaims(context.Background(), &domain.Claims{UserID: "m1", UserEmail: "anna@agentur.de"})
	mockAudit.EXPECT().Record(ctx, domain.AuditLogout, domain.TableTeamMembers, "m1", nil, map[string]string{"email": "anna@agentur.de"})

	service.Logout(ctx)
	service.Logout(context.Background())
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamMemberRepository(ctrl)
	mockAudit := auditmocks.NewMockRecorder(ctrl)
	service := NewService(mockRepo, mockAudit, testConfig())

	ctx := context.Background()
	member := func() *domain.TeamMember {
		return &domain.TeamMember{ID: "m1", PasswordHash: hash(t, "geheim123")}
	}

	t.Run("senha atual incorreta", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, "m1").Return(member(), nil)
		err := service.ChangePassword(ctx, "m1", "errada", "novaSenha1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("senha fraca", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, "m1").Return(member(), nil)
		err := service.ChangePassword(ctx, "m1", "geheim123", "curta")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("sucesso", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, "m1").Return(member(), nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte("novaSenha1")))
				return m, nil
			})
		mockAudit.EXPECT().Record(ctx, domain.AuditUpdate, domain.TableTeamMembers, "m1", nil, gomock.Any())

		require.NoError(t, service.ChangePassword(ctx, "m1", "geheim123", "novaSenha1"))
	})
}

func TestService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamMemberRepository(ctrl)
	mockAudit := auditmocks.NewMockRecorder(ctrl)
	service := NewService(mockRepo, mockAudit, testConfig())

	ctx := context.Background()

	mockRepo.EXPECT().GetByID(ctx, "m9").Return(nil, nil)
	_, err := service.ResetPassword(ctx, "m9")
	assert.ErrorIs(t, err, ErrUserNotFound)

	var saved string
	mockRepo.EXPECT().GetByID(ctx, "m1").Return(&domain.TeamMember{ID: "m1"}, nil)
	mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
			saved = m.PasswordHash
			return m, nil
		})
	mockAudit.EXPECT().Record(ctx, domain.AuditUpdate, domain.TableTeamMembers, "m1", nil, gomock.Any())

	password, err := service.ResetPassword(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, password, 16)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved), []byte(password)))
}
