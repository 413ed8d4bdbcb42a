package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/config"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// LoginFailedMessage é a única mensagem devolvida em falhas de login,
// para não revelar se o e-mail existe.
const LoginFailedMessage = "E-Mail oder Passwort ist falsch"

const minPasswordLength = 8

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.LoginResponse, error)
	Logout(ctx context.Context)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetProfile(ctx context.Context, userID string) (*domain.TeamMember, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ResetPassword(ctx context.Context, targetUserID string) (string, error)
}

type Service struct {
	memberRepo repository.TeamMemberRepository
	audit      audit.Recorder
	cfg        *config.Config
	now        func() time.Time
}

func NewService(memberRepo repository.TeamMemberRepository, recorder audit.Recorder, cfg *config.Config) Authenticator {
	return &Service{
		memberRepo: memberRepo,
		audit:      recorder,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Login devolve o envelope {success, user?, token?, error?}. Credenciais
// erradas não são erro Go: viram success=false com mensagem genérica.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	email = handleEmail(email)
	if email == "" || password == "" {
		return &domain.LoginResponse{Success: false, Error: LoginFailedMessage}, nil
	}

	member, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if member == nil || !member.IsActive {
		log.ForContext(ctx).WithField("user_email", email).Warn("Tentativa de login inválida")
		return &domain.LoginResponse{Success: false, Error: LoginFailedMessage}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		log.ForContext(ctx).WithField("user_id", member.ID).Warn("Senha incorreta no login")
		return &domain.LoginResponse{Success: false, Error: LoginFailedMessage}, nil
	}

	claims := s.claimsFor(member)
	token, err := generateJWT(claims, s.cfg.Auth.Secret)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrInternalServer, member.ID, "Erro ao gerar token de autenticação")
	}

	s.audit.Record(domain.WithClaims(ctx, claims), domain.AuditLogin, domain.TableTeamMembers, member.ID, nil,
		map[string]string{"email": member.Email})

	return &domain.LoginResponse{Success: true, User: member, Token: token}, nil
}

// Logout só registra o evento; o token expira sozinho
func (s *Service) Logout(ctx context.Context) {
	claims := domain.ClaimsFromContext(ctx)
	if claims == nil {
		return
	}

	s.audit.Record(ctx, domain.AuditLogout, domain.TableTeamMembers, claims.UserID, nil,
		map[string]string{"email": claims.UserEmail})
}

func (s *Service) claimsFor(member *domain.TeamMember) *domain.Claims {
	ttl := s.cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := &domain.Claims{
		UserID:    member.ID,
		UserName:  member.Name,
		UserEmail: member.Email,
		UserRole:  member.UserRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   member.ID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(s.now().Add(ttl)),
		},
	}
	if member.CustomerDashboard != nil {
		claims.CustomerDashboard = *member.CustomerDashboard
	}

	return claims
}

func generateJWT(claims *domain.Claims, secretKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || !claims.UserRole.IsValid() {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem papel válido")
	}

	return claims, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.TeamMember, error) {
	member, err := s.memberRepo.GetByID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao obter perfil do usuário")
		return nil, NewAuthError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "Erro ao obter dados do usuário")
	}
	if member == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	return member, nil
}

// ChangePassword permite que um usuário altere sua própria senha
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	member, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, userID, "Senha atual incorreta")
	}
	if currentPassword == newPassword {
		return NewUserAuthError(ErrSamePassword, apiErrors.ErrInvalidFormat, userID, "")
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return NewUserAuthError(err, apiErrors.ErrInvalidFormat, userID, "")
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	member.PasswordHash = hash
	if _, err := s.memberRepo.Update(ctx, member); err != nil {
		return NewUserAuthError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, userID, "Erro ao alterar senha")
	}

	s.audit.Record(ctx, domain.AuditUpdate, domain.TableTeamMembers, userID, nil, map[string]bool{"password_changed": true})

	return nil
}

// ResetPassword gera uma senha provisória para outro membro (uso do admin)
func (s *Service) ResetPassword(ctx context.Context, targetUserID string) (string, error) {
	member, err := s.GetProfile(ctx, targetUserID)
	if err != nil {
		return "", err
	}

	password, err := utils.GeneratePassword()
	if err != nil {
		return "", err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	member.PasswordHash = hash
	if _, err := s.memberRepo.Update(ctx, member); err != nil {
		return "", NewUserAuthError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, targetUserID, "Erro ao gerar senha")
	}

	s.audit.Record(ctx, domain.AuditUpdate, domain.TableTeamMembers, targetUserID, nil, map[string]bool{"password_reset": true})

	return password, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: a senha deve ter pelo menos %d caracteres", ErrWeakPassword, minPasswordLength)
	}
	return nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
