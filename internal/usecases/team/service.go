package team

import (
	"context"
	"strings"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/authenticating"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type TeamService interface {
	List(ctx context.Context) ([]*domain.TeamMember, error)
	Get(ctx context.Context, id string) (*domain.TeamMember, error)
	Create(ctx context.Context, request *domain.CreateTeamMemberRequest) (*domain.CreateTeamMemberResponse, error)
	Update(ctx context.Context, request *domain.UpdateTeamMemberRequest) (*domain.TeamMember, error)
	Delete(ctx context.Context, id string) error

	ListEarnings(ctx context.Context, memberID string) ([]*domain.TeamMemberEarning, error)
	AddEarning(ctx context.Context, memberID string, request *domain.MemberLedgerEntryRequest) (*domain.TeamMemberEarning, error)
	ListExpenses(ctx context.Context, memberID string) ([]*domain.TeamMemberExpense, error)
	AddExpense(ctx context.Context, memberID string, request *domain.MemberLedgerEntryRequest) (*domain.TeamMemberExpense, error)
	Finance(ctx context.Context, memberID string) (*domain.MemberFinance, error)
}

type Service struct {
	memberRepo   repository.TeamMemberRepository
	ledgerRepo   repository.MemberLedgerRepository
	customerRepo repository.CustomerRepository
	audit        audit.Recorder
}

func NewService(
	memberRepo repository.TeamMemberRepository,
	ledgerRepo repository.MemberLedgerRepository,
	customerRepo repository.CustomerRepository,
	recorder audit.Recorder,
) TeamService {
	return &Service{
		memberRepo:   memberRepo,
		ledgerRepo:   ledgerRepo,
		customerRepo: customerRepo,
		audit:        recorder,
	}
}

func (s *Service) List(ctx context.Context) ([]*domain.TeamMember, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, crm.Store(err, "Erro ao listar equipe")
	}

	return members, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.TeamMember, error) {
	if id == "" {
		return nil, crm.Missing("ID do membro é obrigatório")
	}

	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, crm.Store(err, "Erro ao buscar membro da equipe")
	}
	if member == nil {
		return nil, crm.NotFound(id, "Membro da equipe não encontrado")
	}

	return member, nil
}

func (s *Service) Create(ctx context.Context, request *domain.CreateTeamMemberRequest) (*domain.CreateTeamMemberResponse, error) {
	member := &domain.TeamMember{
		Name:              strings.TrimSpace(request.Name),
		Email:             normalizeEmail(request.Email),
		Phone:             strings.TrimSpace(request.Phone),
		UserRole:          request.UserRole,
		CustomerDashboard: normalizeDashboard(request.CustomerDashboard),
		IsActive:          true,
	}
	if member.UserRole == "" {
		member.UserRole = domain.RoleMember
	}

	if member.Name == "" || member.Email == "" {
		return nil, crm.Missing("Nome e e-mail são obrigatórios")
	}
	if err := s.validateRole(ctx, member); err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.GetByEmail(ctx, member.Email)
	if err != nil {
		return nil, crm.Store(err, "Erro ao verificar e-mail")
	}
	if existing != nil {
		return nil, crm.NewCRMError(crm.ErrDuplicate, apiErrors.ErrUserAlreadyExists, "E-mail já cadastrado")
	}

	response := &domain.CreateTeamMemberResponse{}

	password := request.Password
	if password == "" {
		password, err = utils.GeneratePassword()
		if err != nil {
			return nil, crm.NewCRMError(err, apiErrors.ErrInternalServer, "Erro ao gerar senha")
		}
		response.GeneratedPassword = password
	} else if err := authenticating.ValidatePasswordStrength(password); err != nil {
		return nil, crm.NewCRMError(err, apiErrors.ErrInvalidFormat, "")
	}

	member.PasswordHash, err = authenticating.HashPassword(password)
	if err != nil {
		return nil, crm.NewCRMError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
	}

	created, err := s.memberRepo.Create(ctx, member)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar membro da equipe")
		return nil, crm.Store(err, "Erro ao criar membro da equipe")
	}

	s.audit.Record(ctx, domain.AuditInsert, domain.TableTeamMembers, created.ID, nil, created)

	response.Member = created
	return response, nil
}

func (s *Service) Update(ctx context.Context, request *domain.UpdateTeamMemberRequest) (*domain.TeamMember, error) {
	if request.ID == "" {
		return nil, crm.Missing("ID do membro é obrigatório")
	}

	current, err := s.Get(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	old := *current
	updated := *current
	// vazio mantém a senha atual no repositório
	updated.PasswordHash = ""

	if request.Name != nil {
		updated.Name = strings.TrimSpace(*request.Name)
		if updated.Name == "" {
			return nil, crm.Missing("Nome é obrigatório")
		}
	}
	if request.Email != nil {
		updated.Email = normalizeEmail(*request.Email)
		if updated.Email == "" {
			return nil, crm.Missing("E-mail é obrigatório")
		}
	}
	if request.Phone != nil {
		updated.Phone = strings.TrimSpace(*request.Phone)
	}
	if request.UserRole != nil {
		updated.UserRole = *request.UserRole
	}
	if request.CustomerDashboard != nil {
		updated.CustomerDashboard = normalizeDashboard(request.CustomerDashboard)
	}
	if request.Payouts != nil {
		updated.Payouts = *request.Payouts
	}
	if request.Performance != nil {
		updated.Performance = *request.Performance
	}
	if request.IsActive != nil {
		updated.IsActive = *request.IsActive
	}
	if request.Password != nil && *request.Password != "" {
		if err := authenticating.ValidatePasswordStrength(*request.Password); err != nil {
			return nil, crm.NewCRMError(err, apiErrors.ErrInvalidFormat, "")
		}
		updated.PasswordHash, err = authenticating.HashPassword(*request.Password)
		if err != nil {
			return nil, crm.NewCRMError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
		}
	}

	if err := s.validateRole(ctx, &updated); err != nil {
		return nil, err
	}

	saved, err := s.memberRepo.Update(ctx, &updated)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("team_member_id", request.ID).Error("Erro ao atualizar membro da equipe")
		return nil, crm.Store(err, "Erro ao atualizar membro da equipe")
	}
	if saved == nil {
		return nil, crm.NotFound(request.ID, "Membro da equipe não encontrado")
	}

	s.audit.Record(ctx, domain.AuditUpdate, domain.TableTeamMembers, saved.ID, &old, saved)

	return saved, nil
}

// Delete remove o membro e, na mesma transação, seus compromissos, ganhos,
// despesas e histórico.
func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if claims := domain.ClaimsFromContext(ctx); claims != nil && claims.UserID == id {
		return crm.Forbidden("Não é possível excluir o próprio usuário")
	}

	deleted, err := s.memberRepo.Delete(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("team_member_id", id).Error("Erro ao excluir membro da equipe")
		return crm.Store(err, "Erro ao excluir membro da equipe")
	}
	if !deleted {
		return crm.NotFound(id, "Membro da equipe não encontrado")
	}

	s.audit.Record(ctx, domain.AuditDelete, domain.TableTeamMembers, id, current, nil)

	return nil
}

func (s *Service) ListEarnings(ctx context.Context, memberID string) ([]*domain.TeamMemberEarning, error) {
	if _, err := s.Get(ctx, memberID); err != nil {
		return nil, err
	}

	earnings, err := s.ledgerRepo.ListEarnings(ctx, memberID)
	if err != nil {
		return nil, crm.Store(err, "Erro ao listar ganhos")
	}

	return earnings, nil
}

func (s *Service) AddEarning(ctx context.Context, memberID string, request *domain.MemberLedgerEntryRequest) (*domain.TeamMemberEarning, error) {
	amount, err := s.validateEntry(ctx, memberID, request)
	if err != nil {
		return nil, err
	}

	earning, err := s.ledgerRepo.AddEarning(ctx, &domain.TeamMemberEarning{
		TeamMemberID: memberID,
		Amount:       amount,
		Description:  strings.TrimSpace(request.Description),
		Date:         request.Date,
	})
	if err != nil {
		return nil, crm.Store(err, "Erro ao registrar ganho")
	}

	s.audit.Record(ctx, domain.AuditInsert, domain.TableTeamMemberEarnings, earning.ID, nil, earning)

	return earning, nil
}

func (s *Service) ListExpenses(ctx context.Context, memberID string) ([]*domain.TeamMemberExpense, error) {
	if _, err := s.Get(ctx, memberID); err != nil {
		return nil, err
	}

	expenses, err := s.ledgerRepo.ListExpenses(ctx, memberID)
	if err != nil {
		return nil, crm.Store(err, "Erro ao listar despesas")
	}

	return expenses, nil
}

func (s *Service) AddExpense(ctx context.Context, memberID string, request *domain.MemberLedgerEntryRequest) (*domain.TeamMemberExpense, error) {
	amount, err := s.validateEntry(ctx, memberID, request)
	if err != nil {
		return nil, err
	}

	expense, err := s.ledgerRepo.AddExpense(ctx, &domain.TeamMemberExpense{
		TeamMemberID: memberID,
		Amount:       amount,
		Description:  strings.TrimSpace(request.Description),
		Date:         request.Date,
	})
	if err != nil {
		return nil, crm.Store(err, "Erro ao registrar despesa")
	}

	s.audit.Record(ctx, domain.AuditInsert, domain.TableTeamMemberExpenses, expense.ID, nil, expense)

	return expense, nil
}

func (s *Service) Finance(ctx context.Context, memberID string) (*domain.MemberFinance, error) {
	if _, err := s.Get(ctx, memberID); err != nil {
		return nil, err
	}

	totals, err := s.ledgerRepo.Totals(ctx, memberID)
	if err != nil {
		return nil, crm.Store(err, "Erro ao somar ganhos e despesas")
	}

	return domain.NewMemberFinance(memberID, totals.Earnings, totals.Expenses), nil
}

func (s *Service) validateEntry(ctx context.Context, memberID string, request *domain.MemberLedgerEntryRequest) (float64, error) {
	amount, err := utils.ParseAmount(request.Amount)
	if err != nil {
		return 0, crm.NewCRMError(crm.ErrInvalidAmount, apiErrors.ErrInvalidAmount, err.Error())
	}
	if request.Date.IsZero() {
		return 0, crm.Missing("Data é obrigatória")
	}
	if _, err := s.Get(ctx, memberID); err != nil {
		return 0, err
	}
	return amount, nil
}

// validateRole garante papel conhecido e, para "kunde", um painel existente
func (s *Service) validateRole(ctx context.Context, member *domain.TeamMember) error {
	if !member.UserRole.IsValid() {
		return crm.NewCRMError(domain.ErrInvalidRole, apiErrors.ErrInvalidFormat, string(member.UserRole))
	}

	if member.UserRole != domain.RoleCustomer {
		member.CustomerDashboard = nil
		return nil
	}
	if member.CustomerDashboard == nil {
		return nil
	}

	customer, err := s.customerRepo.GetByDashboardName(ctx, *member.CustomerDashboard)
	if err != nil {
		return crm.Store(err, "Erro ao verificar painel do cliente")
	}
	if customer == nil {
		return crm.NotFound(*member.CustomerDashboard, "Painel de cliente não encontrado")
	}
	return nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeDashboard(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
