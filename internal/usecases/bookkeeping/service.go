// Package bookkeeping cuida de receitas e despesas da agência. Os
// lançamentos não são editáveis: só inclusão e exclusão.
package bookkeeping

import (
	"context"
	"strings"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type BookkeepingService interface {
	ListRevenues(ctx context.Context) ([]*domain.Revenue, error)
	AddRevenue(ctx context.Context, request *domain.CreateRevenueRequest) (*domain.Revenue, error)
	DeleteRevenue(ctx context.Context, id string) error
	ListExpenses(ctx context.Context) ([]*domain.Expense, error)
	AddExpense(ctx context.Context, request *domain.CreateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

type Service struct {
	revenueRepo repository.RevenueRepository
	expenseRepo repository.ExpenseRepository
	audit       audit.Recorder
}

func NewService(revenueRepo repository.RevenueRepository, expenseRepo repository.ExpenseRepository, recorder audit.Recorder) BookkeepingService {
	return &Service{
		revenueRepo: revenueRepo,
		expenseRepo: expenseRepo,
		audit:       recorder,
	}
}

func (s *Service) ListRevenues(ctx context.Context) ([]*domain.Revenue, error) {
	revenues, err := s.revenueRepo.List(ctx)
	if err != nil {
		return nil, crm.Store(err, "Erro ao listar receitas")
	}
	return revenues, nil
}

func (s *Service) AddRevenue(ctx context.Context, request *domain.CreateRevenueRequest) (*domain.Revenue, error) {
	description, amount, err := validateEntry(request.Description, request.Amount, request.Date)
	if err != nil {
		return nil, err
	}

	var customerID *string
	if request.CustomerID != nil && strings.TrimSpace(*request.CustomerID) != "" {
		id := strings.TrimSpace(*request.CustomerID)
		customerID = &id
	}

	revenue, err := s.revenueRepo.Create(ctx, &domain.Revenue{
		Description: description,
		Amount:      amount,
		Date:        request.Date,
		CustomerID:  customerID,
	})
	if err != nil {
		return nil, crm.Store(err, "Erro ao registrar receita")
	}

	s.audit.Record(ctx, domain.AuditInsert, domain.TableRevenues, revenue.ID, nil, revenue)

	return revenue, nil
}

func (s *Service) DeleteRevenue(ctx context.Context, id string) error {
	if id == "" {
		return crm.Missing("ID da receita é obrigatório")
	}

	current, err := s.revenueRepo.GetByID(ctx, id)
	if err != nil {
		return crm.Store(err, "Erro ao buscar receita")
	}
	if current == nil {
		return crm.NotFound(id, "Receita não encontrada")
	}

	if _, err := s.revenueRepo.Delete(ctx, id); err != nil {
		return crm.Store(err, "Erro ao excluir receita")
	}

	s.audit.Record(ctx, domain.AuditDelete, domain.TableRevenues, id, current, nil)

	return nil
}

func (s *Service) ListExpenses(ctx context.Context) ([]*domain.Expense, error) {
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, crm.Store(err, "Erro ao listar despesas")
	}
	return expenses, nil
}

func (s *Service) AddExpense(ctx context.Context, request *domain.CreateExpenseRequest) (*domain.Expense, error) {
	description, amount, err := validateEntry(request.Description, request.Amount, request.Date)
	if err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.Create(ctx, &domain.Expense{
		Description: description,
		Amount:      amount,
		Date:        request.Date,
	})
	if err != nil {
		return nil, crm.Store(err, "Erro ao registrar despesa")
	}

	s.audit.Record(ctx, domain.AuditInsert, domain.TableExpenses, expense.ID, nil, expense)

	return expense, nil
}

func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	if id == "" {
		return crm.Missing("ID da despesa é obrigatório")
	}

	current, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return crm.Store(err, "Erro ao buscar despesa")
	}
	if current == nil {
		return crm.NotFound(id, "Despesa não encontrada")
	}

	if _, err := s.expenseRepo.Delete(ctx, id); err != nil {
		return crm.Store(err, "Erro ao excluir despesa")
	}

	s.audit.Record(ctx, domain.AuditDelete, domain.TableExpenses, id, current, nil)

	return nil
}

func validateEntry(description string, rawAmount any, date domain.Date) (string, float64, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", 0, crm.Missing("Descrição é obrigatória")
	}

	amount, err := utils.ParseAmount(rawAmount)
	if err != nil {
		return "", 0, crm.NewCRMError(crm.ErrInvalidAmount, apiErrors.ErrInvalidAmount, err.Error())
	}

	if date.IsZero() {
		return "", 0, crm.Missing("Data é obrigatória")
	}

	return description, amount, nil
}
