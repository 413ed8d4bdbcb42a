// Package dashboard compõe os painéis de cada papel a partir dos
// repositórios e das agregações de reporting.
package dashboard

import (
	"context"
	"time"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/pipeline"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/reporting"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/settings"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type DashboardService interface {
	Stats(ctx context.Context, window reporting.Window) (*Stats, error)
	Member(ctx context.Context) (*MemberDashboard, error)
	CustomerPortal(ctx context.Context, dashboardName string) (*CustomerPortal, error)
}

type Stats struct {
	Window               reporting.Window         `json:"window"`
	Revenue              float64                  `json:"revenue"`
	Expenses             float64                  `json:"expenses"`
	AverageRevenue       float64                  `json:"average_revenue"`
	RevenueCount         int                      `json:"revenue_count"`
	Appointments         int                      `json:"appointments"`
	AppointmentsByWindow map[reporting.Window]int `json:"appointments_by_window"`
	ActiveCustomers      int                      `json:"active_customers"`
	TopPerformer         *reporting.Performer     `json:"top_performer"`
	TaxReserve           reporting.TaxReserve     `json:"tax_reserve"`
}

type MemberDashboard struct {
	Member       *domain.TeamMember          `json:"member"`
	Appointments []*domain.Appointment       `json:"appointments"`
	Earnings     []*domain.TeamMemberEarning `json:"earnings"`
	Expenses     []*domain.TeamMemberExpense `json:"expenses"`
	Finance      *domain.MemberFinance       `json:"finance"`
	TeamNotice   *domain.TeamNotice          `json:"team_notice,omitempty"`
}

type CustomerPortal struct {
	Customer *domain.Customer `json:"customer"`
	Board    pipeline.Board   `json:"board"`
}

type Service struct {
	revenueRepo     repository.RevenueRepository
	expenseRepo     repository.ExpenseRepository
	appointmentRepo repository.AppointmentRepository
	customerRepo    repository.CustomerRepository
	memberRepo      repository.TeamMemberRepository
	ledgerRepo      repository.MemberLedgerRepository
	settings        settings.SettingService
	now             func() time.Time
}

func NewService(
	revenueRepo repository.RevenueRepository,
	expenseRepo repository.ExpenseRepository,
	appointmentRepo repository.AppointmentRepository,
	customerRepo repository.CustomerRepository,
	memberRepo repository.TeamMemberRepository,
	ledgerRepo repository.MemberLedgerRepository,
	settingService settings.SettingService,
) DashboardService {
	return &Service{
		revenueRepo:     revenueRepo,
		expenseRepo:     expenseRepo,
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		memberRepo:      memberRepo,
		ledgerRepo:      ledgerRepo,
		settings:        settingService,
		now:             time.Now,
	}
}

func (s *Service) Stats(ctx context.Context, window reporting.Window) (*Stats, error) {
	if window == "" {
		window = reporting.WindowAll
	}

	revenues, err := s.revenueRepo.List(ctx)
	if err != nil {
		return nil, crm.Store(err, "Erro ao carregar receitas")
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, crm.Store(err, "Erro ao carregar despesas")
	}
	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentFilter{})
	if err != nil {
		return nil, crm.Store(err, "Erro ao carregar compromissos")
	}
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, crm.Store(err, "Erro ao carregar equipe")
	}
	activeCustomers, err := s.customerRepo.CountActive(ctx)
	if err != nil {
		return nil, crm.Store(err, "Erro ao contar clientes ativos")
	}
	taxRate, err := s.settings.TaxRate(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	windowRevenues := reporting.FilterWindow(revenues, window, now)
	windowExpenses := reporting.FilterWindow(expenses, window, now)
	windowAppointments := reporting.FilterWindow(appointments, window, now)

	revenue := reporting.Sum(windowRevenues)
	spent := reporting.Sum(windowExpenses)

	stats := &Stats{
		Window:               window,
		Revenue:              reporting.RoundCurrency(revenue),
		Expenses:             reporting.RoundCurrency(spent),
		AverageRevenue:       reporting.RoundCurrency(reporting.Average(windowRevenues)),
		RevenueCount:         len(windowRevenues),
		Appointments:         len(windowAppointments),
		AppointmentsByWindow: make(map[reporting.Window]int, len(reporting.Windows)),
		ActiveCustomers:      activeCustomers,
		TopPerformer:         reporting.TopPerformer(windowAppointments, members),
	}
	for _, w := range reporting.Windows {
		stats.AppointmentsByWindow[w] = len(reporting.FilterWindow(appointments, w, now))
	}
	stats.TaxReserve = reporting.ComputeTaxReserve(revenue, spent, taxRate).Rounded()

	return stats, nil
}

// Member monta o painel do usuário autenticado com os próprios números
func (s *Service) Member(ctx context.Context) (*MemberDashboard, error) {
	claims := domain.ClaimsFromContext(ctx)
	if claims == nil {
		return nil, crm.Forbidden("Sessão não encontrada")
	}

	member, err := s.memberRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, crm.Store(err, "Erro ao buscar membro")
	}
	if member == nil {
		return nil, crm.NotFound(claims.UserID, "Membro não encontrado")
	}

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentFilter{TeamMemberID: member.ID})
	if err != nil {
		return nil, crm.Store(err, "Erro ao carregar compromissos")
	}
	earnings, err := s.ledgerRepo.ListEarnings(ctx, member.ID)
	if err != nil {
		return nil, crm.Store(err, "Erro ao carregar ganhos")
	}
	expenses, err := s.ledgerRepo.ListExpenses(ctx, member.ID)
	if err != nil {
		return nil, crm.Store(err, "Erro ao carregar despesas")
	}

	earned := reporting.Sum(earnings)
	spent := reporting.Sum(expenses)

	dashboard := &MemberDashboard{
		Member:       member,
		Appointments: appointments,
		Earnings:     earnings,
		Expenses:     expenses,
		Finance:      domain.NewMemberFinance(member.ID, earned, spent),
	}

	notice, err := s.settings.TeamNotice(ctx)
	if err != nil {
		return nil, err
	}
	if notice.Visible && notice.Text != "" {
		dashboard.TeamNotice = notice
	}

	return dashboard, nil
}

// CustomerPortal devolve o cliente de um painel e o quadro com os
// compromissos desse cliente. Quem chama decide qual painel o usuário pode ver.
func (s *Service) CustomerPortal(ctx context.Context, dashboardName string) (*CustomerPortal, error) {
	if dashboardName == "" {
		return nil, crm.Forbidden("Nenhum painel de cliente vinculado ao usuário")
	}

	customer, err := s.customerRepo.GetByDashboardName(ctx, dashboardName)
	if err != nil {
		return nil, crm.Store(err, "Erro ao buscar cliente do painel")
	}
	if customer == nil {
		return nil, crm.NotFound(dashboardName, "Nenhum cliente vinculado ao painel")
	}

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentFilter{CustomerID: customer.ID})
	if err != nil {
		return nil, crm.Store(err, "Erro ao carregar compromissos")
	}

	return &CustomerPortal{
		Customer: customer,
		Board:    pipeline.GroupByStage(appointments),
	}, nil
}
