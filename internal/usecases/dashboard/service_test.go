package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository/mocks"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/reporting"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	settingsmocks "github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/settings/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	revenues     *mocks.MockRevenueRepository
	expenses     *mocks.MockExpenseRepository
	appointments *mocks.MockAppointmentRepository
	customers    *mocks.MockCustomerRepository
	members      *mocks.MockTeamMemberRepository
	ledger       *mocks.MockMemberLedgerRepository
	settings     *settingsmocks.MockSettingService
	service      *Service
}

var fixedNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		revenues:     mocks.NewMockRevenueRepository(ctrl),
		expenses:     mocks.NewMockExpenseRepository(ctrl),
		appointments: mocks.NewMockAppointmentRepository(ctrl),
		customers:    mocks.NewMockCustomerRepository(ctrl),
		members:      mocks.NewMockTeamMemberRepository(ctrl),
		ledger:       mocks.NewMockMemberLedgerRepository(ctrl),
		settings:     settingsmocks.NewMockSettingService(ctrl),
	}
	f.service = NewService(f.revenues, f.expenses, f.appointments, f.customers, f.members, f.ledger, f.settings).(*Service)
	f.service.now = func() time.Time { return fixedNow }
	return f
}

func strPtr(s string) *string { return &s }

func TestService_Stats(t *testing.T) {
	f := newFixture(t)

	f.revenues.EXPECT().List(gomock.Any()).Return([]*domain.Revenue{
		{ID: "r1", Amount: 1000, Date: domain.NewDate(2024, time.June, 14)},
		{ID: "r2", Amount: 500, Date: domain.NewDate(2024, time.June, 1)},
		{ID: "r3", Amount: 9999, Date: domain.NewDate(2023, time.January, 1)},
	}, nil)
	f.expenses.EXPECT().List(gomock.Any()).Return([]*domain.Expense{
		{ID: "e1", Amount: 300, Date: domain.NewDate(2024, time.June, 10)},
	}, nil)
	f.appointments.EXPECT().List(gomock.Any(), domain.AppointmentFilter{}).Return([]*domain.Appointment{
		{ID: "a1", TeamMemberID: strPtr("m1"), Result: domain.StageClosed, Date: domain.NewDate(2024, time.June, 15)},
		{ID: "a2", TeamMemberID: strPtr("m2"), Result: domain.StageAttended, Date: domain.NewDate(2024, time.June, 12)},
		{ID: "a3", TeamMemberID: strPtr("m2"), Result: domain.StagePending, Date: domain.NewDate(2024, time.May, 1)},
	}, nil)
	f.members.EXPECT().List(gomock.Any()).Return([]*domain.TeamMember{
		{ID: "m1", Name: "Zoe"},
		{ID: "m2", Name: "Anna"},
	}, nil)
	f.customers.EXPECT().CountActive(gomock.Any()).Return(4, nil)
	f.settings.EXPECT().TaxRate(gomock.Any()).Return(20.0, nil)

	stats, err := f.service.Stats(context.Background(), reporting.WindowMonth)
	require.NoError(t, err)

	assert.Equal(t, 1500.0, stats.Revenue)
	assert.Equal(t, 300.0, stats.Expenses)
	assert.Equal(t, 750.0, stats.AverageRevenue)
	assert.Equal(t, 2, stats.RevenueCount)
	assert.Equal(t, 2, stats.Appointments)
	assert.Equal(t, 1, stats.AppointmentsByWindow[reporting.WindowToday])
	assert.Equal(t, 3, stats.AppointmentsByWindow[reporting.WindowAll])
	assert.Equal(t, 4, stats.ActiveCustomers)
	require.NotNil(t, stats.TopPerformer)
	assert.Equal(t, "Anna", stats.TopPerformer.Name)
	assert.Equal(t, 240.0, stats.TaxReserve.Reserve)
}

func TestService_StatsNoProfitHasNoReserve(t *testing.T) {
	f := newFixture(t)

	f.revenues.EXPECT().List(gomock.Any()).Return([]*domain.Revenue{
		{ID: "r1", Amount: 100, Date: domain.NewDate(2024, time.June, 14)},
	}, nil)
	f.expenses.EXPECT().List(gomock.Any()).Return([]*domain.Expense{
		{ID: "e1", Amount: 400, Date: domain.NewDate(2024, time.June, 10)},
	}, nil)
	f.appointments.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.members.EXPECT().List(gomock.Any()).Return(nil, nil)
	f.customers.EXPECT().CountActive(gomock.Any()).Return(0, nil)
	f.settings.EXPECT().TaxRate(gomock.Any()).Return(19.0, nil)

	stats, err := f.service.Stats(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, reporting.WindowAll, stats.Window)
	assert.Zero(t, stats.TaxReserve.Reserve)
	assert.NotEmpty(t, stats.TaxReserve.Notice)
	assert.Nil(t, stats.TopPerformer)
}

func TestService_StatsRoundsForDisplay(t *testing.T) {
	f := newFixture(t)

	f.revenues.EXPECT().List(gomock.Any()).Return([]*domain.Revenue{
		{ID: "r1", Description: "Invoice 1", Amount: 100, Date: domain.NewDate(2024, time.January, 1)},
	}, nil)
	f.expenses.EXPECT().List(gomock.Any()).Return([]*domain.Expense{
		{ID: "e1", Description: "Ads", Amount: 40, Date: domain.NewDate(2024, time.January, 1)},
	}, nil)
	f.appointments.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.members.EXPECT().List(gomock.Any()).Return(nil, nil)
	f.customers.EXPECT().CountActive(gomock.Any()).Return(1, nil)
	f.settings.EXPECT().TaxRate(gomock.Any()).Return(19.0, nil)

	stats, err := f.service.Stats(context.Background(), reporting.WindowAll)
	require.NoError(t, err)

	assert.Equal(t, 100.0, stats.Revenue)
	assert.Equal(t, 40.0, stats.Expenses)
	assert.Equal(t, 60.0, stats.TaxReserve.Net)
	assert.Equal(t, 11.0, stats.TaxReserve.Reserve)
	assert.Equal(t, 19.0, stats.TaxReserve.Rate)
}

func TestService_StatsAccumulatesBeforeRounding(t *testing.T) {
	f := newFixture(t)

	f.revenues.EXPECT().List(gomock.Any()).Return([]*domain.Revenue{
		{ID: "r1", Amount: 0.4, Date: domain.NewDate(2024, time.June, 1)},
		{ID: "r2", Amount: 0.4, Date: domain.NewDate(2024, time.June, 2)},
		{ID: "r3", Amount: 0.4, Date: domain.NewDate(2024, time.June, 3)},
	}, nil)
	f.expenses.EXPECT().List(gomock.Any()).Return(nil, nil)
	f.appointments.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.members.EXPECT().List(gomock.Any()).Return(nil, nil)
	f.customers.EXPECT().CountActive(gomock.Any()).Return(0, nil)
	f.settings.EXPECT().TaxRate(gomock.Any()).Return(19.0, nil)

	stats, err := f.service.Stats(context.Background(), reporting.WindowAll)
	require.NoError(t, err)

	// 0,4 + 0,4 + 0,4 = 1,2; arredondar cada parcela daria 0
	assert.Equal(t, 1.0, stats.Revenue)
	assert.Equal(t, 0.0, stats.AverageRevenue)
}

func TestService_Member(t *testing.T) {
	f := newFixture(t)
	ctx := domain.WithClaims(context.Background(), &domain.Claims{UserID: "m1", UserRole: domain.RoleMember})

	f.members.EXPECT().GetByID(ctx, "m1").Return(&domain.TeamMember{ID: "m1", Name: "Zoe"}, nil)
	f.appointments.EXPECT().List(ctx, domain.AppointmentFilter{TeamMemberID: "m1"}).
		Return([]*domain.Appointment{{ID: "a1"}}, nil)
	f.ledger.EXPECT().ListEarnings(ctx, "m1").Return([]*domain.TeamMemberEarning{{Amount: 200}, {Amount: 50.5}}, nil)
	f.ledger.EXPECT().ListExpenses(ctx, "m1").Return([]*domain.TeamMemberExpense{{Amount: 20}}, nil)
	f.settings.EXPECT().TeamNotice(ctx).Return(&domain.TeamNotice{Text: "Urlaubsplanung", Visible: false}, nil)

	dashboard, err := f.service.Member(ctx)
	require.NoError(t, err)
	assert.Len(t, dashboard.Appointments, 1)
	assert.Equal(t, 251.0, dashboard.Finance.Earnings)
	assert.Equal(t, 20.0, dashboard.Finance.Expenses)
	assert.Equal(t, 231.0, dashboard.Finance.Balance)
	assert.Nil(t, dashboard.TeamNotice)

	_, err = f.service.Member(context.Background())
	assert.ErrorIs(t, err, crm.ErrInsufficientPrivilege)
}

func TestService_CustomerPortal(t *testing.T) {
	f := newFixture(t)
	ctx := domain.WithClaims(context.Background(), &domain.Claims{
		UserID:            "k1",
		UserRole:          domain.RoleCustomer,
		CustomerDashboard: "acme-ab12cd34",
	})

	f.customers.EXPECT().GetByDashboardName(ctx, "acme-ab12cd34").Return(&domain.Customer{ID: "c1", Name: "Acme"}, nil)
	f.appointments.EXPECT().List(ctx, domain.AppointmentFilter{CustomerID: "c1"}).Return([]*domain.Appointment{
		{ID: "a1", CustomerID: "c1", Result: domain.StagePending},
		{ID: "a2", CustomerID: "c1", Result: domain.StageLost},
	}, nil)

	portal, err := f.service.CustomerPortal(ctx, "acme-ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, "c1", portal.Customer.ID)
	assert.Len(t, portal.Board.Columns, len(domain.BoardStages))
	assert.Len(t, portal.Board.Column(domain.StagePending).Appointments, 1)
	assert.Len(t, portal.Board.Other, 1)

	_, err = f.service.CustomerPortal(ctx, "")
	assert.ErrorIs(t, err, crm.ErrInsufficientPrivilege)
}
