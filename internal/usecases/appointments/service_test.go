package appointments

import (
	"context"
	"errors"
	"testing"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository/mocks"
	auditmocks "github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit/mocks"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	appointments *mocks.MockAppointmentRepository
	customers    *mocks.MockCustomerRepository
	members      *mocks.MockTeamMemberRepository
	audit        *auditmocks.MockRecorder
	service      AppointmentService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		appointments: mocks.NewMockAppointmentRepository(ctrl),
		customers:    mocks.NewMockCustomerRepository(ctrl),
		members:      mocks.NewMockTeamMemberRepository(ctrl),
		audit:        auditmocks.NewMockRecorder(ctrl),
	}
	f.service = NewService(f.appointments, f.customers, f.members, f.audit)
	return f
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	date := domain.NewDate(2025, 2, 10)

	tests := []struct {
		name     string
		request  *domain.CreateAppointmentRequest
		setup    func(f *fixture)
		validate func(t *testing.T, a *domain.Appointment, err error)
	}{
		{
			name:    "com responsável",
			request: &domain.CreateAppointmentRequest{CustomerID: "c1", TeamMemberID: ptr("m1"), Date: date, Time: "10:00"},
			setup: func(f *fixture) {
				f.customers.EXPECT().GetByID(ctx, "c1").Return(&domain.Customer{ID: "c1"}, nil)
				f.members.EXPECT().GetByID(ctx, "m1").Return(&domain.TeamMember{ID: "m1"}, nil)
				f.appointments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
						a.ID = "a1"
						return a, nil
					})
				f.audit.EXPECT().Record(ctx, domain.AuditInsert, domain.TableAppointments, "a1", nil, gomock.Any())
			},
			validate: func(t *testing.T, a *domain.Appointment, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.StagePending, a.Result)
				require.NotNil(t, a.TeamMemberID)
				assert.Equal(t, "m1", *a.TeamMemberID)
			},
		},
		{
			name:    "responsável vazio vira sem responsável",
			request: &domain.CreateAppointmentRequest{CustomerID: "c1", TeamMemberID: ptr(" "), Date: date},
			setup: func(f *fixture) {
				f.customers.EXPECT().GetByID(ctx, "c1").Return(&domain.Customer{ID: "c1"}, nil)
				f.appointments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
						a.ID = "a2"
						return a, nil
					})
				f.audit.EXPECT().Record(ctx, domain.AuditInsert, domain.TableAppointments, "a2", nil, gomock.Any())
			},
			validate: func(t *testing.T, a *domain.Appointment, err error) {
				require.NoError(t, err)
				assert.Nil(t, a.TeamMemberID)
			},
		},
		{
			name:    "cliente inexistente",
			request: &domain.CreateAppointmentRequest{CustomerID: "c9", Date: date},
			setup: func(f *fixture) {
				f.customers.EXPECT().GetByID(ctx, "c9").Return(nil, nil)
			},
			validate: func(t *testing.T, a *domain.Appointment, err error) {
				assert.ErrorIs(t, err, crm.ErrNotFound)
			},
		},
		{
			name:    "etapa inválida",
			request: &domain.CreateAppointmentRequest{CustomerID: "c1", Date: date, Result: "gewonnen"},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, a *domain.Appointment, err error) {
				assert.Equal(t, apiErrors.ErrInvalidStage, crm.CodeOf(err))
			},
		},
		{
			name:    "sem data",
			request: &domain.CreateAppointmentRequest{CustomerID: "c1"},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, a *domain.Appointment, err error) {
				assert.ErrorIs(t, err, crm.ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			a, err := f.service.Create(ctx, tt.request)
			tt.validate(t, a, err)
		})
	}
}

func TestService_MoveCard(t *testing.T) {
	ctx := context.Background()
	request := &domain.MoveStageRequest{AppointmentID: "a1", Destination: domain.StageClosed}

	t.Run("sucesso deixa o cartão só na coluna de destino", func(t *testing.T) {
		f := newFixture(t)
		pending := &domain.Appointment{ID: "a1", CustomerID: "c1", Result: domain.StagePending}

		f.appointments.EXPECT().GetByID(ctx, "a1").Return(pending, nil)
		f.appointments.EXPECT().UpdateStage(ctx, "a1", domain.StageClosed).
			Return(&domain.Appointment{ID: "a1", CustomerID: "c1", Result: domain.StageClosed}, nil).Times(1)
		f.audit.EXPECT().Record(ctx, domain.AuditUpdate, domain.TableAppointments, "a1", gomock.Any(), gomock.Any())

		resp, err := f.service.Move(ctx, request)
		require.NoError(t, err)
		assert.True(t, resp.Moved)

		f.appointments.EXPECT().List(ctx, domain.AppointmentFilter{}).Return([]*domain.Appointment{resp.Appointment}, nil)
		board, err := f.service.Board(ctx, domain.AppointmentFilter{})
		require.NoError(t, err)
		assert.Empty(t, board.Column(domain.StagePending).Appointments)
		assert.Len(t, board.Column(domain.StageClosed).Appointments, 1)
	})

	t.Run("falha mantém o cartão na origem", func(t *testing.T) {
		f := newFixture(t)
		pending := &domain.Appointment{ID: "a1", CustomerID: "c1", Result: domain.StagePending}

		f.appointments.EXPECT().GetByID(ctx, "a1").Return(pending, nil)
		f.appointments.EXPECT().UpdateStage(ctx, "a1", domain.StageClosed).Return(nil, errors.New("rede"))

		resp, err := f.service.Move(ctx, request)
		assert.Nil(t, resp)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, crm.CodeOf(err))
		assert.Equal(t, domain.StagePending, pending.Result)
	})

	t.Run("cliente tentando mover compromisso alheio", func(t *testing.T) {
		f := newFixture(t)
		f.appointments.EXPECT().GetByID(ctx, "a1").Return(&domain.Appointment{ID: "a1", CustomerID: "c2", Result: domain.StagePending}, nil)

		_, err := f.service.MoveForCustomer(ctx, "c1", request)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, crm.CodeOf(err))
	})
}

func TestService_UpdateAcceptsLostStage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.appointments.EXPECT().GetByID(ctx, "a1").Return(&domain.Appointment{ID: "a1", Result: domain.StageFollowUp}, nil)
	f.appointments.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) { return a, nil })
	f.audit.EXPECT().Record(ctx, domain.AuditUpdate, domain.TableAppointments, "a1", gomock.Any(), gomock.Any())

	lost := domain.StageLost
	a, err := f.service.Update(ctx, &domain.UpdateAppointmentRequest{ID: "a1", Result: &lost})
	require.NoError(t, err)
	assert.Equal(t, domain.StageLost, a.Result)
}

func TestService_ListRejectsUnknownStage(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.List(context.Background(), domain.AppointmentFilter{Stages: []domain.Stage{"offen"}})
	assert.ErrorIs(t, err, domain.ErrInvalidStage)
}

func ptr[T any](v T) *T { return &v }
