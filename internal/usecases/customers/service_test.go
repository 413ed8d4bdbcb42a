package customers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository/mocks"
	auditmocks "github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit/mocks"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_CreateThenList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRepository(ctrl)
	mockAudit := auditmocks.NewMockRecorder(ctrl)
	service := NewService(mockRepo, mockAudit)

	ctx := context.Background()
	older := &domain.Customer{ID: "c0", Name: "Beta", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	var stored *domain.Customer
	mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
			c.ID = "c1"
			c.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			stored = c
			return c, nil
		})
	mockAudit.EXPECT().Record(ctx, domain.AuditInsert, domain.TableCustomers, "c1", nil, gomock.Any())

	created, err := service.Create(ctx, &domain.CreateCustomerRequest{Name: "Acme", Priority: domain.PriorityMedium})
	require.NoError(t, err)

	assert.True(t, created.IsActive)
	assert.Equal(t, 0, created.BookedAppointments)
	assert.Equal(t, 0, created.CompletedAppointments)
	assert.Equal(t, domain.PaymentPending, created.PaymentStatus)
	assert.Equal(t, domain.StagePending, created.PipelineStage)
	assert.Equal(t, domain.DefaultSatisfaction, created.Satisfaction)
	require.NotNil(t, created.DashboardName)
	assert.Regexp(t, "^acme-[a-z0-9]{8}$", *created.DashboardName)

	mockRepo.EXPECT().List(ctx).Return([]*domain.Customer{stored, older}, nil)

	list, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Acme", list[0].Name)
}

func TestService_CreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRepository(ctrl)
	mockAudit := auditmocks.NewMockRecorder(ctrl)
	service := NewService(mockRepo, mockAudit)

	tests := []struct {
		name    string
		request *domain.CreateCustomerRequest
		code    string
	}{
		{name: "sem nome", request: &domain.CreateCustomerRequest{Name: "  "}, code: apiErrors.ErrMissingRequiredData},
		{name: "prioridade inválida", request: &domain.CreateCustomerRequest{Name: "Acme", Priority: "Urgent"}, code: apiErrors.ErrInvalidFormat},
		{name: "status de pagamento inválido", request: &domain.CreateCustomerRequest{Name: "Acme", PaymentStatus: "Paid"}, code: apiErrors.ErrInvalidFormat},
		{name: "satisfação fora da faixa", request: &domain.CreateCustomerRequest{Name: "Acme", Satisfaction: 11}, code: apiErrors.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.request)
			require.Error(t, err)
			assert.Equal(t, tt.code, crm.CodeOf(err))
		})
	}
}

func TestService_CreateDuplicateDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRepository(ctrl)
	mockAudit := auditmocks.NewMockRecorder(ctrl)
	service := NewService(mockRepo, mockAudit)

	slug := "acme"
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicate)

	_, err := service.Create(context.Background(), &domain.CreateCustomerRequest{Name: "Acme", DashboardName: &slug})
	assert.ErrorIs(t, err, crm.ErrDuplicate)
	assert.Equal(t, apiErrors.ErrResourceConflict, crm.CodeOf(err))
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRepository(ctrl)
	mockAudit := auditmocks.NewMockRecorder(ctrl)
	service := NewService(mockRepo, mockAudit)

	ctx := context.Background()
	current := func() *domain.Customer {
		c := &domain.Customer{ID: "c1", Name: "Acme"}
		c.ApplyDefaults()
		return c
	}

	tests := []struct {
		name     string
		request  *domain.UpdateCustomerRequest
		setup    func()
		validate func(t *testing.T, c *domain.Customer, err error)
	}{
		{
			name:    "atualiza status de pagamento",
			request: &domain.UpdateCustomerRequest{ID: "c1", PaymentStatus: ptr(domain.PaymentPaid)},
			setup: func() {
				mockRepo.EXPECT().GetByID(ctx, "c1").Return(current(), nil)
				mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
						return c, nil
					})
				mockAudit.EXPECT().Record(ctx, domain.AuditUpdate, domain.TableCustomers, "c1", gomock.Any(), gomock.Any())
			},
			validate: func(t *testing.T, c *domain.Customer, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.PaymentPaid, c.PaymentStatus)
				assert.Equal(t, "Acme", c.Name)
			},
		},
		{
			name:    "cliente inexistente",
			request: &domain.UpdateCustomerRequest{ID: "c1", Notes: ptr("x")},
			setup: func() {
				mockRepo.EXPECT().GetByID(ctx, "c1").Return(nil, nil)
			},
			validate: func(t *testing.T, c *domain.Customer, err error) {
				assert.ErrorIs(t, err, crm.ErrNotFound)
			},
		},
		{
			name:    "requisição vazia",
			request: &domain.UpdateCustomerRequest{ID: "c1"},
			setup:   func() {},
			validate: func(t *testing.T, c *domain.Customer, err error) {
				assert.ErrorIs(t, err, crm.ErrNothingToUpdate)
			},
		},
		{
			name:    "erro do banco não altera nada",
			request: &domain.UpdateCustomerRequest{ID: "c1", Satisfaction: ptr(8)},
			setup: func() {
				mockRepo.EXPECT().GetByID(ctx, "c1").Return(current(), nil)
				mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, c *domain.Customer, err error) {
				assert.Equal(t, apiErrors.ErrDatabaseOperation, crm.CodeOf(err))
				assert.Nil(t, c)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			c, err := service.Update(ctx, tt.request)
			tt.validate(t, c, err)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRepository(ctrl)
	mockAudit := auditmocks.NewMockRecorder(ctrl)
	service := NewService(mockRepo, mockAudit)

	ctx := context.Background()
	customer := &domain.Customer{ID: "c1", Name: "Acme"}

	mockRepo.EXPECT().GetByID(ctx, "c1").Return(customer, nil)
	mockRepo.EXPECT().Delete(ctx, "c1").Return(true, nil)
	mockAudit.EXPECT().Record(ctx, domain.AuditDelete, domain.TableCustomers, "c1", customer, nil)

	require.NoError(t, service.Delete(ctx, "c1"))
}

func ptr[T any](v T) *T { return &v }
