package leads

import (
	"context"
	"errors"
	"testing"

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

func TestService_Promote(t *testing.T) {
	lead := &domain.HotLead{
		ID:       "lead1",
		Name:     "Müller GmbH",
		Contact:  "Frau Müller",
		Email:    "info@mueller.de",
		Priority: domain.PriorityHigh,
		Notes:    "Messe",
	}

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockHotLeadRepository, rec *auditmocks.MockRecorder)
		validate func(t *testing.T, resp *domain.PromoteHotLeadResponse, err error)
	}{
		{
			name: "lead vira cliente com valores padrão",
			setup: func(repo *mocks.MockHotLeadRepository, rec *auditmocks.MockRecorder) {
				repo.EXPECT().GetByID(gomock.Any(), "lead1").Return(lead, nil)
				repo.EXPECT().Promote(gomock.Any(), lead, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *domain.HotLead, customer *domain.Customer) (*domain.Customer, error) {
						customer.ID = "c1"
						return customer, nil
					})
				rec.EXPECT().Record(gomock.Any(), domain.AuditInsert, domain.TableCustomers, "c1", nil, gomock.Any())
				rec.EXPECT().Record(gomock.Any(), domain.AuditDelete, domain.TableHotLeads, "lead1", lead, nil)
			},
			validate: func(t *testing.T, resp *domain.PromoteHotLeadResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "lead1", resp.LeadID)
				assert.Equal(t, "Müller GmbH", resp.Customer.Name)
				assert.Equal(t, domain.PriorityHigh, resp.Customer.Priority)
				assert.Equal(t, domain.PaymentPending, resp.Customer.PaymentStatus)
				assert.Equal(t, domain.StagePending, resp.Customer.PipelineStage)
				assert.Equal(t, domain.DefaultSatisfaction, resp.Customer.Satisfaction)
				assert.True(t, resp.Customer.IsActive)
				assert.Zero(t, resp.Customer.BookedAppointments)
				require.NotNil(t, resp.Customer.DashboardName)
				assert.Regexp(t, "^m-ller-gmbh-[a-z0-9]{8}$", *resp.Customer.DashboardName)
			},
		},
		{
			name: "falha na transação mantém o lead",
			setup: func(repo *mocks.MockHotLeadRepository, rec *auditmocks.MockRecorder) {
				repo.EXPECT().GetByID(gomock.Any(), "lead1").Return(lead, nil)
				repo.EXPECT().Promote(gomock.Any(), lead, gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, resp *domain.PromoteHotLeadResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, crm.ErrDatabaseOperation)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, crm.CodeOf(err))
			},
		},
		{
			name: "lead removido durante a conversão",
			setup: func(repo *mocks.MockHotLeadRepository, rec *auditmocks.MockRecorder) {
				repo.EXPECT().GetByID(gomock.Any(), "lead1").Return(lead, nil)
				repo.EXPECT().Promote(gomock.Any(), lead, gomock.Any()).Return(nil, repository.ErrLeadGone)
			},
			validate: func(t *testing.T, resp *domain.PromoteHotLeadResponse, err error) {
				assert.ErrorIs(t, err, crm.ErrNotFound)
			},
		},
		{
			name: "lead inexistente",
			setup: func(repo *mocks.MockHotLeadRepository, rec *auditmocks.MockRecorder) {
				repo.EXPECT().GetByID(gomock.Any(), "lead1").Return(nil, nil)
			},
			validate: func(t *testing.T, resp *domain.PromoteHotLeadResponse, err error) {
				assert.ErrorIs(t, err, crm.ErrNotFound)
				assert.Equal(t, apiErrors.ErrResourceNotFound, crm.CodeOf(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockHotLeadRepository(ctrl)
			rec := auditmocks.NewMockRecorder(ctrl)
			tt.setup(repo, rec)

			resp, err := NewService(repo, rec).Promote(context.Background(), "lead1")
			tt.validate(t, resp, err)
		})
	}
}

func TestService_CreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockHotLeadRepository(ctrl)
	rec := auditmocks.NewMockRecorder(ctrl)
	service := NewService(repo, rec)

	_, err := service.Create(context.Background(), &domain.CreateHotLeadRequest{Name: "  "})
	assert.ErrorIs(t, err, crm.ErrMissingRequiredData)

	_, err = service.Create(context.Background(), &domain.CreateHotLeadRequest{Name: "Lead", Priority: "sofort"})
	assert.ErrorIs(t, err, crm.ErrInvalidValue)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, lead *domain.HotLead) (*domain.HotLead, error) {
			lead.ID = "lead2"
			return lead, nil
		})
	rec.EXPECT().Record(gomock.Any(), domain.AuditInsert, domain.TableHotLeads, "lead2", nil, gomock.Any())

	lead, err := service.Create(context.Background(), &domain.CreateHotLeadRequest{Name: "Lead"})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, lead.Priority)
}
