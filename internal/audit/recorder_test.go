package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository/mocks"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditLogRepository(ctrl)
	service := NewService(mockRepo)

	ctx := domain.WithClaims(context.Background(), &domain.Claims{UserID: "u1", UserRole: domain.RoleAdmin})

	tests := []struct {
		name      string
		oldValues any
		newValues any
		repoErr   error
		validate  func(t *testing.T, entry *domain.AuditLogEntry)
	}{
		{
			name:      "insert com novos valores",
			newValues: map[string]string{"name": "Acme"},
			validate: func(t *testing.T, entry *domain.AuditLogEntry) {
				assert.Equal(t, domain.AuditInsert, entry.Action)
				assert.Equal(t, domain.TableCustomers, entry.TableName)
				require.NotNil(t, entry.RecordID)
				assert.Equal(t, "c1", *entry.RecordID)
				require.NotNil(t, entry.UserID)
				assert.Equal(t, "u1", *entry.UserID)
				assert.Nil(t, entry.OldValues)
				assert.JSONEq(t, `{"name":"Acme"}`, string(entry.NewValues))
			},
		},
		{
			name:      "falha no repositório não propaga",
			oldValues: map[string]string{"result": "termin_ausstehend"},
			newValues: map[string]string{"result": "termin_abgeschlossen"},
			repoErr:   errors.New("banco indisponível"),
			validate: func(t *testing.T, entry *domain.AuditLogEntry) {
				assert.JSONEq(t, `{"result":"termin_ausstehend"}`, string(entry.OldValues))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *domain.AuditLogEntry
			mockRepo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, entry *domain.AuditLogEntry) error {
					captured = entry
					return tt.repoErr
				})

			service.Record(ctx, domain.AuditInsert, domain.TableCustomers, "c1", tt.oldValues, tt.newValues)

			require.NotNil(t, captured)
			tt.validate(t, captured)
		})
	}
}

func TestService_RecordWithoutUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditLogRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.AuditLogEntry) error {
			assert.Nil(t, entry.UserID)
			assert.Nil(t, entry.RecordID)
			return nil
		})

	service.Record(context.Background(), domain.AuditLogin, domain.TableTeamMembers, "", nil, nil)
}

func TestService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditLogRepository(ctrl)
	service := NewService(mockRepo)

	expected := []*domain.AuditLogEntry{{ID: "a1", UserName: "Anna"}}
	mockRepo.EXPECT().ListRecent(gomock.Any(), 100).Return(expected, nil)

	entries, err := service.Recent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditLogRepository(ctrl)
	service := NewService(mockRepo)

	ctx := domain.WithClaims(context.Background(), &domain.Claims{UserID: "admin-1", UserRole: domain.RoleAdmin})

	mockRepo.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, marker repository.ClearMarker) (int, error) {
			entry := marker(7)
			assert.Equal(t, domain.AuditClearLogs, entry.Action)
			assert.Equal(t, domain.TableAuditLogs, entry.TableName)
			require.NotNil(t, entry.UserID)
			assert.Equal(t, "admin-1", *entry.UserID)
			assert.JSONEq(t, `{"deleted_count":7}`, string(entry.NewValues))
			return 7, nil
		})

	deleted, err := service.Clear(ctx)

	require.NoError(t, err)
	assert.Equal(t, 7, deleted)
}
