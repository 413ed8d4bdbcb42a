package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository/mocks"
	auditmocks "github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit/mocks"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/config"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, defaultRate float64) (*mocks.MockSettingRepository, *auditmocks.MockRecorder, SettingService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingRepository(ctrl)
	rec := auditmocks.NewMockRecorder(ctrl)
	cfg := &config.Config{Reporting: config.Reporting{DefaultTaxRate: defaultRate}}
	return repo, rec, NewService(repo, rec, cfg)
}

func TestService_TaxRate(t *testing.T) {
	tests := []struct {
		name        string
		defaultRate float64
		stored      *domain.Setting
		storeErr    error
		expected    float64
		expectErr   bool
	}{
		{name: "sem valor usa padrão da configuração", defaultRate: 25, expected: 25},
		{name: "padrão zero usa 19", defaultRate: 0, expected: 19},
		{name: "valor gravado", defaultRate: 19, stored: &domain.Setting{Key: domain.SettingTaxRate, Value: "30"}, expected: 30},
		{name: "valor com vírgula", defaultRate: 19, stored: &domain.Setting{Key: domain.SettingTaxRate, Value: "7,5"}, expected: 7.5},
		{name: "valor inválido usa padrão", defaultRate: 19, stored: &domain.Setting{Key: domain.SettingTaxRate, Value: "abc"}, expected: 19},
		{name: "erro do banco", defaultRate: 19, storeErr: errors.New("timeout"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, service := newTestService(t, tt.defaultRate)
			repo.EXPECT().Get(gomock.Any(), domain.SettingTaxRate).Return(tt.stored, tt.storeErr)

			rate, err := service.TaxRate(context.Background())
			if tt.expectErr {
				assert.ErrorIs(t, err, crm.ErrDatabaseOperation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rate)
		})
	}
}

func TestService_TeamNotice(t *testing.T) {
	repo, rec, service := newTestService(t, 19)

	repo.EXPECT().Get(gomock.Any(), domain.SettingTeamNotice).Return(nil, nil)
	repo.EXPECT().Upsert(gomock.Any(), domain.SettingTeamNotice, "Teammeeting Freitag").
		Return(&domain.Setting{Key: domain.SettingTeamNotice, Value: "Teammeeting Freitag"}, nil)
	rec.EXPECT().Record(gomock.Any(), domain.AuditInsert, domain.TableSettings, domain.SettingTeamNotice, nil, gomock.Any())

	old := &domain.Setting{Key: domain.SettingTeamNoticeVisible, Value: "false"}
	repo.EXPECT().Get(gomock.Any(), domain.SettingTeamNoticeVisible).Return(old, nil)
	repo.EXPECT().Upsert(gomock.Any(), domain.SettingTeamNoticeVisible, "true").
		Return(&domain.Setting{Key: domain.SettingTeamNoticeVisible, Value: "true"}, nil)
	rec.EXPECT().Record(gomock.Any(), domain.AuditUpdate, domain.TableSettings, domain.SettingTeamNoticeVisible, old, gomock.Any())

	notice, err := service.SetTeamNotice(context.Background(), &domain.TeamNotice{Text: "Teammeeting Freitag", Visible: true})
	require.NoError(t, err)
	assert.True(t, notice.Visible)

	repo.EXPECT().Get(gomock.Any(), domain.SettingTeamNotice).
		Return(&domain.Setting{Key: domain.SettingTeamNotice, Value: "Teammeeting Freitag"}, nil)
	repo.EXPECT().Get(gomock.Any(), domain.SettingTeamNoticeVisible).
		Return(&domain.Setting{Key: domain.SettingTeamNoticeVisible, Value: "true"}, nil)

	notice, err = service.TeamNotice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Teammeeting Freitag", notice.Text)
	assert.True(t, notice.Visible)
}

func TestService_UpsertValidation(t *testing.T) {
	_, _, service := newTestService(t, 19)

	_, err := service.Upsert(context.Background(), &domain.UpsertSettingRequest{Key: " "})
	assert.ErrorIs(t, err, crm.ErrMissingRequiredData)

	_, err = service.Upsert(context.Background(), &domain.UpsertSettingRequest{Key: domain.SettingTaxRate, Value: "150"})
	assert.ErrorIs(t, err, crm.ErrInvalidAmount)

	_, err = service.Upsert(context.Background(), &domain.UpsertSettingRequest{Key: domain.SettingTeamNoticeVisible, Value: "vielleicht"})
	assert.ErrorIs(t, err, crm.ErrInvalidValue)
}
