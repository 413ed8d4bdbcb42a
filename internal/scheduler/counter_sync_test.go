package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository/mocks"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCounterSyncService(t *testing.T, enabled bool) (*CounterSyncService, *mocks.MockCounterRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCounterRepository(ctrl)
	cfg := &config.Config{CounterSync: config.CounterSync{CronSchedule: "30 2 * * *", Enabled: enabled}}
	return NewCounterSyncService(repo, cfg), repo
}

func TestCounterSyncService_TriggerManualSync(t *testing.T) {
	service, repo := newCounterSyncService(t, false)

	repo.EXPECT().Reconcile(gomock.Any()).Return(&repository.CounterSyncResult{CustomersUpdated: 3, TeamMembersUpdated: 1}, nil)

	result, err := service.TriggerManualSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.CustomersUpdated)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, result, status["last_result"])
	assert.NotContains(t, status, "last_error")
}

func TestCounterSyncService_FailureKeepsPreviousResult(t *testing.T) {
	service, repo := newCounterSyncService(t, false)

	first := &repository.CounterSyncResult{CustomersUpdated: 1}
	repo.EXPECT().Reconcile(gomock.Any()).Return(first, nil)
	repo.EXPECT().Reconcile(gomock.Any()).Return(nil, errors.New("deadlock detected"))

	_, err := service.TriggerManualSync(context.Background())
	require.NoError(t, err)

	_, err = service.TriggerManualSync(context.Background())
	require.Error(t, err)

	status := service.GetStatus()
	assert.Equal(t, first, status["last_result"])
	assert.Equal(t, "deadlock detected", status["last_error"])
}

func TestCounterSyncService_RejectsConcurrentRun(t *testing.T) {
	service, repo := newCounterSyncService(t, false)

	started := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().Reconcile(gomock.Any()).DoAndReturn(func(context.Context) (*repository.CounterSyncResult, error) {
		close(started)
		<-release
		return &repository.CounterSyncResult{}, nil
	})

	done := make(chan error)
	go func() {
		_, err := service.TriggerManualSync(context.Background())
		done <- err
	}()

	<-started
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	_, err := service.TriggerManualSync(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestCounterSyncService_StartDisabled(t *testing.T) {
	service, _ := newCounterSyncService(t, false)
	assert.NoError(t, service.Start(context.Background()))
}

func TestCounterSyncService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{CounterSync: config.CounterSync{CronSchedule: "não é cron", Enabled: true}}
	service := NewCounterSyncService(mocks.NewMockCounterRepository(ctrl), cfg)

	assert.Error(t, service.Start(context.Background()))
}
