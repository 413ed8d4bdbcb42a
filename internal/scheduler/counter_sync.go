package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/config"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// ErrSyncInProgress é devolvido quando já existe uma reconciliação rodando
var ErrSyncInProgress = errors.New("reconciliação de contadores já em andamento")

const counterSyncTimeout = 5 * time.Minute

// CounterSyncConfig representa a configuração do agendador de contadores
type CounterSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CounterSyncService recalcula os contadores de compromissos de clientes e membros
type CounterSyncService struct {
	scheduler           *gocron.Scheduler
	config              CounterSyncConfig
	counterRepo         repository.CounterRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *repository.CounterSyncResult
	lastError           string
}

func NewCounterSyncService(counterRepo repository.CounterRepository, appConfig *config.Config) *CounterSyncService {
	syncConfig := CounterSyncConfig{
		CronSchedule: appConfig.CounterSync.CronSchedule,
		SyncEnabled:  appConfig.CounterSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de contadores carregada")

	return &CounterSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		counterRepo: counterRepo,
	}
}

// Start agenda o job; com a sincronização desabilitada só o gatilho manual funciona
func (s *CounterSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconciliação de contadores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconciliação de contadores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), counterSyncTimeout)
		defer cancel()

		if _, err := s.sync(jobCtx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("Erro na reconciliação agendada de contadores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de contadores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação de contadores")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync executa a reconciliação imediatamente e devolve o resultado
func (s *CounterSyncService) TriggerManualSync(ctx context.Context) (*repository.CounterSyncResult, error) {
	logrus.Info("Iniciando reconciliação manual de contadores")
	return s.sync(ctx)
}

func (s *CounterSyncService) sync(ctx context.Context) (*repository.CounterSyncResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de contadores já em andamento, ignorando")
		return nil, ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	result, err := s.counterRepo.Reconcile(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		return nil, err
	}

	s.lastError = ""
	s.lastResult = result
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":             time.Since(startTime).String(),
		"customers_updated":    result.CustomersUpdated,
		"team_members_updated": result.TeamMembersUpdated,
	}).Info("Reconciliação de contadores concluída")

	return result, nil
}

// GetStatus retorna o status atual do agendador
func (s *CounterSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastResult != nil {
		status["last_result"] = s.lastResult
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}
	return status
}
