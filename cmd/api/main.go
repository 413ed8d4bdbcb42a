package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/migration"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/api"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/config"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/scheduler"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/appointments"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/authenticating"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/bookkeeping"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/customers"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/dashboard"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/leads"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/settings"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/team"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/todos"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Apply(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar schema")
		}
	}

	customerRepo := repository.NewCustomerRepository(pgConn)
	appointmentRepo := repository.NewAppointmentRepository(pgConn)
	memberRepo := repository.NewTeamMemberRepository(pgConn)
	ledgerRepo := repository.NewMemberLedgerRepository(pgConn)
	revenueRepo := repository.NewRevenueRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	todoRepo := repository.NewTodoRepository(pgConn)
	leadRepo := repository.NewHotLeadRepository(pgConn)
	settingRepo := repository.NewSettingRepository(pgConn)
	counterRepo := repository.NewCounterRepository(pgConn)

	recorder := audit.NewService(repository.NewAuditLogRepository(pgConn))

	settingService := settings.NewService(settingRepo, recorder, cfg)
	customerService := customers.NewService(customerRepo, recorder)
	appointmentService := appointments.NewService(appointmentRepo, customerRepo, memberRepo, recorder)

	counterSyncService := scheduler.NewCounterSyncService(counterRepo, cfg)
	if err := counterSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação de contadores")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticating.NewService(memberRepo, recorder, cfg),
		Customers:     customerService,
		Appointments:  appointmentService,
		Team:          team.NewService(memberRepo, ledgerRepo, customerRepo, recorder),
		Bookkeeping:   bookkeeping.NewService(revenueRepo, expenseRepo, recorder),
		Todos:         todos.NewService(todoRepo, recorder),
		HotLeads:      leads.NewService(leadRepo, recorder),
		Settings:      settingService,
		Dashboard: dashboard.NewService(
			revenueRepo,
			expenseRepo,
			appointmentRepo,
			customerRepo,
			memberRepo,
			ledgerRepo,
			settingService,
		),
		Audit:       recorder,
		CounterSync: counterSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
