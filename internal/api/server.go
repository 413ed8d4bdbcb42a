package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/api/handler"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/api/handler/router"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/config"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/appointments"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/authenticating"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/bookkeeping"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/customers"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/dashboard"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/leads"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/settings"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/team"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/todos"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/middleware"
)

// Services reúne tudo o que as rotas precisam
type Services struct {
	Authenticator authenticating.Authenticator
	Customers     customers.CustomerService
	Appointments  appointments.AppointmentService
	Team          team.TeamService
	Bookkeeping   bookkeeping.BookkeepingService
	Todos         todos.TodoService
	HotLeads      leads.HotLeadService
	Settings      settings.SettingService
	Dashboard     dashboard.DashboardService
	Audit         audit.Recorder
	CounterSync   handler.CounterSyncer
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("autenticador não configurado")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta a cadeia de middlewares globais sobre o router
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Customers(services.Customers)...),
		router.WithRoutes(handler.Appointments(services.Appointments)...),
		router.WithRoutes(handler.Team(services.Team)...),
		router.WithRoutes(handler.Bookkeeping(services.Bookkeeping)...),
		router.WithRoutes(handler.Todos(services.Todos)...),
		router.WithRoutes(handler.HotLeads(services.HotLeads)...),
		router.WithRoutes(handler.AuditLogs(services.Audit)...),
		router.WithRoutes(handler.Settings(services.Settings)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard, services.Customers, services.Appointments)...),
		router.WithRoutes(handler.CronJobs(services.CounterSync)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
