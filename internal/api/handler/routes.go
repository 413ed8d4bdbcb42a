package handler

import (
	"net/http"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/api/handler/router"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/permission"
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

func requires(caps ...permission.Capability) Middlewares {
	return Middlewares{middleware.RequireCapability(caps...)}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Authentication não exige capacidade: qualquer sessão válida acessa os próprios dados
func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/me/password",
			Method:  http.MethodPut,
			Handler: ChangePassword(service),
		},
		{
			Path:        "/v1/team/:id/reset-password",
			Method:      http.MethodPost,
			Handler:     ResetPassword(service),
			Middlewares: requires(permission.ManageTeam),
		},
	}
}

func Customers(service customers.CustomerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(service),
			Middlewares: requires(permission.ViewCustomers),
		},
		{
			Path:        "/v1/customers",
			Method:      http.MethodPost,
			Handler:     CreateCustomer(service),
			Middlewares: requires(permission.CreateCustomers),
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodGet,
			Handler:     GetCustomer(service),
			Middlewares: requires(permission.ViewCustomers),
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCustomer(service),
			Middlewares: requires(permission.EditCustomers),
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCustomer(service),
			Middlewares: requires(permission.DeleteCustomers),
		},
	}
}

func Appointments(service appointments.AppointmentService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/appointments",
			Method:      http.MethodGet,
			Handler:     ListAppointments(service),
			Middlewares: requires(permission.ViewAppointments),
		},
		{
			Path:        "/v1/appointments",
			Method:      http.MethodPost,
			Handler:     CreateAppointment(service),
			Middlewares: requires(permission.ManageAppointments),
		},
		{
			Path:        "/v1/appointments/:id",
			Method:      http.MethodGet,
			Handler:     GetAppointment(service),
			Middlewares: requires(permission.ViewAppointments),
		},
		{
			Path:        "/v1/appointments/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAppointment(service),
			Middlewares: requires(permission.ManageAppointments),
		},
		{
			Path:        "/v1/appointments/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAppointment(service),
			Middlewares: requires(permission.ManageAppointments),
		},
		{
			Path:        "/v1/pipeline",
			Method:      http.MethodGet,
			Handler:     GetPipelineBoard(service),
			Middlewares: requires(permission.ViewAppointments),
		},
		{
			Path:        "/v1/pipeline/move",
			Method:      http.MethodPost,
			Handler:     MovePipelineStage(service),
			Middlewares: requires(permission.MovePipeline),
		},
	}
}

func Team(service team.TeamService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/team",
			Method:      http.MethodGet,
			Handler:     ListTeamMembers(service),
			Middlewares: requires(permission.ViewTeam),
		},
		{
			Path:        "/v1/team",
			Method:      http.MethodPost,
			Handler:     CreateTeamMember(service),
			Middlewares: requires(permission.ManageTeam),
		},
		{
			Path:        "/v1/team/:id",
			Method:      http.MethodGet,
			Handler:     GetTeamMember(service),
			Middlewares: requires(permission.ViewTeam),
		},
		{
			Path:        "/v1/team/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTeamMember(service),
			Middlewares: requires(permission.ManageTeam),
		},
		{
			Path:        "/v1/team/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTeamMember(service),
			Middlewares: requires(permission.ManageTeam),
		},
		{
			Path:        "/v1/team/:id/earnings",
			Method:      http.MethodGet,
			Handler:     ListMemberEarnings(service),
			Middlewares: requires(permission.ManageMemberFinances),
		},
		{
			Path:        "/v1/team/:id/earnings",
			Method:      http.MethodPost,
			Handler:     AddMemberEarning(service),
			Middlewares: requires(permission.ManageMemberFinances),
		},
		{
			Path:        "/v1/team/:id/expenses",
			Method:      http.MethodGet,
			Handler:     ListMemberExpenses(service),
			Middlewares: requires(permission.ManageMemberFinances),
		},
		{
			Path:        "/v1/team/:id/expenses",
			Method:      http.MethodPost,
			Handler:     AddMemberExpense(service),
			Middlewares: requires(permission.ManageMemberFinances),
		},
		{
			Path:        "/v1/team/:id/finance",
			Method:      http.MethodGet,
			Handler:     GetMemberFinance(service),
			Middlewares: requires(permission.ManageMemberFinances),
		},
	}
}

func Bookkeeping(service bookkeeping.BookkeepingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/revenues",
			Method:      http.MethodGet,
			Handler:     ListRevenues(service),
			Middlewares: requires(permission.ManageRevenues),
		},
		{
			Path:        "/v1/revenues",
			Method:      http.MethodPost,
			Handler:     AddRevenue(service),
			Middlewares: requires(permission.ManageRevenues),
		},
		{
			Path:        "/v1/revenues/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteRevenue(service),
			Middlewares: requires(permission.ManageRevenues),
		},
		{
			Path:        "/v1/expenses",
			Method:      http.MethodGet,
			Handler:     ListExpenses(service),
			Middlewares: requires(permission.ManageExpenses),
		},
		{
			Path:        "/v1/expenses",
			Method:      http.MethodPost,
			Handler:     AddExpense(service),
			Middlewares: requires(permission.ManageExpenses),
		},
		{
			Path:        "/v1/expenses/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteExpense(service),
			Middlewares: requires(permission.ManageExpenses),
		},
	}
}

// Todos separa criar/editar (admin) de concluir (admin e mitarbeiter);
// o serviço refaz a checagem para o PUT parcial que só altera "completed"
func Todos(service todos.TodoService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/todos",
			Method:      http.MethodGet,
			Handler:     ListTodos(service),
			Middlewares: requires(permission.ViewTodos),
		},
		{
			Path:        "/v1/todos",
			Method:      http.MethodPost,
			Handler:     CreateTodo(service),
			Middlewares: requires(permission.CreateTodos),
		},
		{
			Path:        "/v1/todos/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTodo(service),
			Middlewares: requires(permission.CreateTodos, permission.CompleteTodos),
		},
		{
			Path:        "/v1/todos/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTodo(service),
			Middlewares: requires(permission.CreateTodos),
		},
		{
			Path:        "/v1/todos/:id/complete",
			Method:      http.MethodPost,
			Handler:     CompleteTodo(service),
			Middlewares: requires(permission.CompleteTodos),
		},
	}
}

func HotLeads(service leads.HotLeadService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/hot-leads",
			Method:      http.MethodGet,
			Handler:     ListHotLeads(service),
			Middlewares: requires(permission.ViewHotLeads),
		},
		{
			Path:        "/v1/hot-leads",
			Method:      http.MethodPost,
			Handler:     CreateHotLead(service),
			Middlewares: requires(permission.ManageHotLeads),
		},
		{
			Path:        "/v1/hot-leads/:id",
			Method:      http.MethodGet,
			Handler:     GetHotLead(service),
			Middlewares: requires(permission.ViewHotLeads),
		},
		{
			Path:        "/v1/hot-leads/:id",
			Method:      http.MethodPut,
			Handler:     UpdateHotLead(service),
			Middlewares: requires(permission.ManageHotLeads),
		},
		{
			Path:        "/v1/hot-leads/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteHotLead(service),
			Middlewares: requires(permission.ManageHotLeads),
		},
		{
			Path:        "/v1/hot-leads/:id/promote",
			Method:      http.MethodPost,
			Handler:     PromoteHotLead(service),
			Middlewares: requires(permission.ManageHotLeads),
		},
	}
}

func AuditLogs(recorder audit.Recorder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/audit-logs",
			Method:      http.MethodGet,
			Handler:     ListAuditLogs(recorder),
			Middlewares: requires(permission.ViewAuditLogs),
		},
		{
			Path:        "/v1/audit-logs",
			Method:      http.MethodDelete,
			Handler:     ClearAuditLogs(recorder),
			Middlewares: requires(permission.ClearAuditLogs),
		},
	}
}

func Settings(service settings.SettingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings",
			Method:      http.MethodGet,
			Handler:     ListSettings(service),
			Middlewares: requires(permission.ManageSettings),
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodPut,
			Handler:     UpsertSetting(service),
			Middlewares: requires(permission.ManageSettings),
		},
		{
			Path:        "/v1/team-notice",
			Method:      http.MethodGet,
			Handler:     GetTeamNotice(service),
			Middlewares: requires(permission.ViewTeamNotice),
		},
		{
			Path:        "/v1/team-notice",
			Method:      http.MethodPut,
			Handler:     SetTeamNotice(service),
			Middlewares: requires(permission.ManageSettings),
		},
	}
}

func Dashboard(
	service dashboard.DashboardService,
	customerService customers.CustomerService,
	appointmentService appointments.AppointmentService,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/stats",
			Method:      http.MethodGet,
			Handler:     GetDashboardStats(service),
			Middlewares: requires(permission.ViewDashboardStats),
		},
		{
			Path:        "/v1/dashboard/me",
			Method:      http.MethodGet,
			Handler:     GetMemberDashboard(service),
			Middlewares: requires(permission.ViewOwnEarnings),
		},
		{
			Path:        "/v1/portal",
			Method:      http.MethodGet,
			Handler:     GetCustomerPortal(service),
			Middlewares: requires(permission.ViewCustomerPortal),
		},
		{
			Path:        "/v1/portal/move",
			Method:      http.MethodPost,
			Handler:     MovePortalAppointment(customerService, appointmentService),
			Middlewares: requires(permission.MoveOwnAppointments),
		},
	}
}

func CronJobs(syncer CounterSyncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/counters/run",
			Method:      http.MethodPost,
			Handler:     RunCounterSync(syncer),
			Middlewares: requires(permission.RunMaintenanceJobs),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(syncer),
			Middlewares: requires(permission.RunMaintenanceJobs),
		},
	}
}
