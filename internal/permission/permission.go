// Package permission concentra o mapeamento papel → capacidades.
// Nenhuma outra parte do código decide permissões por papel.
package permission

import "github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"

type Capability string

const (
	ViewCustomers        Capability = "view_customers"
	CreateCustomers      Capability = "create_customers"
	EditCustomers        Capability = "edit_customers"
	DeleteCustomers      Capability = "delete_customers"
	ViewAppointments     Capability = "view_appointments"
	ManageAppointments   Capability = "manage_appointments"
	MovePipeline         Capability = "move_pipeline"
	ManageRevenues       Capability = "manage_revenues"
	ManageExpenses       Capability = "manage_expenses"
	ViewTeam             Capability = "view_team"
	ManageTeam           Capability = "manage_team"
	ViewTodos            Capability = "view_todos"
	CreateTodos          Capability = "create_todos"
	CompleteTodos        Capability = "complete_todos"
	ViewHotLeads         Capability = "view_hot_leads"
	ManageHotLeads       Capability = "manage_hot_leads"
	ViewAuditLogs        Capability = "view_audit_logs"
	ClearAuditLogs       Capability = "clear_audit_logs"
	ManageSettings       Capability = "manage_settings"
	ViewTeamNotice       Capability = "view_team_notice"
	ViewDashboardStats   Capability = "view_dashboard_stats"
	ViewOwnEarnings      Capability = "view_own_earnings"
	ViewCustomerPortal   Capability = "view_customer_portal"
	MoveOwnAppointments  Capability = "move_own_appointments"
	RunMaintenanceJobs   Capability = "run_maintenance_jobs"
	ManageMemberFinances Capability = "manage_member_finances"
)

// Set é o conjunto de capacidades de um papel
type Set map[Capability]struct{}

func newSet(caps ...Capability) Set {
	set := make(Set, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

func (s Set) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

var memberCapabilities = []Capability{
	ViewCustomers,
	EditCustomers,
	ViewAppointments,
	ManageAppointments,
	MovePipeline,
	ViewTeam,
	ViewTodos,
	CompleteTodos,
	ViewHotLeads,
	ManageHotLeads,
	ViewTeamNotice,
	ViewOwnEarnings,
}

var adminOnlyCapabilities = []Capability{
	CreateCustomers,
	DeleteCustomers,
	ManageRevenues,
	ManageExpenses,
	ManageTeam,
	CreateTodos,
	ViewAuditLogs,
	ClearAuditLogs,
	ManageSettings,
	ViewDashboardStats,
	ViewCustomerPortal,
	RunMaintenanceJobs,
	ManageMemberFinances,
}

var capabilities = map[domain.Role]Set{
	domain.RoleAdmin:    newSet(append(append([]Capability{}, memberCapabilities...), adminOnlyCapabilities...)...),
	domain.RoleMember:   newSet(memberCapabilities...),
	domain.RoleCustomer: newSet(ViewCustomerPortal, MoveOwnAppointments),
}

// For devolve as capacidades de um papel; papel desconhecido não tem nenhuma
func For(role domain.Role) Set {
	if set, ok := capabilities[role]; ok {
		return set
	}
	return Set{}
}

// Allowed é falso para qualquer capacidade quando não há usuário
func Allowed(claims *domain.Claims, c Capability) bool {
	if claims == nil {
		return false
	}
	return For(claims.UserRole).Has(c)
}

func IsAdmin(claims *domain.Claims) bool {
	return claims != nil && claims.UserRole == domain.RoleAdmin
}

func CanViewCustomers(claims *domain.Claims) bool      { return Allowed(claims, ViewCustomers) }
func CanCreateCustomers(claims *domain.Claims) bool    { return Allowed(claims, CreateCustomers) }
func CanEditCustomers(claims *domain.Claims) bool      { return Allowed(claims, EditCustomers) }
func CanDeleteCustomers(claims *domain.Claims) bool    { return Allowed(claims, DeleteCustomers) }
func CanViewAppointments(claims *domain.Claims) bool   { return Allowed(claims, ViewAppointments) }
func CanManageAppointments(claims *domain.Claims) bool { return Allowed(claims, ManageAppointments) }
func CanMovePipeline(claims *domain.Claims) bool       { return Allowed(claims, MovePipeline) }
func CanManageRevenues(claims *domain.Claims) bool     { return Allowed(claims, ManageRevenues) }
func CanManageExpenses(claims *domain.Claims) bool     { return Allowed(claims, ManageExpenses) }
func CanViewTeam(claims *domain.Claims) bool           { return Allowed(claims, ViewTeam) }
func CanManageTeam(claims *domain.Claims) bool         { return Allowed(claims, ManageTeam) }
func CanViewTodos(claims *domain.Claims) bool          { return Allowed(claims, ViewTodos) }
func CanCreateTodos(claims *domain.Claims) bool        { return Allowed(claims, CreateTodos) }
func CanCompleteTodos(claims *domain.Claims) bool      { return Allowed(claims, CompleteTodos) }
func CanViewHotLeads(claims *domain.Claims) bool       { return Allowed(claims, ViewHotLeads) }
func CanManageHotLeads(claims *domain.Claims) bool     { return Allowed(claims, ManageHotLeads) }
func CanViewAuditLogs(claims *domain.Claims) bool      { return Allowed(claims, ViewAuditLogs) }
func CanClearAuditLogs(claims *domain.Claims) bool     { return Allowed(claims, ClearAuditLogs) }
func CanManageSettings(claims *domain.Claims) bool     { return Allowed(claims, ManageSettings) }
func CanViewTeamNotice(claims *domain.Claims) bool     { return Allowed(claims, ViewTeamNotice) }
func CanViewDashboardStats(claims *domain.Claims) bool { return Allowed(claims, ViewDashboardStats) }
func CanViewOwnEarnings(claims *domain.Claims) bool    { return Allowed(claims, ViewOwnEarnings) }

func CanViewCustomerPortal(claims *domain.Claims) bool {
	return Allowed(claims, ViewCustomerPortal)
}

// CanMoveOwnAppointments cobre o portal do cliente, restrito aos compromissos do próprio cliente
func CanMoveOwnAppointments(claims *domain.Claims) bool {
	return Allowed(claims, MoveOwnAppointments)
}
