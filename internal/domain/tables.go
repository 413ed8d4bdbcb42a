package domain

// Nomes das tabelas, usados também nos registros de auditoria
const (
	TableCustomers          = "customers"
	TableAppointments       = "appointments"
	TableTeamMembers        = "team_members"
	TableTeamMemberEarnings = "team_member_earnings"
	TableTeamMemberExpenses = "team_member_expenses"
	TableAppointmentHistory = "appointment_history"
	TableRevenues           = "revenues"
	TableExpenses           = "expenses"
	TableTodos              = "todos"
	TableHotLeads           = "hot_leads"
	TableAuditLogs          = "audit_logs"
	TableSettings           = "settings"
)

// DeletionPolicy descreve o contrato de exclusão de cada entidade
type DeletionPolicy int

const (
	// DeletionNonCascading remove apenas a linha; dependentes ficam órfãos
	DeletionNonCascading DeletionPolicy = iota
	// DeletionCascade remove os dependentes, em ordem, antes da linha
	DeletionCascade
)

func (p DeletionPolicy) String() string {
	if p == DeletionCascade {
		return "cascade"
	}
	return "non_cascading"
}

var deletionPolicies = map[string]DeletionPolicy{
	TableCustomers:   DeletionNonCascading,
	TableTeamMembers: DeletionCascade,
}

// TeamMemberCascadeTables é a ordem de exclusão dos dependentes de um membro
var TeamMemberCascadeTables = []string{
	TableAppointments,
	TableTeamMemberEarnings,
	TableTeamMemberExpenses,
	TableAppointmentHistory,
}

func DeletionPolicyFor(table string) DeletionPolicy {
	if policy, ok := deletionPolicies[table]; ok {
		return policy
	}
	return DeletionNonCascading
}
