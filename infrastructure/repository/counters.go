package repository

import (
	"context"
	"database/sql"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

// CounterSyncResult informa quantas linhas tiveram contadores corrigidos
type CounterSyncResult struct {
	CustomersUpdated   int64 `json:"customers_updated"`
	TeamMembersUpdated int64 `json:"team_members_updated"`
}

// CounterRepository recalcula os contadores desnormalizados a partir dos compromissos
type CounterRepository interface {
	Reconcile(ctx context.Context) (*CounterSyncResult, error)
}

type counterRepository struct {
	conn *postgres.Connection
}

func NewCounterRepository(conn *postgres.Connection) CounterRepository {
	return &counterRepository{conn: conn}
}

// Só atualiza as linhas cujo valor diverge do calculado
const reconcileCustomersSQL = `
UPDATE customers c SET
	booked_appointments = s.booked,
	completed_appointments = s.completed,
	updated_at = NOW()
FROM (
	SELECT cu.id,
		COUNT(a.id) AS booked,
		COUNT(a.id) FILTER (WHERE a.result = $1) AS completed
	FROM customers cu
	LEFT JOIN appointments a ON a.customer_id = cu.id
	GROUP BY cu.id
) s
WHERE c.id = s.id
	AND (c.booked_appointments <> s.booked OR c.completed_appointments <> s.completed)`

const reconcileTeamMembersSQL = `
UPDATE team_members tm SET
	appointment_count = s.total
FROM (
	SELECT m.id, COUNT(a.id) AS total
	FROM team_members m
	LEFT JOIN appointments a ON a.team_member_id = m.id
	GROUP BY m.id
) s
WHERE tm.id = s.id
	AND tm.appointment_count <> s.total`

func (r *counterRepository) Reconcile(ctx context.Context) (*CounterSyncResult, error) {
	result := &CounterSyncResult{}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, reconcileCustomersSQL, string(domain.StageClosed))
		if err != nil {
			return dbError(err, "recalculando contadores de clientes")
		}
		if result.CustomersUpdated, err = res.RowsAffected(); err != nil {
			return err
		}

		res, err = tx.ExecContext(ctx, reconcileTeamMembersSQL)
		if err != nil {
			return dbError(err, "recalculando contadores da equipe")
		}
		result.TeamMembersUpdated, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
