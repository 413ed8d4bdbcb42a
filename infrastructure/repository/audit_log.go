package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

// ClearMarker monta o registro CLEAR_LOGS a partir da quantidade apagada
type ClearMarker func(deletedCount int) *domain.AuditLogEntry

type AuditLogRepository interface {
	Insert(ctx context.Context, entry *domain.AuditLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]*domain.AuditLogEntry, error)
	Clear(ctx context.Context, marker ClearMarker) (int, error)
}

type auditLogRepository struct {
	conn *postgres.Connection
}

func NewAuditLogRepository(conn *postgres.Connection) AuditLogRepository {
	return &auditLogRepository{conn: conn}
}

func (r *auditLogRepository) Insert(ctx context.Context, entry *domain.AuditLogEntry) error {
	return insertAuditLog(ctx, r.conn, entry)
}

func insertAuditLog(ctx context.Context, q postgres.Queryer, entry *domain.AuditLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(domain.TableAuditLogs).
		Columns("id", "action", "table_name", "record_id", "old_values", "new_values", "user_id").
		Values(
			entry.ID, entry.Action, entry.TableName, entry.RecordID,
			jsonArg(entry.OldValues), jsonArg(entry.NewValues), entry.UserID,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return err
	}

	return dbError(q.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt), "gravando auditoria")
}

// ListRecent devolve os registros mais novos com nome e email de quem agiu
func (r *auditLogRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AuditLogEntry, error) {
	query, args, err := psql.
		Select(
			"al.id", "al.action", "al.table_name", "al.record_id", "al.old_values", "al.new_values",
			"al.user_id", "al.created_at", "COALESCE(tm.name, '')", "COALESCE(tm.email, '')",
		).
		From("audit_logs al").
		LeftJoin("team_members tm ON tm.id = al.user_id").
		OrderBy("al.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "listando auditoria")
	}
	defer rows.Close()

	entries := make([]*domain.AuditLogEntry, 0, limit)
	for rows.Next() {
		var (
			entry     = &domain.AuditLogEntry{}
			oldValues []byte
			newValues []byte
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.TableName,
			&entry.RecordID,
			&oldValues,
			&newValues,
			&entry.UserID,
			&entry.CreatedAt,
			&entry.UserName,
			&entry.UserEmail,
		); err != nil {
			return nil, dbError(err, "lendo auditoria")
		}
		entry.OldValues = oldValues
		entry.NewValues = newValues
		entries = append(entries, entry)
	}

	return entries, dbError(rows.Err(), "iterando auditoria")
}

// Clear conta os registros, grava o CLEAR_LOGS e apaga todos os demais. As
// três etapas rodam na mesma transação, com a auditoria gravada antes da remoção.
func (r *auditLogRepository) Clear(ctx context.Context, marker ClearMarker) (int, error) {
	var deleted int

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.Select("COUNT(*)").From(domain.TableAuditLogs).ToSql()
		if err != nil {
			return err
		}

		var count int
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return dbError(err, "contando auditoria")
		}

		entry := marker(count)
		if err := insertAuditLog(ctx, tx, entry); err != nil {
			return err
		}

		query, args, err = psql.
			Delete(domain.TableAuditLogs).
			Where(squirrel.NotEq{"id": entry.ID}).
			ToSql()
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return dbError(err, "apagando auditoria")
		}

		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		deleted = int(n)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
