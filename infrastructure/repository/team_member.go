package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

var teamMemberColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"password_hash",
	"user_role",
	"customer_dashboard",
	"appointment_count",
	"payouts",
	"performance",
	"is_active",
	"created_at",
}

// teamMemberCascadeColumn é a coluna que liga cada dependente ao membro
var teamMemberCascadeColumn = map[string]string{
	domain.TableAppointments:       "team_member_id",
	domain.TableTeamMemberEarnings: "team_member_id",
	domain.TableTeamMemberExpenses: "team_member_id",
	domain.TableAppointmentHistory: "team_member_id",
}

type TeamMemberRepository interface {
	List(ctx context.Context) ([]*domain.TeamMember, error)
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	GetByEmail(ctx context.Context, email string) (*domain.TeamMember, error)
	Create(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error)
	Update(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type teamMemberRepository struct {
	conn *postgres.Connection
}

func NewTeamMemberRepository(conn *postgres.Connection) TeamMemberRepository {
	return &teamMemberRepository{
		conn: conn,
	}
}

func (r *teamMemberRepository) List(ctx context.Context) ([]*domain.TeamMember, error) {
	query, args, err := psql.
		Select(teamMemberColumns...).
		From(domain.TableTeamMembers).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "listando membros da equipe")
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, dbError(err, "lendo membro da equipe")
		}
		members = append(members, member)
	}

	return members, dbError(rows.Err(), "iterando membros da equipe")
}

func (r *teamMemberRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *teamMemberRepository) GetByEmail(ctx context.Context, email string) (*domain.TeamMember, error) {
	return r.getOne(ctx, squirrel.Eq{"LOWER(email)": email})
}

func (r *teamMemberRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.TeamMember, error) {
	query, args, err := psql.
		Select(teamMemberColumns...).
		From(domain.TableTeamMembers).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	member, err := scanTeamMember(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "buscando membro da equipe")
	}

	return member, nil
}

func (r *teamMemberRepository) Create(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error) {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(domain.TableTeamMembers).
		Columns(
			"id", "name", "email", "phone", "password_hash", "user_role",
			"customer_dashboard", "appointment_count", "payouts", "performance", "is_active",
		).
		Values(
			member.ID, member.Name, member.Email, member.Phone, member.PasswordHash, member.UserRole,
			member.CustomerDashboard, member.AppointmentCount, member.Payouts, member.Performance, member.IsActive,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&member.CreatedAt); err != nil {
		return nil, dbError(err, "inserindo membro da equipe")
	}

	return member, nil
}

func (r *teamMemberRepository) Update(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error) {
	builder := psql.
		Update(domain.TableTeamMembers).
		Set("name", member.Name).
		Set("email", member.Email).
		Set("phone", member.Phone).
		Set("user_role", member.UserRole).
		Set("customer_dashboard", member.CustomerDashboard).
		Set("payouts", member.Payouts).
		Set("performance", member.Performance).
		Set("is_active", member.IsActive).
		Where(squirrel.Eq{"id": member.ID})

	if member.PasswordHash != "" {
		builder = builder.Set("password_hash", member.PasswordHash)
	}

	query, args, err := builder.
		Suffix("RETURNING " + joinColumns(teamMemberColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanTeamMember(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "atualizando membro da equipe")
	}

	return updated, nil
}

// Delete remove os dependentes na ordem de domain.TeamMemberCascadeTables e
// por último o membro, tudo numa única transação.
func (r *teamMemberRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, table := range domain.TeamMemberCascadeTables {
			column, ok := teamMemberCascadeColumn[table]
			if !ok {
				return fmt.Errorf("tabela dependente sem coluna de ligação: %s", table)
			}

			query, args, err := psql.
				Delete(table).
				Where(squirrel.Eq{column: id}).
				ToSql()
			if err != nil {
				return err
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return dbError(err, "removendo dependentes em "+table)
			}

			if n, err := result.RowsAffected(); err == nil && n > 0 {
				logrus.WithFields(logrus.Fields{
					"team_member_id": id,
					"table":          table,
					"rows":           n,
				}).Debug("Dependentes do membro removidos")
			}
		}

		query, args, err := psql.
			Delete(domain.TableTeamMembers).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return dbError(err, "removendo membro da equipe")
		}

		deleted, err = rowsAffected(result)
		return err
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

func scanTeamMember(row rowScanner) (*domain.TeamMember, error) {
	m := &domain.TeamMember{}
	if err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.PasswordHash,
		&m.UserRole,
		&m.CustomerDashboard,
		&m.AppointmentCount,
		&m.Payouts,
		&m.Performance,
		&m.IsActive,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return m, nil
}
