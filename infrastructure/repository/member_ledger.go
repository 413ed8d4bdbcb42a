package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

var memberLedgerColumns = []string{"id", "team_member_id", "amount", "description", "date", "created_at"}

// MemberTotals são os totais agregados de ganhos e despesas de um membro
type MemberTotals struct {
	Earnings float64 `json:"earnings"`
	Expenses float64 `json:"expenses"`
}

// MemberLedgerRepository mantém ganhos e despesas individuais dos membros
type MemberLedgerRepository interface {
	ListEarnings(ctx context.Context, teamMemberID string) ([]*domain.TeamMemberEarning, error)
	AddEarning(ctx context.Context, earning *domain.TeamMemberEarning) (*domain.TeamMemberEarning, error)
	ListExpenses(ctx context.Context, teamMemberID string) ([]*domain.TeamMemberExpense, error)
	AddExpense(ctx context.Context, expense *domain.TeamMemberExpense) (*domain.TeamMemberExpense, error)
	Totals(ctx context.Context, teamMemberID string) (*MemberTotals, error)
}

type memberLedgerRepository struct {
	conn *postgres.Connection
}

func NewMemberLedgerRepository(conn *postgres.Connection) MemberLedgerRepository {
	return &memberLedgerRepository{
		conn: conn,
	}
}

func (r *memberLedgerRepository) ListEarnings(ctx context.Context, teamMemberID string) ([]*domain.TeamMemberEarning, error) {
	query, args, err := psql.
		Select(memberLedgerColumns...).
		From(domain.TableTeamMemberEarnings).
		Where(squirrel.Eq{"team_member_id": teamMemberID}).
		OrderBy("date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "listando ganhos do membro")
	}
	defer rows.Close()

	earnings := make([]*domain.TeamMemberEarning, 0)
	for rows.Next() {
		e := &domain.TeamMemberEarning{}
		if err := rows.Scan(&e.ID, &e.TeamMemberID, &e.Amount, &e.Description, &e.Date, &e.CreatedAt); err != nil {
			return nil, dbError(err, "lendo ganho do membro")
		}
		earnings = append(earnings, e)
	}

	return earnings, dbError(rows.Err(), "iterando ganhos do membro")
}

func (r *memberLedgerRepository) AddEarning(ctx context.Context, earning *domain.TeamMemberEarning) (*domain.TeamMemberEarning, error) {
	if earning.ID == "" {
		earning.ID = uuid.NewString()
	}

	err := r.insert(ctx, domain.TableTeamMemberEarnings, earning.ID, earning.TeamMemberID,
		earning.Amount, earning.Description, earning.Date, &earning.CreatedAt)
	if err != nil {
		return nil, dbError(err, "inserindo ganho do membro")
	}

	return earning, nil
}

func (r *memberLedgerRepository) ListExpenses(ctx context.Context, teamMemberID string) ([]*domain.TeamMemberExpense, error) {
	query, args, err := psql.
		Select(memberLedgerColumns...).
		From(domain.TableTeamMemberExpenses).
		Where(squirrel.Eq{"team_member_id": teamMemberID}).
		OrderBy("date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "listando despesas do membro")
	}
	defer rows.Close()

	expenses := make([]*domain.TeamMemberExpense, 0)
	for rows.Next() {
		e := &domain.TeamMemberExpense{}
		if err := rows.Scan(&e.ID, &e.TeamMemberID, &e.Amount, &e.Description, &e.Date, &e.CreatedAt); err != nil {
			return nil, dbError(err, "lendo despesa do membro")
		}
		expenses = append(expenses, e)
	}

	return expenses, dbError(rows.Err(), "iterando despesas do membro")
}

func (r *memberLedgerRepository) AddExpense(ctx context.Context, expense *domain.TeamMemberExpense) (*domain.TeamMemberExpense, error) {
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}

	err := r.insert(ctx, domain.TableTeamMemberExpenses, expense.ID, expense.TeamMemberID,
		expense.Amount, expense.Description, expense.Date, &expense.CreatedAt)
	if err != nil {
		return nil, dbError(err, "inserindo despesa do membro")
	}

	return expense, nil
}

func (r *memberLedgerRepository) insert(
	ctx context.Context,
	table, id, teamMemberID string,
	amount float64,
	description string,
	date domain.Date,
	createdAt any,
) error {
	query, args, err := psql.
		Insert(table).
		Columns("id", "team_member_id", "amount", "description", "date").
		Values(id, teamMemberID, amount, description, date).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.QueryRowContext(ctx, query, args...).Scan(createdAt)
}

// Totals soma ganhos e despesas no banco, sem carregar as linhas
func (r *memberLedgerRepository) Totals(ctx context.Context, teamMemberID string) (*MemberTotals, error) {
	totals := &MemberTotals{}

	earnings := psql.
		Select("COALESCE(SUM(amount), 0)").
		From(domain.TableTeamMemberEarnings).
		Where(squirrel.Eq{"team_member_id": teamMemberID})

	expenses := psql.
		Select("COALESCE(SUM(amount), 0)").
		From(domain.TableTeamMemberExpenses).
		Where(squirrel.Eq{"team_member_id": teamMemberID})

	for _, item := range []struct {
		builder squirrel.SelectBuilder
		target  *float64
	}{
		{earnings, &totals.Earnings},
		{expenses, &totals.Expenses},
	} {
		query, args, err := item.builder.ToSql()
		if err != nil {
			return nil, err
		}
		if err := r.conn.QueryRowContext(ctx, query, args...).Scan(item.target); err != nil {
			return nil, dbError(err, "somando movimentações do membro")
		}
	}

	return totals, nil
}
