package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

// Receitas e despesas são imutáveis depois de criadas; só podem ser removidas.

type RevenueRepository interface {
	List(ctx context.Context) ([]*domain.Revenue, error)
	Create(ctx context.Context, revenue *domain.Revenue) (*domain.Revenue, error)
	GetByID(ctx context.Context, id string) (*domain.Revenue, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ExpenseRepository interface {
	List(ctx context.Context) ([]*domain.Expense, error)
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type revenueRepository struct {
	conn *postgres.Connection
}

func NewRevenueRepository(conn *postgres.Connection) RevenueRepository {
	return &revenueRepository{conn: conn}
}

func (r *revenueRepository) List(ctx context.Context) ([]*domain.Revenue, error) {
	return r.list(ctx, nil)
}

func (r *revenueRepository) GetByID(ctx context.Context, id string) (*domain.Revenue, error) {
	revenues, err := r.list(ctx, squirrel.Eq{"id": id})
	if err != nil || len(revenues) == 0 {
		return nil, err
	}
	return revenues[0], nil
}

func (r *revenueRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Revenue, error) {
	builder := psql.
		Select("id", "description", "amount", "date", "customer_id", "created_at").
		From(domain.TableRevenues).
		OrderBy("date DESC", "created_at DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "listando receitas")
	}
	defer rows.Close()

	revenues := make([]*domain.Revenue, 0)
	for rows.Next() {
		rev := &domain.Revenue{}
		if err := rows.Scan(&rev.ID, &rev.Description, &rev.Amount, &rev.Date, &rev.CustomerID, &rev.CreatedAt); err != nil {
			return nil, dbError(err, "lendo receita")
		}
		revenues = append(revenues, rev)
	}

	return revenues, dbError(rows.Err(), "iterando receitas")
}

func (r *revenueRepository) Create(ctx context.Context, revenue *domain.Revenue) (*domain.Revenue, error) {
	if revenue.ID == "" {
		revenue.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(domain.TableRevenues).
		Columns("id", "description", "amount", "date", "customer_id").
		Values(revenue.ID, revenue.Description, revenue.Amount, revenue.Date, revenue.CustomerID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&revenue.CreatedAt); err != nil {
		return nil, dbError(err, "inserindo receita")
	}

	return revenue, nil
}

func (r *revenueRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.conn, domain.TableRevenues, id)
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{conn: conn}
}

func (r *expenseRepository) List(ctx context.Context) ([]*domain.Expense, error) {
	return r.list(ctx, nil)
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	expenses, err := r.list(ctx, squirrel.Eq{"id": id})
	if err != nil || len(expenses) == 0 {
		return nil, err
	}
	return expenses[0], nil
}

func (r *expenseRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Expense, error) {
	builder := psql.
		Select("id", "description", "amount", "date", "created_at").
		From(domain.TableExpenses).
		OrderBy("date DESC", "created_at DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "listando despesas")
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		exp := &domain.Expense{}
		if err := rows.Scan(&exp.ID, &exp.Description, &exp.Amount, &exp.Date, &exp.CreatedAt); err != nil {
			return nil, dbError(err, "lendo despesa")
		}
		expenses = append(expenses, exp)
	}

	return expenses, dbError(rows.Err(), "iterando despesas")
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(domain.TableExpenses).
		Columns("id", "description", "amount", "date").
		Values(expense.ID, expense.Description, expense.Amount, expense.Date).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&expense.CreatedAt); err != nil {
		return nil, dbError(err, "inserindo despesa")
	}

	return expense, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.conn, domain.TableExpenses, id)
}

func deleteByID(ctx context.Context, q postgres.Queryer, table, id string) (bool, error) {
	query, args, err := psql.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, dbError(err, "removendo registro de "+table)
	}

	return rowsAffected(result)
}
