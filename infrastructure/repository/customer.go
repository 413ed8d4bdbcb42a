package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

var customerColumns = []string{
	"id",
	"name",
	"contact",
	"email",
	"phone",
	"priority",
	"payment_status",
	"action_step",
	"pipeline_stage",
	"satisfaction",
	"booked_appointments",
	"completed_appointments",
	"is_active",
	"notes",
	"dashboard_name",
	"created_at",
	"updated_at",
}

type CustomerRepository interface {
	List(ctx context.Context) ([]*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByDashboardName(ctx context.Context, dashboardName string) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountActive(ctx context.Context) (int, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	query, args, err := psql.
		Select(customerColumns...).
		From(domain.TableCustomers).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "listando clientes")
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, dbError(err, "lendo cliente")
		}
		customers = append(customers, customer)
	}

	return customers, dbError(rows.Err(), "iterando clientes")
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *customerRepository) GetByDashboardName(ctx context.Context, dashboardName string) (*domain.Customer, error) {
	return r.getOne(ctx, squirrel.Eq{"dashboard_name": dashboardName})
}

func (r *customerRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Customer, error) {
	query, args, err := psql.
		Select(customerColumns...).
		From(domain.TableCustomers).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	customer, err := scanCustomer(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "buscando cliente")
	}

	return customer, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	return insertCustomer(ctx, r.conn, customer)
}

// insertCustomer é compartilhado com a promoção de leads, que roda numa transação
func insertCustomer(ctx context.Context, q postgres.Queryer, customer *domain.Customer) (*domain.Customer, error) {
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(domain.TableCustomers).
		Columns(
			"id", "name", "contact", "email", "phone", "priority", "payment_status",
			"action_step", "pipeline_stage", "satisfaction", "booked_appointments",
			"completed_appointments", "is_active", "notes", "dashboard_name",
		).
		Values(
			customer.ID, customer.Name, customer.Contact, customer.Email, customer.Phone,
			customer.Priority, customer.PaymentStatus, customer.ActionStep, customer.PipelineStage,
			customer.Satisfaction, customer.BookedAppointments, customer.CompletedAppointments,
			customer.IsActive, customer.Notes, customer.DashboardName,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = q.QueryRowContext(ctx, query, args...).Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, dbError(err, "inserindo cliente")
	}

	return customer, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query, args, err := psql.
		Update(domain.TableCustomers).
		Set("name", customer.Name).
		Set("contact", customer.Contact).
		Set("email", customer.Email).
		Set("phone", customer.Phone).
		Set("priority", customer.Priority).
		Set("payment_status", customer.PaymentStatus).
		Set("action_step", customer.ActionStep).
		Set("pipeline_stage", customer.PipelineStage).
		Set("satisfaction", customer.Satisfaction).
		Set("is_active", customer.IsActive).
		Set("notes", customer.Notes).
		Set("dashboard_name", customer.DashboardName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID}).
		Suffix("RETURNING " + joinColumns(customerColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanCustomer(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "atualizando cliente")
	}

	return updated, nil
}

// Delete remove apenas o cliente. Compromissos e receitas que o referenciam
// permanecem no banco.
func (r *customerRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.conn, domain.TableCustomers, id)
}

func (r *customerRepository) CountActive(ctx context.Context) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From(domain.TableCustomers).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, dbError(err, "contando clientes ativos")
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	c := &domain.Customer{}
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Contact,
		&c.Email,
		&c.Phone,
		&c.Priority,
		&c.PaymentStatus,
		&c.ActionStep,
		&c.PipelineStage,
		&c.Satisfaction,
		&c.BookedAppointments,
		&c.CompletedAppointments,
		&c.IsActive,
		&c.Notes,
		&c.DashboardName,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return c, nil
}
