package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/pkg/errors"
)

var ErrLeadGone = errors.New("lead já não existe")

var hotLeadColumns = []string{"id", "name", "contact", "email", "phone", "priority", "notes", "source", "created_at"}

type HotLeadRepository interface {
	List(ctx context.Context) ([]*domain.HotLead, error)
	GetByID(ctx context.Context, id string) (*domain.HotLead, error)
	Create(ctx context.Context, lead *domain.HotLead) (*domain.HotLead, error)
	Update(ctx context.Context, lead *domain.HotLead) (*domain.HotLead, error)
	Delete(ctx context.Context, id string) (bool, error)
	Promote(ctx context.Context, lead *domain.HotLead, customer *domain.Customer) (*domain.Customer, error)
}

type hotLeadRepository struct {
	conn *postgres.Connection
}

func NewHotLeadRepository(conn *postgres.Connection) HotLeadRepository {
	return &hotLeadRepository{conn: conn}
}

func (r *hotLeadRepository) List(ctx context.Context) ([]*domain.HotLead, error) {
	query, args, err := psql.
		Select(hotLeadColumns...).
		From(domain.TableHotLeads).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "listando leads")
	}
	defer rows.Close()

	leads := make([]*domain.HotLead, 0)
	for rows.Next() {
		lead, err := scanHotLead(rows)
		if err != nil {
			return nil, dbError(err, "lendo lead")
		}
		leads = append(leads, lead)
	}

	return leads, dbError(rows.Err(), "iterando leads")
}

func (r *hotLeadRepository) GetByID(ctx context.Context, id string) (*domain.HotLead, error) {
	query, args, err := psql.
		Select(hotLeadColumns...).
		From(domain.TableHotLeads).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	lead, err := scanHotLead(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "buscando lead")
	}

	return lead, nil
}

func (r *hotLeadRepository) Create(ctx context.Context, lead *domain.HotLead) (*domain.HotLead, error) {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(domain.TableHotLeads).
		Columns("id", "name", "contact", "email", "phone", "priority", "notes", "source").
		Values(lead.ID, lead.Name, lead.Contact, lead.Email, lead.Phone, lead.Priority, lead.Notes, lead.Source).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&lead.CreatedAt); err != nil {
		return nil, dbError(err, "inserindo lead")
	}

	return lead, nil
}

func (r *hotLeadRepository) Update(ctx context.Context, lead *domain.HotLead) (*domain.HotLead, error) {
	query, args, err := psql.
		Update(domain.TableHotLeads).
		Set("name", lead.Name).
		Set("contact", lead.Contact).
		Set("email", lead.Email).
		Set("phone", lead.Phone).
		Set("priority", lead.Priority).
		Set("notes", lead.Notes).
		Set("source", lead.Source).
		Where(squirrel.Eq{"id": lead.ID}).
		Suffix("RETURNING " + joinColumns(hotLeadColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanHotLead(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "atualizando lead")
	}

	return updated, nil
}

func (r *hotLeadRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.conn, domain.TableHotLeads, id)
}

// Promote insere o cliente e remove o lead na mesma transação. Se qualquer
// etapa falhar nada é gravado e o lead continua disponível para nova tentativa.
func (r *hotLeadRepository) Promote(ctx context.Context, lead *domain.HotLead, customer *domain.Customer) (*domain.Customer, error) {
	var created *domain.Customer

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		created, err = insertCustomer(ctx, tx, customer)
		if err != nil {
			return err
		}

		deleted, err := deleteByID(ctx, tx, domain.TableHotLeads, lead.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return errors.Wrap(ErrLeadGone, lead.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func scanHotLead(row rowScanner) (*domain.HotLead, error) {
	l := &domain.HotLead{}
	if err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Contact,
		&l.Email,
		&l.Phone,
		&l.Priority,
		&l.Notes,
		&l.Source,
		&l.CreatedAt,
	); err != nil {
		return nil, err
	}
	return l, nil
}
