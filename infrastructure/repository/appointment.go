package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

const appointmentsAlias = "appointments a"

var appointmentColumns = []string{
	"a.id",
	"a.customer_id",
	"a.team_member_id",
	"a.date",
	"a.time",
	"a.type",
	"a.description",
	"a.result",
	"a.created_at",
	"COALESCE(c.name, '')",
	"COALESCE(tm.name, '')",
}

type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	UpdateStage(ctx context.Context, id string, stage domain.Stage) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type appointmentRepository struct {
	conn *postgres.Connection
}

func NewAppointmentRepository(conn *postgres.Connection) AppointmentRepository {
	return &appointmentRepository{
		conn: conn,
	}
}

func (r *appointmentRepository) selectAppointments() squirrel.SelectBuilder {
	return psql.
		Select(appointmentColumns...).
		From(appointmentsAlias).
		LeftJoin("customers c ON c.id = a.customer_id").
		LeftJoin("team_members tm ON tm.id = a.team_member_id")
}

func (r *appointmentRepository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	builder := r.selectAppointments()

	if filter.CustomerID != "" {
		builder = builder.Where(squirrel.Eq{"a.customer_id": filter.CustomerID})
	}
	if filter.TeamMemberID != "" {
		builder = builder.Where(squirrel.Eq{"a.team_member_id": filter.TeamMemberID})
	}
	if len(filter.Stages) > 0 {
		stages := make([]string, len(filter.Stages))
		for i, s := range filter.Stages {
			stages[i] = string(s)
		}
		builder = builder.Where(squirrel.Eq{"a.result": stages})
	}

	query, args, err := builder.OrderBy("a.date ASC", "a.time ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "listando compromissos")
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, dbError(err, "lendo compromisso")
		}
		appointments = append(appointments, appointment)
	}

	return appointments, dbError(rows.Err(), "iterando compromissos")
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query, args, err := r.selectAppointments().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	appointment, err := scanAppointment(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "buscando compromisso")
	}

	return appointment, nil
}

// Create grava o compromisso e atualiza os contadores na mesma transação:
// booked_appointments do cliente e, com responsável, o histórico e o
// appointment_count do membro.
func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.
			Insert(domain.TableAppointments).
			Columns("id", "customer_id", "team_member_id", "date", "time", "type", "description", "result").
			Values(
				appointment.ID, appointment.CustomerID, appointment.TeamMemberID, appointment.Date,
				appointment.Time, appointment.Type, appointment.Description, appointment.Result,
			).
			Suffix("RETURNING created_at").
			ToSql()
		if err != nil {
			return err
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&appointment.CreatedAt); err != nil {
			return dbError(err, "inserindo compromisso")
		}

		query, args, err = psql.
			Update(domain.TableCustomers).
			Set("booked_appointments", squirrel.Expr("booked_appointments + 1")).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": appointment.CustomerID}).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return dbError(err, "incrementando compromissos do cliente")
		}

		if appointment.TeamMemberID == nil || *appointment.TeamMemberID == "" {
			return nil
		}

		query, args, err = psql.
			Insert(domain.TableAppointmentHistory).
			Columns("id", "team_member_id", "appointment_id", "customer_id", "appointment_date").
			Values(uuid.NewString(), *appointment.TeamMemberID, appointment.ID, appointment.CustomerID, appointment.Date).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return dbError(err, "registrando histórico do compromisso")
		}

		query, args, err = psql.
			Update(domain.TableTeamMembers).
			Set("appointment_count", squirrel.Expr("appointment_count + 1")).
			Where(squirrel.Eq{"id": *appointment.TeamMemberID}).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return dbError(err, "incrementando compromissos do membro")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psql.
		Update(domain.TableAppointments).
		Set("team_member_id", appointment.TeamMemberID).
		Set("date", appointment.Date).
		Set("time", appointment.Time).
		Set("type", appointment.Type).
		Set("description", appointment.Description).
		Set("result", appointment.Result).
		Where(squirrel.Eq{"id": appointment.ID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "atualizando compromisso")
	}

	if ok, err := rowsAffected(result); err != nil || !ok {
		return nil, err
	}

	return r.GetByID(ctx, appointment.ID)
}

// UpdateStage altera somente o campo result
func (r *appointmentRepository) UpdateStage(ctx context.Context, id string, stage domain.Stage) (*domain.Appointment, error) {
	query, args, err := psql.
		Update(domain.TableAppointments).
		Set("result", stage).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "movendo compromisso de etapa")
	}

	if ok, err := rowsAffected(result); err != nil || !ok {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.conn, domain.TableAppointments, id)
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	a := &domain.Appointment{}
	if err := row.Scan(
		&a.ID,
		&a.CustomerID,
		&a.TeamMemberID,
		&a.Date,
		&a.Time,
		&a.Type,
		&a.Description,
		&a.Result,
		&a.CreatedAt,
		&a.CustomerName,
		&a.TeamMemberName,
	); err != nil {
		return nil, err
	}
	return a, nil
}
