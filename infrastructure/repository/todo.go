package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

var todoColumns = []string{
	"id", "title", "description", "due_date", "priority", "completed", "assigned_to", "created_by", "created_at",
}

type TodoFilter struct {
	AssignedTo string
	OpenOnly   bool
}

type TodoRepository interface {
	List(ctx context.Context, filter TodoFilter) ([]*domain.Todo, error)
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type todoRepository struct {
	conn *postgres.Connection
}

func NewTodoRepository(conn *postgres.Connection) TodoRepository {
	return &todoRepository{conn: conn}
}

func (r *todoRepository) List(ctx context.Context, filter TodoFilter) ([]*domain.Todo, error) {
	builder := psql.
		Select(todoColumns...).
		From(domain.TableTodos).
		OrderBy("due_date ASC NULLS LAST", "created_at DESC")

	if filter.AssignedTo != "" {
		builder = builder.Where(squirrel.Eq{"assigned_to": filter.AssignedTo})
	}
	if filter.OpenOnly {
		builder = builder.Where(squirrel.Eq{"completed": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "listando tarefas")
	}
	defer rows.Close()

	todos := make([]*domain.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, dbError(err, "lendo tarefa")
		}
		todos = append(todos, todo)
	}

	return todos, dbError(rows.Err(), "iterando tarefas")
}

func (r *todoRepository) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	query, args, err := psql.
		Select(todoColumns...).
		From(domain.TableTodos).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	todo, err := scanTodo(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "buscando tarefa")
	}

	return todo, nil
}

func (r *todoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	if todo.ID == "" {
		todo.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(domain.TableTodos).
		Columns("id", "title", "description", "due_date", "priority", "completed", "assigned_to", "created_by").
		Values(todo.ID, todo.Title, todo.Description, todo.DueDate, todo.Priority, todo.Completed, todo.AssignedTo, todo.CreatedBy).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&todo.CreatedAt); err != nil {
		return nil, dbError(err, "inserindo tarefa")
	}

	return todo, nil
}

func (r *todoRepository) Update(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	query, args, err := psql.
		Update(domain.TableTodos).
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("due_date", todo.DueDate).
		Set("priority", todo.Priority).
		Set("completed", todo.Completed).
		Set("assigned_to", todo.AssignedTo).
		Where(squirrel.Eq{"id": todo.ID}).
		Suffix("RETURNING " + joinColumns(todoColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanTodo(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "atualizando tarefa")
	}

	return updated, nil
}

func (r *todoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.conn, domain.TableTodos, id)
}

func scanTodo(row rowScanner) (*domain.Todo, error) {
	t := &domain.Todo{}
	var dueDate domain.Date
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&dueDate,
		&t.Priority,
		&t.Completed,
		&t.AssignedTo,
		&t.CreatedBy,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}
	if !dueDate.IsZero() {
		t.DueDate = &dueDate
	}
	return t, nil
}
