package todos

import (
	"context"
	"strings"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/permission"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type TodoService interface {
	List(ctx context.Context, filter repository.TodoFilter) ([]*domain.Todo, error)
	Create(ctx context.Context, request *domain.CreateTodoRequest) (*domain.Todo, error)
	Update(ctx context.Context, request *domain.UpdateTodoRequest) (*domain.Todo, error)
	Complete(ctx context.Context, id string, completed bool) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	todoRepo repository.TodoRepository
	audit    audit.Recorder
}

func NewService(todoRepo repository.TodoRepository, recorder audit.Recorder) TodoService {
	return &Service{
		todoRepo: todoRepo,
		audit:    recorder,
	}
}

func (s *Service) List(ctx context.Context, filter repository.TodoFilter) ([]*domain.Todo, error) {
	todos, err := s.todoRepo.List(ctx, filter)
	if err != nil {
		return nil, crm.Store(err, "Erro ao listar tarefas")
	}
	return todos, nil
}

func (s *Service) Create(ctx context.Context, request *domain.CreateTodoRequest) (*domain.Todo, error) {
	title := strings.TrimSpace(request.Title)
	if title == "" {
		return nil, crm.Missing("Título é obrigatório")
	}

	priority := request.Priority
	if priority == "" {
		priority = domain.TodoPriorityMedium
	}
	if !priority.IsValid() {
		return nil, crm.Invalid("Prioridade inválida: " + string(priority))
	}

	todo := &domain.Todo{
		Title:       title,
		Description: request.Description,
		DueDate:     request.DueDate,
		Priority:    priority,
		AssignedTo:  emptyToNil(request.AssignedTo),
	}
	if claims := domain.ClaimsFromContext(ctx); claims != nil {
		todo.CreatedBy = &claims.UserID
	}

	created, err := s.todoRepo.Create(ctx, todo)
	if err != nil {
		return nil, crm.Store(err, "Erro ao criar tarefa")
	}

	s.audit.Record(ctx, domain.AuditInsert, domain.TableTodos, created.ID, nil, created)

	return created, nil
}

// Update aceita edição completa só de quem cria tarefas; os demais
// podem apenas marcar como concluída.
func (s *Service) Update(ctx context.Context, request *domain.UpdateTodoRequest) (*domain.Todo, error) {
	if request.ID == "" {
		return nil, crm.Missing("ID da tarefa é obrigatório")
	}

	claims := domain.ClaimsFromContext(ctx)
	if request.OnlyCompletion() {
		if !permission.CanCompleteTodos(claims) {
			return nil, crm.Forbidden("Sem permissão para concluir tarefas")
		}
	} else if !permission.CanCreateTodos(claims) {
		return nil, crm.Forbidden("Apenas administradores podem editar tarefas")
	}

	current, err := s.get(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	old := *current
	updated := *current

	if request.Title != nil {
		updated.Title = strings.TrimSpace(*request.Title)
		if updated.Title == "" {
			return nil, crm.Missing("Título é obrigatório")
		}
	}
	if request.Description != nil {
		updated.Description = *request.Description
	}
	if request.DueDate != nil {
		updated.DueDate = request.DueDate
		if request.DueDate.IsZero() {
			updated.DueDate = nil
		}
	}
	if request.Priority != nil {
		if !request.Priority.IsValid() {
			return nil, crm.Invalid("Prioridade inválida: " + string(*request.Priority))
		}
		updated.Priority = *request.Priority
	}
	if request.Completed != nil {
		updated.Completed = *request.Completed
	}
	if request.AssignedTo != nil {
		updated.AssignedTo = emptyToNil(request.AssignedTo)
	}

	saved, err := s.todoRepo.Update(ctx, &updated)
	if err != nil {
		return nil, crm.Store(err, "Erro ao atualizar tarefa")
	}
	if saved == nil {
		return nil, crm.NotFound(request.ID, "Tarefa não encontrada")
	}

	s.audit.Record(ctx, domain.AuditUpdate, domain.TableTodos, saved.ID, &old, saved)

	return saved, nil
}

func (s *Service) Complete(ctx context.Context, id string, completed bool) (*domain.Todo, error) {
	return s.Update(ctx, &domain.UpdateTodoRequest{ID: id, Completed: &completed})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.todoRepo.Delete(ctx, id); err != nil {
		return crm.Store(err, "Erro ao excluir tarefa")
	}

	s.audit.Record(ctx, domain.AuditDelete, domain.TableTodos, id, current, nil)

	return nil
}

func (s *Service) get(ctx context.Context, id string) (*domain.Todo, error) {
	if id == "" {
		return nil, crm.Missing("ID da tarefa é obrigatório")
	}

	todo, err := s.todoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, crm.Store(err, "Erro ao buscar tarefa")
	}
	if todo == nil {
		return nil, crm.NotFound(id, "Tarefa não encontrada")
	}
	return todo, nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
