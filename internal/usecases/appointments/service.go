package appointments

import (
	"context"
	"errors"
	"strings"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/pipeline"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type AppointmentService interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	Create(ctx context.Context, request *domain.CreateAppointmentRequest) (*domain.Appointment, error)
	Update(ctx context.Context, request *domain.UpdateAppointmentRequest) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
	Board(ctx context.Context, filter domain.AppointmentFilter) (*pipeline.Board, error)
	Move(ctx context.Context, request *domain.MoveStageRequest) (*domain.MoveStageResponse, error)
	MoveForCustomer(ctx context.Context, customerID string, request *domain.MoveStageRequest) (*domain.MoveStageResponse, error)
}

type Service struct {
	appointmentRepo repository.AppointmentRepository
	customerRepo    repository.CustomerRepository
	memberRepo      repository.TeamMemberRepository
	engine          *pipeline.Engine
	audit           audit.Recorder
}

func NewService(
	appointmentRepo repository.AppointmentRepository,
	customerRepo repository.CustomerRepository,
	memberRepo repository.TeamMemberRepository,
	recorder audit.Recorder,
) AppointmentService {
	return &Service{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		memberRepo:      memberRepo,
		engine:          pipeline.NewEngine(appointmentRepo, recorder),
		audit:           recorder,
	}
}

func (s *Service) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	for _, stage := range filter.Stages {
		if !stage.IsValid() {
			return nil, crm.NewCRMError(domain.ErrInvalidStage, apiErrors.ErrInvalidStage, string(stage))
		}
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		return nil, crm.Store(err, "Erro ao listar compromissos")
	}

	return appointments, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	if id == "" {
		return nil, crm.Missing("ID do compromisso é obrigatório")
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, crm.Store(err, "Erro ao buscar compromisso")
	}
	if appointment == nil {
		return nil, crm.NotFound(id, "Compromisso não encontrado")
	}

	return appointment, nil
}

// Create grava o compromisso. Os contadores do cliente e do membro são
// atualizados pelo repositório na mesma transação.
func (s *Service) Create(ctx context.Context, request *domain.CreateAppointmentRequest) (*domain.Appointment, error) {
	if request.CustomerID == "" {
		return nil, crm.Missing("Cliente é obrigatório")
	}
	if request.Date.IsZero() {
		return nil, crm.Missing("Data é obrigatória")
	}

	stage := request.Result
	if stage == "" {
		stage = domain.StagePending
	}
	if !stage.IsValid() {
		return nil, crm.NewCRMError(domain.ErrInvalidStage, apiErrors.ErrInvalidStage, string(stage))
	}

	if err := s.ensureCustomer(ctx, request.CustomerID); err != nil {
		return nil, err
	}

	assignee := normalizeAssignee(request.TeamMemberID)
	if err := s.ensureMember(ctx, assignee); err != nil {
		return nil, err
	}

	appointment := &domain.Appointment{
		CustomerID:   request.CustomerID,
		TeamMemberID: assignee,
		Date:         request.Date,
		Time:         strings.TrimSpace(request.Time),
		Type:         strings.TrimSpace(request.Type),
		Description:  request.Description,
		Result:       stage,
	}

	created, err := s.appointmentRepo.Create(ctx, appointment)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("customer_id", request.CustomerID).Error("Erro ao criar compromisso")
		return nil, crm.Store(err, "Erro ao criar compromisso")
	}

	s.audit.Record(ctx, domain.AuditInsert, domain.TableAppointments, created.ID, nil, created)

	return created, nil
}

func (s *Service) Update(ctx context.Context, request *domain.UpdateAppointmentRequest) (*domain.Appointment, error) {
	if request.ID == "" {
		return nil, crm.Missing("ID do compromisso é obrigatório")
	}
	if request.IsEmpty() {
		return nil, crm.NewCRMError(crm.ErrNothingToUpdate, apiErrors.ErrInvalidRequest, "Nenhum campo informado")
	}

	current, err := s.Get(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	old := *current
	updated := *current

	if request.TeamMemberID != nil {
		updated.TeamMemberID = normalizeAssignee(request.TeamMemberID)
		if err := s.ensureMember(ctx, updated.TeamMemberID); err != nil {
			return nil, err
		}
	}
	if request.Date != nil {
		updated.Date = *request.Date
	}
	if request.Time != nil {
		updated.Time = strings.TrimSpace(*request.Time)
	}
	if request.Type != nil {
		updated.Type = strings.TrimSpace(*request.Type)
	}
	if request.Description != nil {
		updated.Description = *request.Description
	}
	if request.Result != nil {
		if !request.Result.IsValid() {
			return nil, crm.NewCRMError(domain.ErrInvalidStage, apiErrors.ErrInvalidStage, string(*request.Result))
		}
		updated.Result = *request.Result
	}

	saved, err := s.appointmentRepo.Update(ctx, &updated)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("appointment_id", request.ID).Error("Erro ao atualizar compromisso")
		return nil, crm.Store(err, "Erro ao atualizar compromisso")
	}
	if saved == nil {
		return nil, crm.NotFound(request.ID, "Compromisso não encontrado")
	}

	s.audit.Record(ctx, domain.AuditUpdate, domain.TableAppointments, saved.ID, &old, saved)

	return saved, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.appointmentRepo.Delete(ctx, id)
	if err != nil {
		return crm.Store(err, "Erro ao excluir compromisso")
	}
	if !deleted {
		return crm.NotFound(id, "Compromisso não encontrado")
	}

	s.audit.Record(ctx, domain.AuditDelete, domain.TableAppointments, id, current, nil)

	return nil
}

func (s *Service) Board(ctx context.Context, filter domain.AppointmentFilter) (*pipeline.Board, error) {
	appointments, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	board := pipeline.GroupByStage(appointments)
	return &board, nil
}

func (s *Service) Move(ctx context.Context, request *domain.MoveStageRequest) (*domain.MoveStageResponse, error) {
	if request.AppointmentID == "" {
		return nil, crm.Missing("ID do compromisso é obrigatório")
	}

	resp, err := s.engine.Move(ctx, request.AppointmentID, request.Destination)
	if err != nil {
		return nil, moveError(request.AppointmentID, err)
	}

	return resp, nil
}

func (s *Service) MoveForCustomer(ctx context.Context, customerID string, request *domain.MoveStageRequest) (*domain.MoveStageResponse, error) {
	if request.AppointmentID == "" {
		return nil, crm.Missing("ID do compromisso é obrigatório")
	}

	resp, err := s.engine.MoveForCustomer(ctx, customerID, request.AppointmentID, request.Destination)
	if err != nil {
		return nil, moveError(request.AppointmentID, err)
	}

	return resp, nil
}

func moveError(appointmentID string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidStage):
		return crm.NewRecordError(err, apiErrors.ErrInvalidStage, appointmentID, "Etapa de destino inválida")
	case errors.Is(err, pipeline.ErrAppointmentNotFound):
		return crm.NotFound(appointmentID, "Compromisso não encontrado")
	case errors.Is(err, pipeline.ErrNotOwnAppointment):
		return crm.Forbidden("Compromisso não pertence ao seu painel")
	}
	return crm.Store(err, "Erro ao mover compromisso")
}

func (s *Service) ensureCustomer(ctx context.Context, customerID string) error {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return crm.Store(err, "Erro ao buscar cliente")
	}
	if customer == nil {
		return crm.NotFound(customerID, "Cliente não encontrado")
	}
	return nil
}

func (s *Service) ensureMember(ctx context.Context, memberID *string) error {
	if memberID == nil {
		return nil
	}

	member, err := s.memberRepo.GetByID(ctx, *memberID)
	if err != nil {
		return crm.Store(err, "Erro ao buscar membro da equipe")
	}
	if member == nil {
		return crm.NotFound(*memberID, "Membro da equipe não encontrado")
	}
	return nil
}

// normalizeAssignee trata "" como compromisso sem responsável
func normalizeAssignee(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
