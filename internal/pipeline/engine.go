package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
)

var (
	ErrAppointmentNotFound = errors.New("compromisso não encontrado")
	ErrNotOwnAppointment   = errors.New("compromisso não pertence ao cliente")
)

// Store é o subconjunto do repositório de compromissos usado pelo motor
type Store interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	UpdateStage(ctx context.Context, id string, stage domain.Stage) (*domain.Appointment, error)
}

type Engine struct {
	store Store
	audit audit.Recorder
}

func NewEngine(store Store, recorder audit.Recorder) *Engine {
	return &Engine{
		store: store,
		audit: recorder,
	}
}

// Move leva o compromisso para a etapa de destino. Não existe grafo de
// transições: qualquer etapa válida é aceita. Destino igual à origem não
// grava nada e devolve Moved=false.
func (e *Engine) Move(ctx context.Context, appointmentID string, destination domain.Stage) (*domain.MoveStageResponse, error) {
	return e.move(ctx, appointmentID, destination, "")
}

// MoveForCustomer é o Move do portal do cliente, restrito aos compromissos
// do próprio cliente.
func (e *Engine) MoveForCustomer(ctx context.Context, customerID, appointmentID string, destination domain.Stage) (*domain.MoveStageResponse, error) {
	if customerID == "" {
		return nil, ErrNotOwnAppointment
	}
	return e.move(ctx, appointmentID, destination, customerID)
}

func (e *Engine) move(ctx context.Context, appointmentID string, destination domain.Stage, customerID string) (*domain.MoveStageResponse, error) {
	if !destination.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStage, destination)
	}

	current, err := e.store.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrAppointmentNotFound
	}

	if customerID != "" && current.CustomerID != customerID {
		return nil, ErrNotOwnAppointment
	}

	if current.Result == destination {
		return &domain.MoveStageResponse{Appointment: current, Moved: false}, nil
	}

	updated, err := e.store.UpdateStage(ctx, appointmentID, destination)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"appointment_id": appointmentID,
			"destination":    destination,
		}).Error("Erro ao mover compromisso de etapa")
		return nil, err
	}
	if updated == nil {
		return nil, ErrAppointmentNotFound
	}

	e.audit.Record(ctx, domain.AuditUpdate, domain.TableAppointments, appointmentID,
		map[string]domain.Stage{"result": current.Result},
		map[string]domain.Stage{"result": destination},
	)

	return &domain.MoveStageResponse{Appointment: updated, Moved: true}, nil
}
