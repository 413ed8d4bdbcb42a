package leads

import (
	"context"
	"errors"
	"strings"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type HotLeadService interface {
	List(ctx context.Context) ([]*domain.HotLead, error)
	Get(ctx context.Context, id string) (*domain.HotLead, error)
	Create(ctx context.Context, request *domain.CreateHotLeadRequest) (*domain.HotLead, error)
	Update(ctx context.Context, request *domain.UpdateHotLeadRequest) (*domain.HotLead, error)
	Delete(ctx context.Context, id string) error
	Promote(ctx context.Context, id string) (*domain.PromoteHotLeadResponse, error)
}

type Service struct {
	leadRepo repository.HotLeadRepository
	audit    audit.Recorder
}

func NewService(leadRepo repository.HotLeadRepository, recorder audit.Recorder) HotLeadService {
	return &Service{
		leadRepo: leadRepo,
		audit:    recorder,
	}
}

func (s *Service) List(ctx context.Context) ([]*domain.HotLead, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, crm.Store(err, "Erro ao listar leads")
	}
	return leads, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.HotLead, error) {
	if id == "" {
		return nil, crm.Missing("ID do lead é obrigatório")
	}

	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, crm.Store(err, "Erro ao buscar lead")
	}
	if lead == nil {
		return nil, crm.NotFound(id, "Lead não encontrado")
	}
	return lead, nil
}

func (s *Service) Create(ctx context.Context, request *domain.CreateHotLeadRequest) (*domain.HotLead, error) {
	lead := &domain.HotLead{
		Name:     strings.TrimSpace(request.Name),
		Contact:  request.Contact,
		Email:    strings.TrimSpace(request.Email),
		Phone:    request.Phone,
		Priority: request.Priority,
		Notes:    request.Notes,
		Source:   request.Source,
	}
	if lead.Priority == "" {
		lead.Priority = domain.PriorityMedium
	}

	if err := validate(lead); err != nil {
		return nil, err
	}

	created, err := s.leadRepo.Create(ctx, lead)
	if err != nil {
		return nil, crm.Store(err, "Erro ao criar lead")
	}

	s.audit.Record(ctx, domain.AuditInsert, domain.TableHotLeads, created.ID, nil, created)

	return created, nil
}

func (s *Service) Update(ctx context.Context, request *domain.UpdateHotLeadRequest) (*domain.HotLead, error) {
	current, err := s.Get(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	old := *current
	updated := *current

	if request.Name != nil {
		updated.Name = strings.TrimSpace(*request.Name)
	}
	if request.Contact != nil {
		updated.Contact = *request.Contact
	}
	if request.Email != nil {
		updated.Email = strings.TrimSpace(*request.Email)
	}
	if request.Phone != nil {
		updated.Phone = *request.Phone
	}
	if request.Priority != nil {
		updated.Priority = *request.Priority
	}
	if request.Notes != nil {
		updated.Notes = *request.Notes
	}
	if request.Source != nil {
		updated.Source = *request.Source
	}

	if err := validate(&updated); err != nil {
		return nil, err
	}

	saved, err := s.leadRepo.Update(ctx, &updated)
	if err != nil {
		return nil, crm.Store(err, "Erro ao atualizar lead")
	}
	if saved == nil {
		return nil, crm.NotFound(request.ID, "Lead não encontrado")
	}

	s.audit.Record(ctx, domain.AuditUpdate, domain.TableHotLeads, saved.ID, &old, saved)

	return saved, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.leadRepo.Delete(ctx, id); err != nil {
		return crm.Store(err, "Erro ao excluir lead")
	}

	s.audit.Record(ctx, domain.AuditDelete, domain.TableHotLeads, id, current, nil)

	return nil
}

// Promote transforma o lead em cliente. A inserção do cliente e a remoção
// do lead acontecem juntas no repositório; em caso de falha o lead continua
// na lista.
func (s *Service) Promote(ctx context.Context, id string) (*domain.PromoteHotLeadResponse, error) {
	lead, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	customer := lead.ToCustomer()
	slug, err := utils.DashboardSlug(customer.Name)
	if err != nil {
		return nil, crm.NewCRMError(err, apiErrors.ErrInternalServer, "Erro ao gerar nome do painel")
	}
	customer.DashboardName = &slug

	customer, err = s.leadRepo.Promote(ctx, lead, customer)
	if errors.Is(err, repository.ErrLeadGone) {
		return nil, crm.NotFound(id, "Lead já foi convertido ou removido")
	}
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("lead_id", id).Error("Erro ao converter lead em cliente")
		return nil, crm.Store(err, "Erro ao converter lead em cliente")
	}

	s.audit.Record(ctx, domain.AuditInsert, domain.TableCustomers, customer.ID, nil, customer)
	s.audit.Record(ctx, domain.AuditDelete, domain.TableHotLeads, lead.ID, lead, nil)

	return &domain.PromoteHotLeadResponse{Customer: customer, LeadID: lead.ID}, nil
}

func validate(lead *domain.HotLead) error {
	if lead.Name == "" {
		return crm.Missing("Nome do lead é obrigatório")
	}
	if !lead.Priority.IsValid() {
		return crm.Invalid("Prioridade inválida: " + string(lead.Priority))
	}
	return nil
}
