package customers

import (
	"context"
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

type CustomerService interface {
	List(ctx context.Context) ([]*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	GetByDashboardName(ctx context.Context, dashboardName string) (*domain.Customer, error)
	Create(ctx context.Context, request *domain.CreateCustomerRequest) (*domain.Customer, error)
	Update(ctx context.Context, request *domain.UpdateCustomerRequest) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	customerRepo repository.CustomerRepository
	audit        audit.Recorder
}

func NewService(customerRepo repository.CustomerRepository, recorder audit.Recorder) CustomerService {
	return &Service{
		customerRepo: customerRepo,
		audit:        recorder,
	}
}

func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, crm.Store(err, "Erro ao listar clientes")
	}

	return customers, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	if id == "" {
		return nil, crm.Missing("ID do cliente é obrigatório")
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, crm.Store(err, "Erro ao buscar cliente")
	}
	if customer == nil {
		return nil, crm.NotFound(id, "Cliente não encontrado")
	}

	return customer, nil
}

func (s *Service) GetByDashboardName(ctx context.Context, dashboardName string) (*domain.Customer, error) {
	if dashboardName == "" {
		return nil, crm.Missing("Nome do painel é obrigatório")
	}

	customer, err := s.customerRepo.GetByDashboardName(ctx, dashboardName)
	if err != nil {
		return nil, crm.Store(err, "Erro ao buscar cliente pelo painel")
	}
	if customer == nil {
		return nil, crm.NotFound(dashboardName, "Nenhum cliente vinculado ao painel")
	}

	return customer, nil
}

func (s *Service) Create(ctx context.Context, request *domain.CreateCustomerRequest) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:          strings.TrimSpace(request.Name),
		Contact:       strings.TrimSpace(request.Contact),
		Email:         normalizeEmail(request.Email),
		Phone:         strings.TrimSpace(request.Phone),
		Priority:      request.Priority,
		PaymentStatus: request.PaymentStatus,
		ActionStep:    request.ActionStep,
		Satisfaction:  request.Satisfaction,
		Notes:         request.Notes,
		DashboardName: request.DashboardName,
	}
	customer.ApplyDefaults()

	if err := validate(customer); err != nil {
		return nil, err
	}

	if customer.DashboardName == nil || *customer.DashboardName == "" {
		slug, err := utils.DashboardSlug(customer.Name)
		if err != nil {
			return nil, crm.NewCRMError(err, apiErrors.ErrInternalServer, "Erro ao gerar nome do painel")
		}
		customer.DashboardName = &slug
	}

	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar cliente")
		return nil, crm.Store(err, "Erro ao criar cliente")
	}

	s.audit.Record(ctx, domain.AuditInsert, domain.TableCustomers, created.ID, nil, created)

	return created, nil
}

func (s *Service) Update(ctx context.Context, request *domain.UpdateCustomerRequest) (*domain.Customer, error) {
	if request.ID == "" {
		return nil, crm.Missing("ID do cliente é obrigatório")
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

	if request.Name != nil {
		updated.Name = strings.TrimSpace(*request.Name)
	}
	if request.Contact != nil {
		updated.Contact = strings.TrimSpace(*request.Contact)
	}
	if request.Email != nil {
		updated.Email = normalizeEmail(*request.Email)
	}
	if request.Phone != nil {
		updated.Phone = strings.TrimSpace(*request.Phone)
	}
	if request.Priority != nil {
		updated.Priority = *request.Priority
	}
	if request.PaymentStatus != nil {
		updated.PaymentStatus = *request.PaymentStatus
	}
	if request.ActionStep != nil {
		updated.ActionStep = *request.ActionStep
	}
	if request.PipelineStage != nil {
		updated.PipelineStage = *request.PipelineStage
	}
	if request.Satisfaction != nil {
		updated.Satisfaction = *request.Satisfaction
	}
	if request.IsActive != nil {
		updated.IsActive = *request.IsActive
	}
	if request.Notes != nil {
		updated.Notes = *request.Notes
	}
	if request.DashboardName != nil {
		updated.DashboardName = request.DashboardName
	}

	if err := validate(&updated); err != nil {
		return nil, err
	}

	saved, err := s.customerRepo.Update(ctx, &updated)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("customer_id", request.ID).Error("Erro ao atualizar cliente")
		return nil, crm.Store(err, "Erro ao atualizar cliente")
	}
	if saved == nil {
		return nil, crm.NotFound(request.ID, "Cliente não encontrado")
	}

	s.audit.Record(ctx, domain.AuditUpdate, domain.TableCustomers, saved.ID, &old, saved)

	return saved, nil
}

// Delete remove só o cliente; compromissos e receitas continuam apontando
// para o ID removido.
func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.customerRepo.Delete(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("customer_id", id).Error("Erro ao excluir cliente")
		return crm.Store(err, "Erro ao excluir cliente")
	}
	if !deleted {
		return crm.NotFound(id, "Cliente não encontrado")
	}

	s.audit.Record(ctx, domain.AuditDelete, domain.TableCustomers, id, current, nil)

	return nil
}

func validate(customer *domain.Customer) error {
	if customer.Name == "" {
		return crm.Missing("Nome do cliente é obrigatório")
	}
	if !customer.Priority.IsValid() {
		return crm.Invalid("Prioridade inválida: " + string(customer.Priority))
	}
	if !customer.PaymentStatus.IsValid() {
		return crm.Invalid("Status de pagamento inválido: " + string(customer.PaymentStatus))
	}
	if !customer.ActionStep.IsValid() {
		return crm.Invalid("Próximo passo inválido: " + string(customer.ActionStep))
	}
	if !customer.PipelineStage.IsValid() {
		return crm.Invalid("Etapa inválida: " + string(customer.PipelineStage))
	}
	if customer.Satisfaction < domain.MinSatisfaction || customer.Satisfaction > domain.MaxSatisfaction {
		return crm.Invalid("Satisfação deve estar entre 1 e 10")
	}
	return nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
