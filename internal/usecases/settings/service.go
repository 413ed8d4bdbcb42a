package settings

import (
	"context"
	"strconv"
	"strings"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/config"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/reporting"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/crm"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type SettingService interface {
	List(ctx context.Context) ([]*domain.Setting, error)
	Upsert(ctx context.Context, request *domain.UpsertSettingRequest) (*domain.Setting, error)
	TeamNotice(ctx context.Context) (*domain.TeamNotice, error)
	SetTeamNotice(ctx context.Context, notice *domain.TeamNotice) (*domain.TeamNotice, error)
	TaxRate(ctx context.Context) (float64, error)
}

type Service struct {
	settingRepo    repository.SettingRepository
	audit          audit.Recorder
	defaultTaxRate float64
}

func NewService(settingRepo repository.SettingRepository, recorder audit.Recorder, cfg *config.Config) SettingService {
	rate := cfg.Reporting.DefaultTaxRate
	if rate <= 0 {
		rate = reporting.DefaultTaxRate
	}

	return &Service{
		settingRepo:    settingRepo,
		audit:          recorder,
		defaultTaxRate: rate,
	}
}

func (s *Service) List(ctx context.Context) ([]*domain.Setting, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, crm.Store(err, "Erro ao listar configurações")
	}
	return settings, nil
}

func (s *Service) Upsert(ctx context.Context, request *domain.UpsertSettingRequest) (*domain.Setting, error) {
	key := strings.TrimSpace(request.Key)
	if key == "" {
		return nil, crm.Missing("Chave da configuração é obrigatória")
	}

	if err := validateValue(key, request.Value); err != nil {
		return nil, err
	}

	return s.write(ctx, key, request.Value)
}

func (s *Service) TeamNotice(ctx context.Context) (*domain.TeamNotice, error) {
	text, err := s.settingRepo.Get(ctx, domain.SettingTeamNotice)
	if err != nil {
		return nil, crm.Store(err, "Erro ao buscar aviso da equipe")
	}
	visible, err := s.settingRepo.Get(ctx, domain.SettingTeamNoticeVisible)
	if err != nil {
		return nil, crm.Store(err, "Erro ao buscar aviso da equipe")
	}

	notice := &domain.TeamNotice{}
	if text != nil {
		notice.Text = text.Value
	}
	if visible != nil {
		notice.Visible, _ = strconv.ParseBool(visible.Value)
	}
	return notice, nil
}

func (s *Service) SetTeamNotice(ctx context.Context, notice *domain.TeamNotice) (*domain.TeamNotice, error) {
	if _, err := s.write(ctx, domain.SettingTeamNotice, notice.Text); err != nil {
		return nil, err
	}
	if _, err := s.write(ctx, domain.SettingTeamNoticeVisible, strconv.FormatBool(notice.Visible)); err != nil {
		return nil, err
	}
	return &domain.TeamNotice{Text: notice.Text, Visible: notice.Visible}, nil
}

// TaxRate usa o valor configurado no banco ou o padrão da aplicação
func (s *Service) TaxRate(ctx context.Context) (float64, error) {
	setting, err := s.settingRepo.Get(ctx, domain.SettingTaxRate)
	if err != nil {
		return 0, crm.Store(err, "Erro ao buscar taxa de imposto")
	}
	if setting == nil {
		return s.defaultTaxRate, nil
	}

	rate, err := parseTaxRate(setting.Value)
	if err != nil {
		log.ForContext(ctx).WithField("value", setting.Value).Warn("Taxa de imposto inválida no banco, usando o padrão")
		return s.defaultTaxRate, nil
	}
	return rate, nil
}

func (s *Service) write(ctx context.Context, key, value string) (*domain.Setting, error) {
	old, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		return nil, crm.Store(err, "Erro ao buscar configuração")
	}

	saved, err := s.settingRepo.Upsert(ctx, key, value)
	if err != nil {
		return nil, crm.Store(err, "Erro ao salvar configuração")
	}

	if old == nil {
		s.audit.Record(ctx, domain.AuditInsert, domain.TableSettings, key, nil, saved)
	} else {
		s.audit.Record(ctx, domain.AuditUpdate, domain.TableSettings, key, old, saved)
	}

	return saved, nil
}

func validateValue(key, value string) error {
	switch key {
	case domain.SettingTaxRate:
		if _, err := parseTaxRate(value); err != nil {
			return crm.NewCRMError(crm.ErrInvalidAmount, apiErrors.ErrInvalidAmount, "Taxa de imposto deve estar entre 0 e 100")
		}
	case domain.SettingTeamNoticeVisible:
		if _, err := strconv.ParseBool(value); err != nil {
			return crm.Invalid("Valor deve ser true ou false")
		}
	}
	return nil
}

func parseTaxRate(value string) (float64, error) {
	rate, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value), ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if rate < 0 || rate > 100 {
		return 0, strconv.ErrRange
	}
	return rate, nil
}
