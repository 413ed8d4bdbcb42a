// Package audit grava e consulta a trilha de auditoria
package audit

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/log"
)

//go:generate mockgen -source=recorder.go -destination=mocks/recorder.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Recorder interface {
	// Record nunca falha para quem chama: a escrita auditada já foi confirmada
	Record(ctx context.Context, action domain.AuditAction, table, recordID string, oldValues, newValues any)
	Recent(ctx context.Context) ([]*domain.AuditLogEntry, error)
	Clear(ctx context.Context) (int, error)
}

type Service struct {
	repo repository.AuditLogRepository
}

func NewService(repo repository.AuditLogRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, action domain.AuditAction, table, recordID string, oldValues, newValues any) {
	entry := newEntry(ctx, action, table, recordID)

	var err error
	if entry.OldValues, err = encode(oldValues); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Falha ao serializar valores antigos da auditoria")
	}
	if entry.NewValues, err = encode(newValues); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Falha ao serializar valores novos da auditoria")
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"action": action,
			"table":  table,
		}).Error("Erro ao gravar registro de auditoria")
	}
}

// Recent devolve os domain.AuditRecentLimit registros mais novos
func (s *Service) Recent(ctx context.Context) ([]*domain.AuditLogEntry, error) {
	return s.repo.ListRecent(ctx, domain.AuditRecentLimit)
}

// Clear apaga o histórico deixando apenas o registro CLEAR_LOGS com a
// quantidade removida.
func (s *Service) Clear(ctx context.Context) (int, error) {
	return s.repo.Clear(ctx, func(count int) *domain.AuditLogEntry {
		entry := newEntry(ctx, domain.AuditClearLogs, domain.TableAuditLogs, "")
		entry.NewValues, _ = encode(domain.ClearAuditLogsResponse{DeletedCount: count})
		return entry
	})
}

func newEntry(ctx context.Context, action domain.AuditAction, table, recordID string) *domain.AuditLogEntry {
	entry := &domain.AuditLogEntry{
		Action:    action,
		TableName: table,
	}

	if recordID != "" {
		entry.RecordID = &recordID
	}

	if claims := domain.ClaimsFromContext(ctx); claims != nil && claims.UserID != "" {
		userID := claims.UserID
		entry.UserID = &userID
	}

	return entry
}

func encode(value any) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	return json.Marshal(value)
}
