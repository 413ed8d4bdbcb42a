// Package crm reúne os erros compartilhados pelos casos de uso do CRM.
package crm

import (
	"errors"
	"fmt"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidAmount       = errors.New("valor inválido")
	ErrInvalidValue        = errors.New("valor de campo inválido")
	ErrNothingToUpdate     = errors.New("nenhum campo para atualizar")

	// Erros de recurso
	ErrNotFound  = errors.New("registro não encontrado")
	ErrDuplicate = errors.New("registro já existe")

	// Erros de autorização
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// CRMError é um erro com o código da API e detalhes para o usuário
type CRMError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	RecordID string // ID do registro envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CRMError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CRMError) Unwrap() error {
	return e.Err
}

func NewCRMError(err error, code string, details string) *CRMError {
	return &CRMError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewRecordError(err error, code string, recordID string, details string) *CRMError {
	return &CRMError{
		Err:      err,
		Code:     code,
		RecordID: recordID,
		Details:  details,
	}
}

func Missing(details string) *CRMError {
	return NewCRMError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, details)
}

func Invalid(details string) *CRMError {
	return NewCRMError(ErrInvalidValue, apiErrors.ErrInvalidFormat, details)
}

func NotFound(recordID, details string) *CRMError {
	return NewRecordError(ErrNotFound, apiErrors.ErrResourceNotFound, recordID, details)
}

func Forbidden(details string) *CRMError {
	return NewCRMError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, details)
}

// Store traduz um erro do repositório. O erro do driver fica na cadeia
// para o log, mas a mensagem para o usuário é genérica.
func Store(err error, details string) *CRMError {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return &CRMError{Err: fmt.Errorf("%w: %w", ErrDuplicate, err), Code: apiErrors.ErrResourceConflict, Details: details}
	case errors.Is(err, repository.ErrMissingReference):
		return &CRMError{Err: fmt.Errorf("%w: %w", ErrInvalidValue, err), Code: apiErrors.ErrInvalidRequest, Details: details}
	}
	return &CRMError{Err: fmt.Errorf("%w: %w", ErrDatabaseOperation, err), Code: apiErrors.ErrDatabaseOperation, Details: details}
}

// CodeOf devolve o código da API para qualquer erro dos casos de uso
func CodeOf(err error) string {
	var crmErr *CRMError
	if errors.As(err, &crmErr) {
		return crmErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrInvalidStage):
		return apiErrors.ErrInvalidStage
	case errors.Is(err, domain.ErrInvalidRole):
		return apiErrors.ErrInvalidFormat
	case errors.Is(err, ErrNotFound):
		return apiErrors.ErrResourceNotFound
	case errors.Is(err, ErrInsufficientPrivilege):
		return apiErrors.ErrInsufficientPrivilege
	}
	return apiErrors.ErrInternalServer
}

// MessageOf devolve a mensagem segura para o usuário. Erros de banco
// nunca expõem o detalhe do driver.
func MessageOf(err error) string {
	var crmErr *CRMError
	if errors.As(err, &crmErr) {
		if crmErr.Code == apiErrors.ErrDatabaseOperation {
			if crmErr.Details != "" {
				return crmErr.Details
			}
			return ErrDatabaseOperation.Error()
		}
		return crmErr.Error()
	}
	if CodeOf(err) == apiErrors.ErrInternalServer {
		return "Erro interno do servidor"
	}
	return err.Error()
}
