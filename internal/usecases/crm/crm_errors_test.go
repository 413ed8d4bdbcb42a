package crm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	driverErr := errors.New(`pq: relation "customers" does not exist`)

	tests := []struct {
		name     string
		err      error
		code     string
		sentinel error
	}{
		{name: "duplicado", err: fmt.Errorf("criar: %w", repository.ErrDuplicate), code: apiErrors.ErrResourceConflict, sentinel: ErrDuplicate},
		{name: "referência ausente", err: repository.ErrMissingReference, code: apiErrors.ErrInvalidRequest, sentinel: ErrInvalidValue},
		{name: "erro genérico", err: driverErr, code: apiErrors.ErrDatabaseOperation, sentinel: ErrDatabaseOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Store(tt.err, "Erro ao salvar cliente")

			assert.Equal(t, tt.code, err.Code)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMessageOf_HidesDriverDetail(t *testing.T) {
	err := Store(errors.New("pq: connection refused"), "Erro ao listar clientes")

	assert.Equal(t, apiErrors.ErrDatabaseOperation, CodeOf(err))
	assert.Equal(t, "Erro ao listar clientes", MessageOf(err))
	assert.Equal(t, "Erro interno do servidor", MessageOf(errors.New("panic inesperado")))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, apiErrors.ErrInvalidStage, CodeOf(fmt.Errorf("%w: x", domain.ErrInvalidStage)))
	assert.Equal(t, apiErrors.ErrMissingRequiredData, CodeOf(Missing("nome")))
	assert.Equal(t, apiErrors.ErrResourceNotFound, CodeOf(NotFound("c1", "Cliente não encontrado")))
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, CodeOf(Forbidden("apenas administradores")))
	assert.Equal(t, apiErrors.ErrInternalServer, CodeOf(errors.New("x")))
}
