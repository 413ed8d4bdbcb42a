package pipeline

import (
	"context"
	"errors"
	"testing"

	repomocks "github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository/mocks"
	auditmocks "github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/audit/mocks"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func appointment(id string, stage domain.Stage) *domain.Appointment {
	return &domain.Appointment{ID: id, CustomerID: "c1", Result: stage}
}

func TestGroupByStage(t *testing.T) {
	board := GroupByStage([]*domain.Appointment{
		appointment("a1", domain.StagePending),
		appointment("a2", domain.StageClosed),
		appointment("a3", domain.StagePending),
		appointment("a4", domain.StageLost),
		nil,
	})

	require.Len(t, board.Columns, len(domain.BoardStages))
	for i, stage := range domain.BoardStages {
		assert.Equal(t, stage, board.Columns[i].Stage)
		assert.NotNil(t, board.Columns[i].Appointments)
	}

	pending := board.Column(domain.StagePending)
	require.NotNil(t, pending)
	assert.Len(t, pending.Appointments, 2)
	assert.Equal(t, "Termin ausstehend", pending.Label)

	assert.Len(t, board.Column(domain.StageClosed).Appointments, 1)
	assert.Empty(t, board.Column(domain.StageFollowUp).Appointments)
	assert.Nil(t, board.Column(domain.StageLost))

	require.Len(t, board.Other, 1)
	assert.Equal(t, "a4", board.Other[0].ID)
	assert.Equal(t, 4, board.Count())
}

func TestGroupByStage_Empty(t *testing.T) {
	board := GroupByStage(nil)

	assert.Len(t, board.Columns, len(domain.BoardStages))
	assert.Empty(t, board.Other)
	assert.Equal(t, 0, board.Count())
}

func TestEngine_Move(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repomocks.NewMockAppointmentRepository(ctrl)
	mockAudit := auditmocks.NewMockRecorder(ctrl)
	engine := NewEngine(mockStore, mockAudit)

	ctx := context.Background()

	tests := []struct {
		name        string
		destination domain.Stage
		setup       func()
		validate    func(t *testing.T, resp *domain.MoveStageResponse, err error)
	}{
		{
			name:        "move de ausstehend para abgeschlossen grava uma vez",
			destination: domain.StageClosed,
			setup: func() {
				mockStore.EXPECT().GetByID(ctx, "a1").Return(appointment("a1", domain.StagePending), nil)
				mockStore.EXPECT().UpdateStage(ctx, "a1", domain.StageClosed).
					Return(appointment("a1", domain.StageClosed), nil).Times(1)
				mockAudit.EXPECT().Record(ctx, domain.AuditUpdate, domain.TableAppointments, "a1",
					map[string]domain.Stage{"result": domain.StagePending},
					map[string]domain.Stage{"result": domain.StageClosed},
				)
			},
			validate: func(t *testing.T, resp *domain.MoveStageResponse, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Moved)
				assert.Equal(t, domain.StageClosed, resp.Appointment.Result)

				board := GroupByStage([]*domain.Appointment{resp.Appointment})
				assert.Empty(t, board.Column(domain.StagePending).Appointments)
				assert.Len(t, board.Column(domain.StageClosed).Appointments, 1)
			},
		},
		{
			name:        "mesma etapa não grava nada",
			destination: domain.StagePending,
			setup: func() {
				mockStore.EXPECT().GetByID(ctx, "a1").Return(appointment("a1", domain.StagePending), nil)
			},
			validate: func(t *testing.T, resp *domain.MoveStageResponse, err error) {
				require.NoError(t, err)
				assert.False(t, resp.Moved)
				assert.Equal(t, domain.StagePending, resp.Appointment.Result)
			},
		},
		{
			name:        "falha na gravação mantém etapa de origem",
			destination: domain.StageClosed,
			setup: func() {
				mockStore.EXPECT().GetByID(ctx, "a1").Return(appointment("a1", domain.StagePending), nil)
				mockStore.EXPECT().UpdateStage(ctx, "a1", domain.StageClosed).
					Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, resp *domain.MoveStageResponse, err error) {
				require.Error(t, err)
				assert.Nil(t, resp)
			},
		},
		{
			name:        "etapa inválida é rejeitada antes de qualquer leitura",
			destination: domain.Stage("gewonnen"),
			setup:       func() {},
			validate: func(t *testing.T, resp *domain.MoveStageResponse, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidStage)
				assert.Nil(t, resp)
			},
		},
		{
			name:        "compromisso inexistente",
			destination: domain.StageClosed,
			setup: func() {
				mockStore.EXPECT().GetByID(ctx, "a1").Return(nil, nil)
			},
			validate: func(t *testing.T, resp *domain.MoveStageResponse, err error) {
				assert.ErrorIs(t, err, ErrAppointmentNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			resp, err := engine.Move(ctx, "a1", tt.destination)
			tt.validate(t, resp, err)
		})
	}
}

func TestEngine_MoveForCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repomocks.NewMockAppointmentRepository(ctrl)
	mockAudit := auditmocks.NewMockRecorder(ctrl)
	engine := NewEngine(mockStore, mockAudit)

	ctx := context.Background()

	t.Run("compromisso de outro cliente", func(t *testing.T) {
		mockStore.EXPECT().GetByID(ctx, "a1").Return(appointment("a1", domain.StagePending), nil)

		_, err := engine.MoveForCustomer(ctx, "c2", "a1", domain.StageAttended)
		assert.ErrorIs(t, err, ErrNotOwnAppointment)
	})

	t.Run("sem cliente vinculado", func(t *testing.T) {
		_, err := engine.MoveForCustomer(ctx, "", "a1", domain.StageAttended)
		assert.ErrorIs(t, err, ErrNotOwnAppointment)
	})

	t.Run("compromisso do próprio cliente", func(t *testing.T) {
		mockStore.EXPECT().GetByID(ctx, "a1").Return(appointment("a1", domain.StagePending), nil)
		mockStore.EXPECT().UpdateStage(ctx, "a1", domain.StageAttended).
			Return(appointment("a1", domain.StageAttended), nil)
		mockAudit.EXPECT().Record(ctx, domain.AuditUpdate, domain.TableAppointments, "a1", gomock.Any(), gomock.Any())

		resp, err := engine.MoveForCustomer(ctx, "c1", "a1", domain.StageAttended)
		require.NoError(t, err)
		assert.True(t, resp.Moved)
	})
}
